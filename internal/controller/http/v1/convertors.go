package v1

import (
	"time"

	"github.com/logwise-app/logwise/internal/domain"
)

type sessionResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Filename  string    `json:"filename"`
	TotalLogs int       `json:"total_logs"`
	Anomalies int       `json:"anomalies"`
	Age       string    `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}

type logResponse struct {
	Seq       int        `json:"seq"`
	Level     string     `json:"level,omitempty"`
	Message   string     `json:"message"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Score     float64    `json:"score"`
	Anomalous bool       `json:"anomalous"`
}

type chatMessageResponse struct {
	ID        int       `json:"id"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type levelStatsResponse struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

type histogramBucketResponse struct {
	From  int `json:"from"`
	To    int `json:"to"`
	Count int `json:"count"`
}

type statsResponse struct {
	SessionID   string                    `json:"session_id"`
	TotalLogs   int                       `json:"total_logs"`
	Anomalies   int                       `json:"anomalies"`
	LogsByLevel []levelStatsResponse      `json:"logs_by_level"`
	LengthHist  []histogramBucketResponse `json:"length_histogram"`
}

func toSessionResponse(session domain.Session, now time.Time) sessionResponse {
	return sessionResponse{
		ID:        session.ID,
		Title:     session.Title,
		Filename:  session.Filename,
		TotalLogs: session.TotalLogs,
		Anomalies: session.Anomalies,
		Age:       string(session.Age(now)),
		CreatedAt: session.CreatedAt,
	}
}

func toSessionResponses(sessions []domain.Session, now time.Time) []sessionResponse {
	out := make([]sessionResponse, len(sessions))
	for i, s := range sessions {
		out[i] = toSessionResponse(s, now)
	}
	return out
}

func toLogResponses(logs []domain.ScoredRecord) []logResponse {
	out := make([]logResponse, len(logs))
	for i, rec := range logs {
		out[i] = logResponse{
			Seq:       rec.Seq,
			Level:     rec.Level,
			Message:   rec.Message,
			Score:     rec.Score,
			Anomalous: rec.Anomalous,
		}
		if !rec.Timestamp.IsZero() {
			ts := rec.Timestamp
			out[i].Timestamp = &ts
		}
	}
	return out
}

func toChatResponses(messages []domain.ChatMessage) []chatMessageResponse {
	out := make([]chatMessageResponse, len(messages))
	for i, m := range messages {
		out[i] = chatMessageResponse{
			ID:        m.ID,
			Role:      m.Role,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		}
	}
	return out
}

func toStatsResponse(stats domain.SessionStats) statsResponse {
	resp := statsResponse{
		SessionID:   stats.SessionID,
		TotalLogs:   stats.TotalLogs,
		Anomalies:   stats.Anomalies,
		LogsByLevel: []levelStatsResponse{},
		LengthHist:  []histogramBucketResponse{},
	}

	for _, ls := range stats.LogsByLevel {
		resp.LogsByLevel = append(resp.LogsByLevel, levelStatsResponse{Level: ls.Level, Count: ls.Count})
	}
	for _, b := range stats.LengthHist {
		resp.LengthHist = append(resp.LengthHist, histogramBucketResponse{From: b.From, To: b.To, Count: b.Count})
	}

	return resp
}
