package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/logwise-app/logwise/internal/broker"
	"github.com/logwise-app/logwise/internal/domain"
	"github.com/logwise-app/logwise/internal/metrics"
	"github.com/logwise-app/logwise/internal/pipeline"
	"github.com/logwise-app/logwise/internal/repo"
	"github.com/logwise-app/logwise/internal/repo/repotypes"
	errorsUtils "github.com/logwise-app/logwise/pkg/errors"
)

type AnalysisService struct {
	sessionRepo    repo.Session
	logRepo        repo.Log
	chatRepo       repo.Chat
	pipeline       *pipeline.Pipeline
	counters       *metrics.Counters
	brokerProducer broker.Producer
}

func NewAnalysisService(deps ServicesDependencies) *AnalysisService {
	return &AnalysisService{
		sessionRepo:    deps.Repos.Session,
		logRepo:        deps.Repos.Log,
		chatRepo:       deps.Repos.Chat,
		pipeline:       pipeline.New(deps.Scorer, deps.Threshold),
		counters:       deps.Counters,
		brokerProducer: deps.BrokerProducer,
	}
}

const (
	milestoneLogsStored = "Logs successfully stored in the local database."
	milestoneNoRecords  = "No valid log entries found in the file."
)

type anomalyNotification struct {
	SessionID string `json:"session_id"`
	Title     string `json:"title"`
	Total     int    `json:"total_logs"`
	Anomalies int    `json:"anomalies"`
}

// Analyze runs the full upload lifecycle: pipeline pass, session
// creation, batch persistence, chat milestone and anomaly notification.
func (s *AnalysisService) Analyze(ctx context.Context, input AnalyzeInput) (domain.Session, error) {
	result, err := s.pipeline.Run(ctx, input.Content, input.Format)
	if err != nil {
		return domain.Session{}, err
	}

	if len(result.Records) == 0 {
		s.storeMilestone(ctx, "", milestoneNoRecords)
		return domain.Session{}, ErrNoRecords
	}

	session := domain.Session{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Filename:  input.Filename,
		TotalLogs: len(result.Records),
		Anomalies: result.Anomalies,
	}
	if session.Title == "" {
		session.Title = input.Filename
	}

	if err := s.sessionRepo.CreateSession(ctx, &session); err != nil {
		return domain.Session{}, errorsUtils.WrapPathErr(ErrCannotCreateSession)
	}

	if _, err := s.logRepo.StoreBatch(ctx, session.ID, result.Records); err != nil {
		return domain.Session{}, errorsUtils.WrapPathErr(ErrCannotStoreLogs)
	}

	s.counters.LogsIngested.Add(float64(session.TotalLogs), string(input.Format))
	s.counters.AnomaliesDetected.Add(float64(session.Anomalies), string(input.Format))

	s.storeMilestone(ctx, session.ID, milestoneLogsStored)
	s.notifyAnomalies(ctx, session)

	return session, nil
}

// storeMilestone records a pipeline event in the chat history. An empty
// sessionID stores it globally. Failures are logged, not returned.
func (s *AnalysisService) storeMilestone(ctx context.Context, sessionID, message string) {
	if _, err := s.chatRepo.StoreMessage(ctx, &domain.ChatMessage{
		SessionID: sessionID,
		Role:      domain.ChatRoleAssistant,
		Message:   message,
	}); err != nil {
		log.Warnf("Failed to store chat milestone: %v", err)
	}
}

func (s *AnalysisService) notifyAnomalies(ctx context.Context, session domain.Session) {
	if session.Anomalies == 0 {
		return
	}

	payload, err := json.Marshal(anomalyNotification{
		SessionID: session.ID,
		Title:     session.Title,
		Total:     session.TotalLogs,
		Anomalies: session.Anomalies,
	})
	if err != nil {
		log.Errorf("Failed to encode anomaly notification: %v", err)
		return
	}

	if err := s.brokerProducer.SendMessage(ctx, payload); err != nil {
		log.Errorf("Failed to publish anomaly notification: %v", err)
	}
}

func (s *AnalysisService) GetLogs(ctx context.Context, filter repotypes.LogFilter) ([]domain.ScoredRecord, error) {
	logs, err := s.logRepo.GetLogs(ctx, filter)
	if err != nil {
		return []domain.ScoredRecord{}, err
	}
	return logs, nil
}

func (s *AnalysisService) GetStats(ctx context.Context, sessionID string) (domain.SessionStats, error) {
	stats, err := s.logRepo.GetStatsBySession(ctx, sessionID)
	if err != nil {
		return domain.SessionStats{}, err
	}
	return stats, nil
}
