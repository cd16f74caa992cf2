package service

import (
	"context"

	"github.com/logwise-app/logwise/internal/broker"
	"github.com/logwise-app/logwise/internal/domain"
	"github.com/logwise-app/logwise/internal/ingest"
	"github.com/logwise-app/logwise/internal/metrics"
	"github.com/logwise-app/logwise/internal/repo"
	"github.com/logwise-app/logwise/internal/repo/repotypes"
	"github.com/logwise-app/logwise/internal/scoring"
)

type AnalyzeInput struct {
	Title    string
	Filename string
	Content  []byte
	Format   ingest.Format
}

type Analysis interface {
	Analyze(ctx context.Context, input AnalyzeInput) (domain.Session, error)
	GetLogs(ctx context.Context, filter repotypes.LogFilter) ([]domain.ScoredRecord, error)
	GetStats(ctx context.Context, sessionID string) (domain.SessionStats, error)
}

type Session interface {
	ListSessions(ctx context.Context) ([]domain.Session, error)
	GetSession(ctx context.Context, id string) (domain.Session, error)
	RenameSession(ctx context.Context, id, title string) error
	DeleteSession(ctx context.Context, id string) error
}

type Chat interface {
	StoreMessage(ctx context.Context, sessionID, role, message string) (int, error)
	GetHistory(ctx context.Context, sessionID string) ([]domain.ChatMessage, error)
	UpdateMessage(ctx context.Context, id int, message string) error
	DeleteMessage(ctx context.Context, id int) error
}

type Services struct {
	Analysis
	Session
	Chat
}

type ServicesDependencies struct {
	Repos          *repo.Repositories
	Scorer         scoring.Scorer
	Threshold      float64
	Counters       *metrics.Counters
	BrokerProducer broker.Producer
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		Analysis: NewAnalysisService(deps),
		Session:  NewSessionService(deps.Repos.Session),
		Chat:     NewChatService(deps.Repos.Chat),
	}
}
