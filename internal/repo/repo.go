package repo

import (
	"context"

	"github.com/logwise-app/logwise/internal/domain"
	"github.com/logwise-app/logwise/internal/repo/pgdb"
	"github.com/logwise-app/logwise/internal/repo/repotypes"
	"github.com/logwise-app/logwise/pkg/postgres"
)

type Session interface {
	CreateSession(ctx context.Context, session *domain.Session) error
	ListSessions(ctx context.Context) ([]domain.Session, error)
	GetSession(ctx context.Context, id string) (domain.Session, error)
	RenameSession(ctx context.Context, id, title string) error
	DeleteSession(ctx context.Context, id string) error
}

type Log interface {
	StoreBatch(ctx context.Context, sessionID string, records []domain.ScoredRecord) (int, error)
	GetLogs(ctx context.Context, filter repotypes.LogFilter) ([]domain.ScoredRecord, error)
	GetStatsBySession(ctx context.Context, sessionID string) (domain.SessionStats, error)
}

type Chat interface {
	StoreMessage(ctx context.Context, msg *domain.ChatMessage) (int, error)
	GetHistory(ctx context.Context, sessionID string, limit int) ([]domain.ChatMessage, error)
	UpdateMessage(ctx context.Context, id int, message string) error
	DeleteMessage(ctx context.Context, id int) error
}

type Repositories struct {
	Session
	Log
	Chat
}

func NewRepositories(pg *postgres.Postgres) *Repositories {
	return &Repositories{
		Session: pgdb.NewSessionRepo(pg),
		Log:     pgdb.NewLogRepo(pg),
		Chat:    pgdb.NewChatRepo(pg),
	}
}
