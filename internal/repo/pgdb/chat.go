package pgdb

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/logwise-app/logwise/internal/domain"
	"github.com/logwise-app/logwise/internal/repo/repoerrs"
	errorsUtils "github.com/logwise-app/logwise/pkg/errors"
	"github.com/logwise-app/logwise/pkg/postgres"
)

type ChatRepo struct {
	*postgres.Postgres
}

func NewChatRepo(pg *postgres.Postgres) *ChatRepo {
	return &ChatRepo{pg}
}

// nullableSessionID maps the empty session id of global milestones to
// a SQL NULL.
func nullableSessionID(sessionID string) any {
	if sessionID == "" {
		return nil
	}
	return sessionID
}

func (r *ChatRepo) StoreMessage(ctx context.Context, msg *domain.ChatMessage) (int, error) {
	sql, args, _ := r.Builder.
		Insert("chat_history").
		Columns("session_id", "role", "message").
		Values(nullableSessionID(msg.SessionID), msg.Role, msg.Message).
		Suffix("RETURNING id").
		ToSql()

	var id int
	err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if errorsUtils.IsForeignKeyViolation(err) {
			return 0, repoerrs.ErrNotFound
		}
		return 0, errorsUtils.WrapPathErr(err)
	}
	return id, nil
}

// GetHistory returns the newest limit messages in chronological order.
// An empty sessionID selects the global milestone history.
func (r *ChatRepo) GetHistory(ctx context.Context, sessionID string, limit int) ([]domain.ChatMessage, error) {
	if limit <= 0 {
		limit = 20
	}

	sql, args, _ := r.Builder.
		Select("id", "COALESCE(session_id::text, '') AS session_id", "role", "message", "created_at").
		From("chat_history").
		Where(sq.Eq{"session_id": nullableSessionID(sessionID)}).
		OrderBy("id DESC").
		Limit(uint64(limit)).
		ToSql()

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return []domain.ChatMessage{}, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	messages, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.ChatMessage])
	if err != nil {
		return []domain.ChatMessage{}, errorsUtils.WrapPathErr(err)
	}

	// Fetched newest first, reverse back to chronological.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

func (r *ChatRepo) UpdateMessage(ctx context.Context, id int, message string) error {
	sql, args, _ := r.Builder.
		Update("chat_history").
		Set("message", message).
		Where(sq.Eq{"id": id}).
		ToSql()

	tag, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repoerrs.ErrNotFound
	}
	return nil
}

func (r *ChatRepo) DeleteMessage(ctx context.Context, id int) error {
	sql, args, _ := r.Builder.
		Delete("chat_history").
		Where(sq.Eq{"id": id}).
		ToSql()

	tag, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repoerrs.ErrNotFound
	}
	return nil
}
