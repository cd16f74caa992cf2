package pgdb

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/logwise-app/logwise/internal/domain"
	"github.com/logwise-app/logwise/internal/repo/repoerrs"
	errorsUtils "github.com/logwise-app/logwise/pkg/errors"
	"github.com/logwise-app/logwise/pkg/postgres"
)

type SessionRepo struct {
	*postgres.Postgres
}

func NewSessionRepo(pg *postgres.Postgres) *SessionRepo {
	return &SessionRepo{pg}
}

func (r *SessionRepo) CreateSession(ctx context.Context, session *domain.Session) error {
	sql, args, _ := r.Builder.
		Insert("sessions").
		Columns("id", "title", "filename", "total_logs", "anomalies").
		Values(session.ID, session.Title, session.Filename, session.TotalLogs, session.Anomalies).
		Suffix("RETURNING created_at").
		ToSql()

	err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&session.CreatedAt)
	if err != nil {
		if errorsUtils.IsUniqueViolation(err) {
			return repoerrs.ErrAlreadyExists
		}
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}

func (r *SessionRepo) ListSessions(ctx context.Context) ([]domain.Session, error) {
	sql, args, _ := r.Builder.
		Select("id", "title", "filename", "total_logs", "anomalies", "created_at").
		From("sessions").
		OrderBy("created_at DESC").
		ToSql()

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return []domain.Session{}, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	sessions, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Session])
	if err != nil {
		return []domain.Session{}, errorsUtils.WrapPathErr(err)
	}

	return sessions, nil
}

func (r *SessionRepo) GetSession(ctx context.Context, id string) (domain.Session, error) {
	sql, args, _ := r.Builder.
		Select("id", "title", "filename", "total_logs", "anomalies", "created_at").
		From("sessions").
		Where(sq.Eq{"id": id}).
		ToSql()

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return domain.Session{}, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	session, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Session])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Session{}, repoerrs.ErrNotFound
		}
		return domain.Session{}, errorsUtils.WrapPathErr(err)
	}

	return session, nil
}

func (r *SessionRepo) RenameSession(ctx context.Context, id, title string) error {
	sql, args, _ := r.Builder.
		Update("sessions").
		Set("title", title).
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

func (r *SessionRepo) DeleteSession(ctx context.Context, id string) error {
	sql, args, _ := r.Builder.
		Delete("sessions").
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
