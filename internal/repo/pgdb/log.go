package pgdb

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/logwise-app/logwise/internal/domain"
	"github.com/logwise-app/logwise/internal/repo/repotypes"
	errorsUtils "github.com/logwise-app/logwise/pkg/errors"
	"github.com/logwise-app/logwise/pkg/postgres"
)

type LogRepo struct {
	*postgres.Postgres
}

func NewLogRepo(pg *postgres.Postgres) *LogRepo {
	return &LogRepo{pg}
}

// StoreBatch persists one session's scored records via COPY.
func (r *LogRepo) StoreBatch(ctx context.Context, sessionID string, records []domain.ScoredRecord) (int, error) {
	rows := make([][]any, len(records))
	for i, rec := range records {
		var ts *time.Time
		if !rec.Timestamp.IsZero() {
			t := rec.Timestamp
			ts = &t
		}
		rows[i] = []any{sessionID, rec.Seq, rec.Level, rec.Message, rec.Raw, ts, rec.Score, rec.Anomalous}
	}

	copied, err := r.Pool.CopyFrom(
		ctx,
		pgx.Identifier{"logs"},
		[]string{"session_id", "seq", "level", "message", "raw", "log_ts", "score", "anomalous"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	return int(copied), nil
}

func (r *LogRepo) GetLogs(ctx context.Context, filter repotypes.LogFilter) ([]domain.ScoredRecord, error) {
	conds, limit := BuildLogQueryFilters(filter)

	query := r.Builder.
		Select("seq", "level", "message", "raw", "log_ts", "score", "anomalous").
		From("logs").
		OrderBy("seq").
		Limit(limit)

	if len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}

	sql, args, _ := query.ToSql()
	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return []domain.ScoredRecord{}, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	logs := []domain.ScoredRecord{}
	for rows.Next() {
		var (
			rec domain.ScoredRecord
			ts  *time.Time
		)
		if err := rows.Scan(&rec.Seq, &rec.Level, &rec.Message, &rec.Raw, &ts, &rec.Score, &rec.Anomalous); err != nil {
			return []domain.ScoredRecord{}, errorsUtils.WrapPathErr(err)
		}
		if ts != nil {
			rec.Timestamp = *ts
		}
		logs = append(logs, rec)
	}

	if err := rows.Err(); err != nil {
		return []domain.ScoredRecord{}, errorsUtils.WrapPathErr(err)
	}

	return logs, nil
}

func (r *LogRepo) GetStatsBySession(ctx context.Context, sessionID string) (domain.SessionStats, error) {
	stats := domain.SessionStats{SessionID: sessionID}

	sql, args, _ := r.Builder.
		Select("level", "COUNT(*) AS count_logs", "COUNT(*) FILTER (WHERE anomalous) AS count_anomalies").
		From("logs").
		Where(sq.Eq{"session_id": sessionID}).
		GroupBy("level").
		OrderBy("level").
		ToSql()

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return domain.SessionStats{}, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			ls        domain.LevelStats
			anomalies int
		)
		if err := rows.Scan(&ls.Level, &ls.Count, &anomalies); err != nil {
			return domain.SessionStats{}, errorsUtils.WrapPathErr(err)
		}
		stats.LogsByLevel = append(stats.LogsByLevel, ls)
		stats.TotalLogs += ls.Count
		stats.Anomalies += anomalies
	}
	if err := rows.Err(); err != nil {
		return domain.SessionStats{}, errorsUtils.WrapPathErr(err)
	}

	lengths, err := r.messageLengths(ctx, sessionID)
	if err != nil {
		return domain.SessionStats{}, err
	}
	stats.LengthHist = BuildLengthHistogram(lengths, HistogramBins)

	return stats, nil
}

func (r *LogRepo) messageLengths(ctx context.Context, sessionID string) ([]int, error) {
	sql, args, _ := r.Builder.
		Select("length(message)").
		From("logs").
		Where(sq.Eq{"session_id": sessionID}).
		OrderBy("seq").
		ToSql()

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	lengths := []int{}
	for rows.Next() {
		var l int
		if err := rows.Scan(&l); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		lengths = append(lengths, l)
	}

	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return lengths, nil
}
