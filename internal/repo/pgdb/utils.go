package pgdb

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/logwise-app/logwise/internal/domain"
	"github.com/logwise-app/logwise/internal/repo/repotypes"
)

// HistogramBins mirrors the dashboard's length distribution chart.
const HistogramBins = 20

func BuildLogQueryFilters(filter repotypes.LogFilter) ([]sq.Sqlizer, uint64) {
	conds := []sq.Sqlizer{}

	if filter.SessionID != "" {
		conds = append(conds, sq.Eq{"session_id": filter.SessionID})
	}

	if filter.Level != "" {
		conds = append(conds, sq.Eq{"level": filter.Level})
	}

	if filter.OnlyAnomalies {
		conds = append(conds, sq.Eq{"anomalous": true})
	}

	if !filter.From.IsZero() {
		conds = append(conds, sq.GtOrEq{"log_ts": filter.From})
	}
	if !filter.To.IsZero() {
		conds = append(conds, sq.LtOrEq{"log_ts": filter.To})
	}

	limit := uint64(100)
	if filter.Limit > 0 {
		limit = uint64(filter.Limit)
	}

	return conds, limit
}

// BuildLengthHistogram bins message lengths into equal-width buckets.
func BuildLengthHistogram(lengths []int, bins int) []domain.HistogramBucket {
	if len(lengths) == 0 || bins <= 0 {
		return []domain.HistogramBucket{}
	}

	min, max := lengths[0], lengths[0]
	for _, l := range lengths {
		if l < min {
			min = l
		}
		if l > max {
			max = l
		}
	}

	width := (max - min + bins) / bins
	if width == 0 {
		width = 1
	}

	buckets := make([]domain.HistogramBucket, bins)
	for i := range buckets {
		buckets[i].From = min + i*width
		buckets[i].To = min + (i+1)*width
	}

	for _, l := range lengths {
		idx := (l - min) / width
		if idx >= bins {
			idx = bins - 1
		}
		buckets[idx].Count++
	}

	return buckets
}
