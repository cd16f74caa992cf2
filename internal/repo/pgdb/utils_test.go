package pgdb_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logwise-app/logwise/internal/repo/pgdb"
	"github.com/logwise-app/logwise/internal/repo/repotypes"
)

func TestBuildLogQueryFilters(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name      string
		filter    repotypes.LogFilter
		wantConds int
		wantLimit uint64
	}{
		{
			name:      "empty filter keeps defaults",
			filter:    repotypes.LogFilter{},
			wantConds: 0,
			wantLimit: 100,
		},
		{
			name: "all filters set",
			filter: repotypes.LogFilter{
				SessionID:     "sess-1",
				Level:         "ERROR",
				OnlyAnomalies: true,
				From:          now.Add(-time.Hour),
				To:            now,
				Limit:         10,
			},
			wantConds: 5,
			wantLimit: 10,
		},
		{
			name:      "negative limit falls back to default",
			filter:    repotypes.LogFilter{Limit: -1},
			wantConds: 0,
			wantLimit: 100,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conds, limit := pgdb.BuildLogQueryFilters(tc.filter)

			assert.Len(t, conds, tc.wantConds)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}

func TestBuildLengthHistogram(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, pgdb.BuildLengthHistogram(nil, 20))
	})

	t.Run("all lengths counted once", func(t *testing.T) {
		lengths := []int{5, 10, 15, 20, 100}

		buckets := pgdb.BuildLengthHistogram(lengths, 4)
		require.Len(t, buckets, 4)

		total := 0
		for _, b := range buckets {
			total += b.Count
		}
		assert.Equal(t, len(lengths), total)
	})

	t.Run("identical lengths land in one bucket", func(t *testing.T) {
		buckets := pgdb.BuildLengthHistogram([]int{7, 7, 7}, 20)
		require.Len(t, buckets, 20)

		assert.Equal(t, 3, buckets[0].Count)
		for _, b := range buckets[1:] {
			assert.Zero(t, b.Count)
		}
	})

	t.Run("buckets are contiguous", func(t *testing.T) {
		buckets := pgdb.BuildLengthHistogram([]int{0, 50, 99}, 10)
		require.Len(t, buckets, 10)

		for i := 1; i < len(buckets); i++ {
			assert.Equal(t, buckets[i-1].To, buckets[i].From)
		}
	})
}
