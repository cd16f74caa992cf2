package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logwise-app/logwise/internal/domain"
	"github.com/logwise-app/logwise/internal/scoring"
)

func TestApply(t *testing.T) {
	records := []domain.LogRecord{
		{Seq: 0, Message: "INFO start"},
		{Seq: 1, Message: "ERROR fail fail fail"},
		{Seq: 2, Message: "INFO end"},
	}

	testCases := []struct {
		name          string
		scores        []float64
		threshold     float64
		wantErr       bool
		wantAnomalous []bool
	}{
		{
			name:          "identity scoring on length, threshold 15",
			scores:        []float64{10, 20, 8},
			threshold:     15,
			wantAnomalous: []bool{false, true, false},
		},
		{
			name:          "score equal to threshold is not anomalous",
			scores:        []float64{15, 15, 15},
			threshold:     15,
			wantAnomalous: []bool{false, false, false},
		},
		{
			name:      "too few scores",
			scores:    []float64{1, 2},
			threshold: 15,
			wantErr:   true,
		},
		{
			name:      "too many scores",
			scores:    []float64{1, 2, 3, 4},
			threshold: 15,
			wantErr:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			scored, err := scoring.Apply(records, tc.scores, tc.threshold)

			if tc.wantErr {
				assert.ErrorIs(t, err, scoring.ErrScoreCount)
				assert.Nil(t, scored)
				return
			}

			require.NoError(t, err)
			require.Len(t, scored, len(records))

			for i, rec := range scored {
				assert.Equal(t, records[i].Seq, rec.Seq)
				assert.Equal(t, tc.scores[i], rec.Score)
				assert.Equal(t, tc.wantAnomalous[i], rec.Anomalous)
			}
		})
	}
}

func TestValues(t *testing.T) {
	vectors := []domain.FeatureVector{
		{Seq: 0, Values: []float64{1, 2}},
		{Seq: 1, Values: []float64{3, 4}},
	}

	values := scoring.Values(vectors)

	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, values)
}
