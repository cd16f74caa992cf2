package scoring

import (
	"context"
	"errors"
	"fmt"

	"github.com/logwise-app/logwise/internal/domain"
)

// Scorer is the anomaly-scoring collaborator: a batch of numeric
// vectors in, one score per vector out, higher = more anomalous.
type Scorer interface {
	Score(ctx context.Context, vectors [][]float64) ([]float64, error)
}

// ErrScoreCount reports a collaborator returning a mismatched number
// of scores.
var ErrScoreCount = errors.New("scorer returned mismatched score count")

// Apply annotates records with their scores, index-for-index.
// A record is anomalous iff its score exceeds threshold. The input
// order is preserved; on a count mismatch no partial output is produced.
func Apply(records []domain.LogRecord, scores []float64, threshold float64) ([]domain.ScoredRecord, error) {
	if len(scores) != len(records) {
		return nil, fmt.Errorf("%w: got %d scores for %d records", ErrScoreCount, len(scores), len(records))
	}

	scored := make([]domain.ScoredRecord, len(records))
	for i, rec := range records {
		scored[i] = domain.ScoredRecord{
			LogRecord: rec,
			Score:     scores[i],
			Anomalous: scores[i] > threshold,
		}
	}

	return scored, nil
}

// Values flattens feature vectors into the raw batch a Scorer accepts.
func Values(vectors []domain.FeatureVector) [][]float64 {
	out := make([][]float64, len(vectors))
	for i, v := range vectors {
		out[i] = v.Values
	}
	return out
}
