package pipeline

import (
	"context"

	"github.com/logwise-app/logwise/internal/domain"
	"github.com/logwise-app/logwise/internal/feature"
	"github.com/logwise-app/logwise/internal/ingest"
	"github.com/logwise-app/logwise/internal/scoring"
	errorsUtils "github.com/logwise-app/logwise/pkg/errors"
)

// Result is the outcome of one ingestion-through-scoring run.
type Result struct {
	Records   []domain.ScoredRecord
	Anomalies int
}

// Pipeline runs the linear ingest -> features -> scoring pass.
// It holds no state between runs: identical input with a deterministic
// scorer yields an identical Result.
type Pipeline struct {
	scorer    scoring.Scorer
	threshold float64
}

func New(scorer scoring.Scorer, threshold float64) *Pipeline {
	return &Pipeline{
		scorer:    scorer,
		threshold: threshold,
	}
}

func (p *Pipeline) Run(ctx context.Context, content []byte, format ingest.Format) (Result, error) {
	records, err := ingest.Parse(content, format)
	if err != nil {
		return Result{}, errorsUtils.WrapPathErr(err)
	}

	vectors, err := feature.Extract(records)
	if err != nil {
		return Result{}, errorsUtils.WrapPathErr(err)
	}

	scores, err := p.scorer.Score(ctx, scoring.Values(vectors))
	if err != nil {
		return Result{}, errorsUtils.WrapPathErr(err)
	}

	scored, err := scoring.Apply(records, scores, p.threshold)
	if err != nil {
		return Result{}, errorsUtils.WrapPathErr(err)
	}

	result := Result{Records: scored}
	for _, rec := range scored {
		if rec.Anomalous {
			result.Anomalies++
		}
	}

	return result, nil
}
