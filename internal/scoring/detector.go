package scoring

import (
	"context"
	"fmt"
	"math"
)

const (
	DefaultMinSamples = 10
	DefaultThreshold  = 3.0
)

// Detector is the built-in statistical Scorer. It computes a z-score
// per feature column against the batch mean and standard deviation;
// a record's score is the largest absolute z among its features.
// Batches smaller than MinSamples score zero across the board.
type Detector struct {
	minSamples int
}

func NewDetector(opts ...DetectorOption) *Detector {
	d := &Detector{minSamples: DefaultMinSamples}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type DetectorOption func(*Detector)

func MinSamples(n int) DetectorOption {
	return func(d *Detector) {
		d.minSamples = n
	}
}

func (d *Detector) Score(ctx context.Context, vectors [][]float64) ([]float64, error) {
	scores := make([]float64, len(vectors))
	if len(vectors) == 0 || len(vectors) < d.minSamples {
		return scores, nil
	}

	cols := len(vectors[0])
	for _, v := range vectors {
		if len(v) != cols {
			return nil, fmt.Errorf("ragged feature batch: want %d columns, got %d", cols, len(v))
		}
	}

	means := make([]float64, cols)
	stdDevs := make([]float64, cols)
	for c := 0; c < cols; c++ {
		means[c], stdDevs[c] = meanStdDev(vectors, c)
	}

	for i, v := range vectors {
		var max float64
		for c := 0; c < cols; c++ {
			if stdDevs[c] == 0 {
				continue
			}
			z := math.Abs((v[c] - means[c]) / stdDevs[c])
			if z > max {
				max = z
			}
		}
		scores[i] = max
	}

	return scores, nil
}

func meanStdDev(vectors [][]float64, col int) (float64, float64) {
	n := float64(len(vectors))

	var sum float64
	for _, v := range vectors {
		sum += v[col]
	}
	mean := sum / n

	var variance float64
	for _, v := range vectors {
		variance += math.Pow(v[col]-mean, 2)
	}

	return mean, math.Sqrt(variance / n)
}
