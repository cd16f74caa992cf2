package feature

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/logwise-app/logwise/internal/domain"
)

// ErrExtraction reports a malformed numeric derivation. Well-formed
// LogRecords never trigger it.
var ErrExtraction = errors.New("feature extraction failed")

// Names lists the feature columns in the order Extract emits them.
var Names = []string{"length", "tokens", "digit_ratio", "severity", "time_delta"}

var severityWeights = map[string]float64{
	"DEBUG":    0,
	"INFO":     1,
	"WARN":     2,
	"WARNING":  2,
	"ERROR":    3,
	"CRITICAL": 4,
	"FATAL":    4,
}

// Extract derives one FeatureVector per record, order preserving.
// The time-delta of the first record, and of any record without a
// parsed timestamp, is zero.
func Extract(records []domain.LogRecord) ([]domain.FeatureVector, error) {
	vectors := make([]domain.FeatureVector, 0, len(records))

	var prev *domain.LogRecord
	for i := range records {
		rec := &records[i]

		values := []float64{
			float64(len(rec.Message)),
			float64(len(strings.Fields(rec.Message))),
			digitRatio(rec.Message),
			severityWeights[strings.ToUpper(rec.Level)],
			timeDelta(prev, rec),
		}

		for col, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: record %d, feature %q", ErrExtraction, rec.Seq, Names[col])
			}
		}

		vectors = append(vectors, domain.FeatureVector{Seq: rec.Seq, Values: values})
		if !rec.Timestamp.IsZero() {
			prev = rec
		}
	}

	return vectors, nil
}

func digitRatio(message string) float64 {
	if message == "" {
		return 0
	}
	digits := 0
	for _, r := range message {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return float64(digits) / float64(len([]rune(message)))
}

func timeDelta(prev, cur *domain.LogRecord) float64 {
	if prev == nil || cur.Timestamp.IsZero() {
		return 0
	}
	return cur.Timestamp.Sub(prev.Timestamp).Seconds()
}
