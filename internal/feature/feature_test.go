package feature_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logwise-app/logwise/internal/domain"
	"github.com/logwise-app/logwise/internal/feature"
)

func TestExtract_OneVectorPerRecord(t *testing.T) {
	records := []domain.LogRecord{
		{Seq: 0, Message: "INFO start"},
		{Seq: 1, Message: "ERROR fail fail fail"},
		{Seq: 2, Message: "INFO end"},
	}

	vectors, err := feature.Extract(records)

	require.NoError(t, err)
	require.Len(t, vectors, len(records))

	for i, v := range vectors {
		assert.Equal(t, records[i].Seq, v.Seq)
		assert.Len(t, v.Values, len(feature.Names))
	}
}

func TestExtract_LengthAndTokens(t *testing.T) {
	vectors, err := feature.Extract([]domain.LogRecord{
		{Seq: 0, Message: "ERROR fail fail fail"},
	})

	require.NoError(t, err)
	assert.Equal(t, 20.0, vectors[0].Values[0])
	assert.Equal(t, 4.0, vectors[0].Values[1])
}

func TestExtract_TimeDelta(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	records := []domain.LogRecord{
		{Seq: 0, Message: "a", Timestamp: base},
		{Seq: 1, Message: "b", Timestamp: base.Add(30 * time.Second)},
		{Seq: 2, Message: "no timestamp"},
		{Seq: 3, Message: "c", Timestamp: base.Add(90 * time.Second)},
	}

	vectors, err := feature.Extract(records)
	require.NoError(t, err)

	deltaCol := len(feature.Names) - 1
	// First record has no prior timestamp.
	assert.Equal(t, 0.0, vectors[0].Values[deltaCol])
	assert.Equal(t, 30.0, vectors[1].Values[deltaCol])
	// Untimestamped records carry a zero delta and do not reset the chain.
	assert.Equal(t, 0.0, vectors[2].Values[deltaCol])
	assert.Equal(t, 60.0, vectors[3].Values[deltaCol])
}

func TestExtract_SeverityWeight(t *testing.T) {
	vectors, err := feature.Extract([]domain.LogRecord{
		{Seq: 0, Level: "info", Message: "x"},
		{Seq: 1, Level: "ERROR", Message: "x"},
		{Seq: 2, Level: "", Message: "x"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1.0, vectors[0].Values[3])
	assert.Equal(t, 3.0, vectors[1].Values[3])
	assert.Equal(t, 0.0, vectors[2].Values[3])
}

func TestExtract_DigitRatio(t *testing.T) {
	vectors, err := feature.Extract([]domain.LogRecord{
		{Seq: 0, Message: "ab12"},
	})

	require.NoError(t, err)
	assert.InDelta(t, 0.5, vectors[0].Values[2], 1e-9)
}

func TestExtract_Empty(t *testing.T) {
	vectors, err := feature.Extract(nil)

	require.NoError(t, err)
	assert.Empty(t, vectors)
}
