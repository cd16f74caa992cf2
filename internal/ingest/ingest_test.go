package ingest_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logwise-app/logwise/internal/ingest"
)

func TestParse_Plain(t *testing.T) {
	testCases := []struct {
		name      string
		content   string
		wantCount int
	}{
		{
			name:      "every non-blank line becomes a record",
			content:   "INFO start\nERROR fail fail fail\nINFO end\n",
			wantCount: 3,
		},
		{
			name:      "blank lines are skipped",
			content:   "first\n\n   \nsecond\n\n",
			wantCount: 2,
		},
		{
			name:      "empty input",
			content:   "",
			wantCount: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			records, err := ingest.Parse([]byte(tc.content), ingest.FormatPlain)

			require.NoError(t, err)
			assert.Len(t, records, tc.wantCount)

			for i, rec := range records {
				assert.Equal(t, i, rec.Seq)
			}
		})
	}
}

func TestParse_PlainStructuredLine(t *testing.T) {
	content := "2024-05-01 10:00:00 - ERROR - connection refused\nnot a structured line\n"

	records, err := ingest.Parse([]byte(content), ingest.FormatPlain)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "ERROR", records[0].Level)
	assert.Equal(t, "connection refused", records[0].Message)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), records[0].Timestamp)

	assert.Empty(t, records[1].Level)
	assert.Equal(t, "not a structured line", records[1].Message)
	assert.True(t, records[1].Timestamp.IsZero())
}

func TestParse_RawIsPreserved(t *testing.T) {
	line := "2024-05-01 10:00:00 - INFO - started"

	records, err := ingest.Parse([]byte(line), ingest.FormatPlain)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, line, records[0].Raw)
}

func TestParse_InvalidUTF8(t *testing.T) {
	_, err := ingest.Parse([]byte{0xff, 0xfe, 0xfd}, ingest.FormatPlain)

	assert.ErrorIs(t, err, ingest.ErrBadFormat)
}

func TestParse_UnknownFormat(t *testing.T) {
	_, err := ingest.Parse([]byte("hello"), ingest.Format("xml"))

	assert.ErrorIs(t, err, ingest.ErrUnknownFormat)
}

func TestParse_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte("INFO one\nINFO two\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	records, err := ingest.Parse(buf.Bytes(), ingest.FormatPlain)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "INFO one", records[0].Message)
}

func TestParse_GzipCorrupted(t *testing.T) {
	_, err := ingest.Parse([]byte{0x1f, 0x8b, 0x00, 0x01}, ingest.FormatPlain)

	assert.ErrorIs(t, err, ingest.ErrBadFormat)
}

func TestParse_JSON(t *testing.T) {
	content := strings.Join([]string{
		`{"timestamp":"2024-05-01 10:00:00","level":"info","message":"started"}`,
		``,
		`{"level":"ERROR","msg":"boom"}`,
	}, "\n")

	records, err := ingest.Parse([]byte(content), ingest.FormatJSON)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "INFO", records[0].Level)
	assert.Equal(t, "started", records[0].Message)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), records[0].Timestamp)

	assert.Equal(t, 1, records[1].Seq)
	assert.Equal(t, "boom", records[1].Message)
}

func TestParse_JSONInvalidLine(t *testing.T) {
	_, err := ingest.Parse([]byte("{not json}"), ingest.FormatJSON)

	assert.ErrorIs(t, err, ingest.ErrBadFormat)
}
