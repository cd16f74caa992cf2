package domain

import "time"

// LogRecord is one normalized log entry produced by ingestion.
// Seq is assigned at parse time, is unique within a session and
// strictly increasing in file order.
type LogRecord struct {
	Seq       int
	Level     string
	Message   string
	Raw       string
	Timestamp time.Time
}

// FeatureVector holds the numeric features derived from one LogRecord.
// Values are positional and stay aligned with feature.Names.
type FeatureVector struct {
	Seq    int
	Values []float64
}

// ScoredRecord pairs a LogRecord with its anomaly score.
type ScoredRecord struct {
	LogRecord
	Score     float64
	Anomalous bool
}

type LevelStats struct {
	Level string
	Count int
}

// HistogramBucket is one bin of the message length distribution.
type HistogramBucket struct {
	From  int
	To    int
	Count int
}

type SessionStats struct {
	SessionID   string
	TotalLogs   int
	Anomalies   int
	LogsByLevel []LevelStats
	LengthHist  []HistogramBucket
}
