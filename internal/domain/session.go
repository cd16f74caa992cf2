package domain

import "time"

// AgeBucket groups sessions by how long ago they were created,
// mirroring the dashboard sidebar sections.
type AgeBucket string

const (
	BucketToday     AgeBucket = "Today"
	BucketYesterday AgeBucket = "Yesterday"
	BucketWeek      AgeBucket = "Previous 7 Days"
	BucketOlder     AgeBucket = "Previous 30 Days"
)

// Session is one ingestion-through-scoring run over a single uploaded file.
type Session struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Filename  string    `db:"filename"`
	TotalLogs int       `db:"total_logs"`
	Anomalies int       `db:"anomalies"`
	CreatedAt time.Time `db:"created_at"`
}

// Age returns the sidebar bucket for the session relative to now.
func (s Session) Age(now time.Time) AgeBucket {
	created := s.CreatedAt
	switch {
	case sameDay(created, now):
		return BucketToday
	case sameDay(created, now.AddDate(0, 0, -1)):
		return BucketYesterday
	case !created.Before(now.AddDate(0, 0, -7)):
		return BucketWeek
	default:
		return BucketOlder
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
