package repotypes

import (
	"time"
)

type LogFilter struct {
	SessionID     string
	Level         string
	OnlyAnomalies bool
	From          time.Time
	To            time.Time
	Limit         int
}
