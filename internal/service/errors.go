package service

import "fmt"

var (
	ErrNoRecords           = fmt.Errorf("no valid log entries found")
	ErrCannotCreateSession = fmt.Errorf("cannot create session")
	ErrCannotStoreLogs     = fmt.Errorf("cannot store logs")
)
