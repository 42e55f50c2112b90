package session

import "time"

const (
	DefaultInterval         = 30 * time.Second
	DefaultHistoryLimit     = 200
	DefaultTopEntries       = 10
	DefaultTrendWindowDays  = 7
	// DefaultPendingIntervals is how many refresh intervals a pending payment may wait for the ledger.
	DefaultPendingIntervals = 10

	refreshKey = "refresh"
)
