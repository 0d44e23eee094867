package store

import "time"

type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Lines      int
	Ignored    int
}

type LedgerEntry struct {
	ID      string
	RunID   string
	Seq     int
	UserID  string
	Type    string
	Amount  int64
	Balance int64
	Line    int
}

// RunRecord is everything exported for one finished replay.
type RunRecord struct {
	Run     Run
	Results []string
	Entries []LedgerEntry
}
