package ingest

import (
	"time"
)

// Run records one bulk-load execution for bookkeeping.
type Run struct {
	ID            string
	StartedAt     time.Time
	FinishedAt    *time.Time
	Status        string // RUNNING, COMPLETED, FAILED
	Source        string // bulk, search
	SearchQuery   string
	CardsFetched  int
	CardsUpserted int
	Error         string
}

const (
	StatusRunning   = "RUNNING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

const (
	SourceBulk   = "bulk"
	SourceSearch = "search"
)
