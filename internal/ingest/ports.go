package ingest

import (
	"context"

	"cardapi/internal/platform/scryfall"
)

// Repository persists ingest run bookkeeping.
type Repository interface {
	CreateRun(ctx context.Context, run *Run) (string, error)
	UpdateRun(ctx context.Context, run *Run) error
}

// ScryfallClient is the card provider surface the sync needs.
type ScryfallClient interface {
	OracleBulkURI(ctx context.Context) (string, error)
	DownloadBulk(ctx context.Context, downloadURI string) ([]scryfall.Card, error)
	SearchCards(ctx context.Context, query string) ([]scryfall.Card, error)
}
