package card

import (
	"errors"
)

// ErrNotFound is returned when a card is not found.
var ErrNotFound = errors.New("card not found")

// ErrInvalidQuery is returned when a list query fails validation before any
// store access is attempted.
var ErrInvalidQuery = errors.New("invalid query")

// Card represents one normalized catalog entry. Cards are written only by the
// bulk ingestion pipeline; the query service is read-only with respect to
// this table.
type Card struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	ReleasedAt      string   `json:"released_at,omitempty"`
	SetName         string   `json:"set_name,omitempty"`
	CollectorNumber string   `json:"collector_number,omitempty"`
	Rarity          string   `json:"rarity,omitempty"`
	TypeLine        string   `json:"type_line,omitempty"`
	USDPrice        *float64 `json:"usd_price"`
	USDFoilPrice    *float64 `json:"usd_foil_price"`
	ImageURL        *string  `json:"image_url"`
	ScryfallURI     *string  `json:"scryfall_uri"`
}

// Query defines filters, sorting and pagination for listing cards.
type Query struct {
	Rarity string
	Search string
	Sort   string
	Order  string
	Limit  int
	Offset int
}

const (
	MinLimit     = 1
	MaxLimit     = 500
	DefaultLimit = 50
)
