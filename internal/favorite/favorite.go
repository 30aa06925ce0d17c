package favorite

import (
	"errors"
	"time"
)

// ErrAlreadyFavorited is returned when the card identifier is already in the
// favorites set. The primary-key constraint is the sole source of truth for
// this condition; no existence pre-check is ever made.
var ErrAlreadyFavorited = errors.New("card already favorited")

// Favorite marks a card identifier as being on the watchlist. AddedAt is
// assigned by the store, never by a caller.
type Favorite struct {
	ID      string    `json:"id"`
	AddedAt time.Time `json:"added_at"`
}
