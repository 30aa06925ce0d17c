package favorite

import (
	"context"

	"cardapi/internal/card"
)

// Repository defines the contract for favorites storage.
type Repository interface {
	Add(ctx context.Context, cardID string) error
	Remove(ctx context.Context, cardID string) error
	ListCards(ctx context.Context) ([]card.Card, error)
}
