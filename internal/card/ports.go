package card

import (
	"context"
)

// Repository defines the contract for card data storage.
type Repository interface {
	List(ctx context.Context, q Query) ([]Card, error)
	GetByID(ctx context.Context, id string) (Card, error)
	BulkUpsert(ctx context.Context, cards []Card) (int, error)
}
