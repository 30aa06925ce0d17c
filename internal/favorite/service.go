package favorite

import (
	"context"

	"cardapi/internal/card"
)

// Service maintains the favorites set. There is no referential check against
// the catalog: favoriting an unknown identifier succeeds and stays invisible
// in List until a matching card is ingested.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add inserts the card identifier into the favorites set. Returns
// ErrAlreadyFavorited when it is already present.
func (s *Service) Add(ctx context.Context, cardID string) error {
	return s.repo.Add(ctx, cardID)
}

// Remove deletes the card identifier from the favorites set. Removing an
// absent identifier is a no-op, not an error.
func (s *Service) Remove(ctx context.Context, cardID string) error {
	return s.repo.Remove(ctx, cardID)
}

// List returns every favorited card that still exists in the catalog,
// in favorite-insertion order.
func (s *Service) List(ctx context.Context) ([]card.Card, error) {
	return s.repo.ListCards(ctx)
}
