package card

import (
	"context"
)

// Service provides card query business logic.
type Service struct {
	repo Repository
}

// NewService creates a new card query service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the page of cards matching the query. The query is validated
// before any store access: a malformed query is rejected here and never
// executed.
func (s *Service) List(ctx context.Context, q Query) ([]Card, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, q)
}

// GetByID returns a card by its catalog identifier.
func (s *Service) GetByID(ctx context.Context, id string) (Card, error) {
	return s.repo.GetByID(ctx, id)
}
