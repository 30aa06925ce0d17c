package card

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestService_List_RejectsInvalidQueryWithoutStoreAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	// No repo expectations set: any store access fails the test.
	invalid := []Query{
		{Sort: "scryfall_uri", Limit: 50},
		{Order: "upward", Limit: 50},
		{Limit: 0},
		{Limit: 501},
		{Limit: 50, Offset: -1},
	}

	for _, q := range invalid {
		_, err := service.List(context.Background(), q)
		assert.ErrorIs(t, err, ErrInvalidQuery)
	}
}

func TestService_List_PassesQueryThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	q := Query{Rarity: "rare", Search: "marsh", Sort: "name", Order: "asc", Limit: 50}
	want := []Card{{ID: "card-b", Name: "Blooming Marsh", Rarity: "rare"}}

	mockRepo.EXPECT().List(gomock.Any(), q).Return(want, nil)

	got, err := service.List(context.Background(), q)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().GetByID(gomock.Any(), "card-a").Return(Card{ID: "card-a"}, nil)

	got, err := service.GetByID(context.Background(), "card-a")
	assert.NoError(t, err)
	assert.Equal(t, "card-a", got.ID)

	mockRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(Card{}, ErrNotFound)

	_, err = service.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
