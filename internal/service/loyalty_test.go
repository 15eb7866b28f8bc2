package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
	"github.com/MahikaLakoul07/SportifyBackend/internal/service/ports/mocks"
)

func TestLoyalty_Apply_CreditsOnce(t *testing.T) {
	repo := mocks.NewMockLoyaltyRepo(t)
	svc := NewLoyaltyService(repo, newTestLogger(t), 10)

	repo.EXPECT().Apply(mock.Anything, "b1", 10).Return(true, nil)

	applied, err := svc.Apply(context.Background(), "b1")

	require.NoError(t, err)
	assert.True(t, applied)
}

func TestLoyalty_Apply_SecondCallNoOp(t *testing.T) {
	repo := mocks.NewMockLoyaltyRepo(t)
	svc := NewLoyaltyService(repo, newTestLogger(t), 10)

	repo.EXPECT().Apply(mock.Anything, "b1", 10).Return(false, nil)

	applied, err := svc.Apply(context.Background(), "b1")

	require.NoError(t, err)
	assert.False(t, applied)
}

func TestLoyalty_SettleDue_ContinuesOnError(t *testing.T) {
	repo := mocks.NewMockLoyaltyRepo(t)
	svc := NewLoyaltyService(repo, newTestLogger(t), 10)

	repo.EXPECT().ListDue(mock.Anything).Return([]string{"b1", "b2", "b3"}, nil)
	repo.EXPECT().Apply(mock.Anything, "b1", 10).Return(true, nil)
	repo.EXPECT().Apply(mock.Anything, "b2", 10).Return(false, errors.New("db error"))
	repo.EXPECT().Apply(mock.Anything, "b3", 10).Return(true, nil)

	settled, err := svc.SettleDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, settled)
}

func TestLoyalty_ByPlayer(t *testing.T) {
	repo := mocks.NewMockLoyaltyRepo(t)
	svc := NewLoyaltyService(repo, newTestLogger(t), 10)

	repo.EXPECT().GetByPlayer(mock.Anything, "p1").Return(&domain.Loyalty{
		PlayerID:     "p1",
		TotalMatches: 4,
		Points:       40,
	}, nil)

	loyalty, err := svc.ByPlayer(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, 4, loyalty.TotalMatches)
	assert.Equal(t, 40, loyalty.Points)
}
