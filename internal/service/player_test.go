package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
	"github.com/MahikaLakoul07/SportifyBackend/internal/service/ports/mocks"
)

func TestPlayer_Create_Success(t *testing.T) {
	repo := mocks.NewMockPlayerRepo(t)
	svc := NewPlayerService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	player, err := svc.Create(context.Background(), domain.CreatePlayerInput{
		Name:     "Asha",
		Phone:    "9800000001",
		Age:      24,
		Position: "keeper",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, player.ID)
	assert.Equal(t, "Asha", player.Name)
}

func TestPlayer_Create_Validation(t *testing.T) {
	repo := mocks.NewMockPlayerRepo(t)
	svc := NewPlayerService(repo, newTestLogger(t))

	_, err := svc.Create(context.Background(), domain.CreatePlayerInput{Phone: "98", Age: 20})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), domain.CreatePlayerInput{Name: "Asha", Age: 20})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), domain.CreatePlayerInput{Name: "Asha", Phone: "98"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPlayer_Create_PhoneTaken(t *testing.T) {
	repo := mocks.NewMockPlayerRepo(t)
	svc := NewPlayerService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrPhoneTaken)

	_, err := svc.Create(context.Background(), domain.CreatePlayerInput{
		Name: "Asha", Phone: "9800000001", Age: 24,
	})

	assert.ErrorIs(t, err, domain.ErrPhoneTaken)
}

func TestPlayer_Connect_NormalizesPair(t *testing.T) {
	repo := mocks.NewMockPlayerRepo(t)
	svc := NewPlayerService(repo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "bbb").Return(&domain.Player{ID: "bbb"}, nil)
	repo.EXPECT().GetByID(mock.Anything, "aaa").Return(&domain.Player{ID: "aaa"}, nil)

	var stored *domain.PlayerConnection
	repo.EXPECT().Connect(mock.Anything, mock.Anything).Run(func(ctx context.Context, c *domain.PlayerConnection) {
		stored = c
	}).Return(nil)

	conn, err := svc.Connect(context.Background(), "bbb", "aaa")

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "aaa", stored.PlayerID)
	assert.Equal(t, "bbb", stored.PeerID)
	assert.Equal(t, domain.ConnectionAccepted, conn.Status)
}

func TestPlayer_Connect_SelfConnection(t *testing.T) {
	repo := mocks.NewMockPlayerRepo(t)
	svc := NewPlayerService(repo, newTestLogger(t))

	_, err := svc.Connect(context.Background(), "p1", "p1")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPlayer_Connect_Duplicate(t *testing.T) {
	repo := mocks.NewMockPlayerRepo(t)
	svc := NewPlayerService(repo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "aaa").Return(&domain.Player{ID: "aaa"}, nil)
	repo.EXPECT().GetByID(mock.Anything, "bbb").Return(&domain.Player{ID: "bbb"}, nil)
	repo.EXPECT().Connect(mock.Anything, mock.Anything).Return(domain.ErrDuplicateConnection)

	_, err := svc.Connect(context.Background(), "aaa", "bbb")

	assert.ErrorIs(t, err, domain.ErrDuplicateConnection)
}
