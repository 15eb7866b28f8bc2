package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
	"github.com/MahikaLakoul07/SportifyBackend/internal/service/ports/mocks"
)

func TestGround_Get_CacheMiss(t *testing.T) {
	repo := mocks.NewMockGroundRepo(t)
	rdb, rmock := redismock.NewClientMock()
	svc := NewGroundService(repo, rdb, newTestLogger(t))

	ground := testGround()
	raw, err := json.Marshal(ground)
	require.NoError(t, err)

	rmock.ExpectGet("ground:g1").RedisNil()
	repo.EXPECT().GetByID(mock.Anything, "g1").Return(ground, nil)
	rmock.ExpectSet("ground:g1", raw, 5*time.Minute).SetVal("OK")

	got, err := svc.Get(context.Background(), "g1")

	require.NoError(t, err)
	assert.Equal(t, "g1", got.ID)
	require.NoError(t, rmock.ExpectationsWereMet())
}

func TestGround_Get_CacheHit(t *testing.T) {
	repo := mocks.NewMockGroundRepo(t)
	rdb, rmock := redismock.NewClientMock()
	svc := NewGroundService(repo, rdb, newTestLogger(t))

	raw, err := json.Marshal(testGround())
	require.NoError(t, err)

	rmock.ExpectGet("ground:g1").SetVal(string(raw))

	got, err := svc.Get(context.Background(), "g1")

	require.NoError(t, err)
	assert.Equal(t, "g1", got.ID)
	assert.Equal(t, "Arena One", got.Name)
	require.NoError(t, rmock.ExpectationsWereMet())
}

func TestGround_Delete_InvalidatesCache(t *testing.T) {
	repo := mocks.NewMockGroundRepo(t)
	rdb, rmock := redismock.NewClientMock()
	svc := NewGroundService(repo, rdb, newTestLogger(t))

	repo.EXPECT().SoftDelete(mock.Anything, "g1").Return(nil)
	rmock.ExpectDel("ground:g1").SetVal(1)

	require.NoError(t, svc.Delete(context.Background(), "g1"))
	require.NoError(t, rmock.ExpectationsWereMet())
}

func TestGround_Create_Validation(t *testing.T) {
	repo := mocks.NewMockGroundRepo(t)
	rdb, _ := redismock.NewClientMock()
	svc := NewGroundService(repo, rdb, newTestLogger(t))

	_, err := svc.Create(context.Background(), domain.CreateGroundInput{
		OwnerID: "o1",
		Name:    "Arena One",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), domain.CreateGroundInput{
		OwnerID: "o1",
		Name:    "Arena One",
		Windows: []domain.AvailabilityWindow{
			{Weekday: time.Monday, OpenMin: 10 * 60, CloseMin: 9 * 60},
		},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGround_Create_OverlappingWindows(t *testing.T) {
	repo := mocks.NewMockGroundRepo(t)
	rdb, _ := redismock.NewClientMock()
	svc := NewGroundService(repo, rdb, newTestLogger(t))

	_, err := svc.Create(context.Background(), domain.CreateGroundInput{
		OwnerID: "o1",
		Name:    "Arena One",
		Windows: []domain.AvailabilityWindow{
			{Weekday: time.Monday, OpenMin: 9 * 60, CloseMin: 12 * 60},
			{Weekday: time.Monday, OpenMin: 11 * 60, CloseMin: 14 * 60},
		},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGround_Create_Success(t *testing.T) {
	repo := mocks.NewMockGroundRepo(t)
	rdb, _ := redismock.NewClientMock()
	svc := NewGroundService(repo, rdb, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	ground, err := svc.Create(context.Background(), domain.CreateGroundInput{
		OwnerID: "o1",
		Name:    "Arena One",
		Size:    "7-a-side",
		Windows: []domain.AvailabilityWindow{
			{Weekday: time.Monday, OpenMin: 9 * 60, CloseMin: 22 * 60},
		},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, ground.ID)
	assert.Equal(t, 7, ground.TeamCapacity())
}
