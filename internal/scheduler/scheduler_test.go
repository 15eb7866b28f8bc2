package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
	"github.com/MahikaLakoul07/SportifyBackend/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_SweepsExpired(t *testing.T) {
	sweeper := mocks.NewMockExpirySweeper(t)
	settler := mocks.NewMockLoyaltySettler(t)
	log := newTestLogger(t)

	s := New(sweeper, settler, 50*time.Millisecond, time.Minute, log)

	expired := []*domain.Reservation{
		{ID: "r1", GroundID: "g1", PlayerID: "p1"},
	}
	sweeper.EXPECT().SweepExpired(mock.Anything).Return(expired, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sweeper.Calls), 1)
}

func TestScheduler_Tick_SettlesLoyalty(t *testing.T) {
	sweeper := mocks.NewMockExpirySweeper(t)
	settler := mocks.NewMockLoyaltySettler(t)
	log := newTestLogger(t)

	s := New(sweeper, settler, time.Minute, 50*time.Millisecond, log)

	settler.EXPECT().SettleDue(mock.Anything).Return(2, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(settler.Calls), 1)
}

func TestScheduler_Tick_HandlesErrors(t *testing.T) {
	sweeper := mocks.NewMockExpirySweeper(t)
	settler := mocks.NewMockLoyaltySettler(t)
	log := newTestLogger(t)

	s := New(sweeper, settler, 40*time.Millisecond, 40*time.Millisecond, log)

	sweeper.EXPECT().SweepExpired(mock.Anything).Return(nil, errors.New("db error"))
	settler.EXPECT().SettleDue(mock.Anything).Return(0, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sweeper.Calls), 1)
	assert.GreaterOrEqual(t, len(settler.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	sweeper := mocks.NewMockExpirySweeper(t)
	settler := mocks.NewMockLoyaltySettler(t)
	log := newTestLogger(t)

	s := New(sweeper, settler, time.Second, time.Second, log) // intervals longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
