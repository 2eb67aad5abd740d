package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Abhijith1907/conference-booking/internal/domain"
	"github.com/Abhijith1907/conference-booking/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_ReportsOccupancy(t *testing.T) {
	lister := mocks.NewMockOccupancyLister(t)
	log := newTestLogger(t)

	s := New(lister, 50*time.Millisecond, log)

	snapshot := []domain.ConferenceOccupancy{
		{Conference: "gophercon", AvailableSlots: 0, WaitlistDepth: 3},
	}
	lister.EXPECT().OccupancySnapshot(mock.Anything).Return(snapshot, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(lister.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	lister := mocks.NewMockOccupancyLister(t)
	log := newTestLogger(t)

	s := New(lister, 50*time.Millisecond, log)

	lister.EXPECT().OccupancySnapshot(mock.Anything).Return(nil, errors.New("store closed"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(lister.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	lister := mocks.NewMockOccupancyLister(t)
	log := newTestLogger(t)

	s := New(lister, time.Second, log) // interval longer than test

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

func TestScheduler_MultipleTicks(t *testing.T) {
	lister := mocks.NewMockOccupancyLister(t)
	log := newTestLogger(t)

	s := New(lister, 30*time.Millisecond, log)

	lister.EXPECT().OccupancySnapshot(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(lister.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
