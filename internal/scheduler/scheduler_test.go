package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/vachprogramming/munich-event-platform/internal/scheduler/mocks"
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

func TestScheduler_Tick_SweepsExpired(t *testing.T) {
	cleaner := mocks.NewMockSessionCleaner(t)
	log := newTestLogger(t)

	s := New(cleaner, 50*time.Millisecond, log)

	cleaner.EXPECT().CleanupExpired(mock.Anything).Return(int64(2), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(cleaner.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	cleaner := mocks.NewMockSessionCleaner(t)
	log := newTestLogger(t)

	s := New(cleaner, 50*time.Millisecond, log)

	cleaner.EXPECT().CleanupExpired(mock.Anything).Return(int64(0), errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(cleaner.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	cleaner := mocks.NewMockSessionCleaner(t)
	log := newTestLogger(t)

	s := New(cleaner, time.Second, log) // interval longer than test

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
	cleaner := mocks.NewMockSessionCleaner(t)
	log := newTestLogger(t)

	s := New(cleaner, 30*time.Millisecond, log)

	cleaner.EXPECT().CleanupExpired(mock.Anything).Return(int64(0), nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(cleaner.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
