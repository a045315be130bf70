package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type sessionCleaner interface {
	CleanupExpired(ctx context.Context) (int64, error)
}

// Scheduler sweeps expired sessions on an interval so the store does not
// accumulate dead cookies.
type Scheduler struct {
	authService sessionCleaner
	interval    time.Duration
	logger      logger.Logger
}

func New(
	authService sessionCleaner,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		authService: authService,
		interval:    interval,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	removed, err := s.authService.CleanupExpired(ctx)
	if err != nil {
		s.logger.Error("failed to clean up expired sessions",
			logger.String("error", err.Error()),
		)
		return
	}

	if removed > 0 {
		s.logger.Info("sessions swept",
			logger.Int64("removed", removed),
		)
	}
}
