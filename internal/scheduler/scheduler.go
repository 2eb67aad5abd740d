package scheduler

import (
	"context"
	"time"

	"github.com/Abhijith1907/conference-booking/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type occupancyLister interface {
	OccupancySnapshot(ctx context.Context) ([]domain.ConferenceOccupancy, error)
}

// Scheduler periodically logs capacity and waitlist depth per conference.
// It is purely observational: confirmation window expiry is evaluated
// lazily on confirm/status reads, never swept here.
type Scheduler struct {
	conferences occupancyLister
	interval    time.Duration
	logger      logger.Logger
}

func New(
	conferences occupancyLister,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		conferences: conferences,
		interval:    interval,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("occupancy reporter started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("occupancy reporter stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	snapshot, err := s.conferences.OccupancySnapshot(ctx)
	if err != nil {
		s.logger.Error("failed to snapshot occupancy",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, o := range snapshot {
		if o.WaitlistDepth == 0 {
			continue
		}
		s.logger.Info("conference has an open waitlist",
			logger.String("conference", o.Conference),
			logger.Int("available_slots", o.AvailableSlots),
			logger.Int("waitlist_depth", o.WaitlistDepth),
		)
	}
}
