package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Abhijith1907/conference-booking/internal/domain"
	"github.com/Abhijith1907/conference-booking/internal/service/ports"
)

type ConferenceService struct {
	repo         ports.ConferenceRepo
	waitlistRepo ports.WaitlistRepo
}

func NewConferenceService(repo ports.ConferenceRepo, waitlistRepo ports.WaitlistRepo) *ConferenceService {
	return &ConferenceService{
		repo:         repo,
		waitlistRepo: waitlistRepo,
	}
}

func (s *ConferenceService) Create(ctx context.Context, input domain.CreateConferenceInput) (*domain.Conference, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.AvailableSlots < 0 {
		return nil, fmt.Errorf("%w: available_slots must not be negative", domain.ErrValidation)
	}
	if len(input.Topics) > domain.MaxTopics {
		return nil, fmt.Errorf("%w: at most %d topics allowed", domain.ErrValidation, domain.MaxTopics)
	}
	if input.EndTS.Before(input.StartTS) {
		return nil, fmt.Errorf("%w: start_ts must not be after end_ts", domain.ErrInvalidSchedule)
	}
	if input.EndTS.Sub(input.StartTS) > domain.MaxConferenceDuration {
		return nil, fmt.Errorf("%w: duration must not exceed %s", domain.ErrInvalidSchedule, domain.MaxConferenceDuration)
	}

	conf := &domain.Conference{
		Name:     input.Name,
		Location: input.Location,
		Topics:   input.Topics,
		Timing: domain.Timing{
			StartTS: input.StartTS,
			EndTS:   input.EndTS,
		},
		AvailableSlots: input.AvailableSlots,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, conf); err != nil {
		return nil, fmt.Errorf("create conference: %w", err)
	}

	return conf, nil
}

func (s *ConferenceService) GetByName(ctx context.Context, name string) (*domain.Conference, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *ConferenceService) List(ctx context.Context) ([]*domain.Conference, error) {
	return s.repo.List(ctx)
}

// OccupancySnapshot reports capacity and waitlist depth for every
// conference. Used by the background occupancy reporter.
func (s *ConferenceService) OccupancySnapshot(ctx context.Context) ([]domain.ConferenceOccupancy, error) {
	confs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conferences: %w", err)
	}

	res := make([]domain.ConferenceOccupancy, 0, len(confs))
	for _, c := range confs {
		depth, err := s.waitlistRepo.Depth(ctx, c.Name)
		if err != nil {
			return nil, fmt.Errorf("waitlist depth: %w", err)
		}
		res = append(res, domain.ConferenceOccupancy{
			Conference:     c.Name,
			AvailableSlots: c.AvailableSlots,
			WaitlistDepth:  depth,
		})
	}

	return res, nil
}
