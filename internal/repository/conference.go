package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Abhijith1907/conference-booking/internal/domain"
	"github.com/Abhijith1907/conference-booking/internal/store"
)

type ConferenceRepository struct {
	tbl *store.Memory[domain.Conference]
}

func NewConferenceRepo(tbl *store.Memory[domain.Conference]) *ConferenceRepository {
	return &ConferenceRepository{tbl: tbl}
}

func (r *ConferenceRepository) Create(ctx context.Context, c *domain.Conference) error {
	if err := r.tbl.Create(c.Name, *c); err != nil {
		if errors.Is(err, store.ErrExists) {
			return domain.ErrConferenceExists
		}
		return fmt.Errorf("create conference: %w", err)
	}

	return nil
}

func (r *ConferenceRepository) GetByName(ctx context.Context, name string) (*domain.Conference, error) {
	c, ok := r.tbl.Get(name)
	if !ok {
		return nil, domain.ErrConferenceNotFound
	}

	return &c, nil
}

// AdjustSlots atomically adds delta (may be negative) to available_slots.
// The counter is never allowed to go negative.
func (r *ConferenceRepository) AdjustSlots(ctx context.Context, name string, delta int) (int, error) {
	var invalid bool
	c, err := r.tbl.Update(name, func(c domain.Conference) domain.Conference {
		if c.AvailableSlots+delta < 0 {
			invalid = true
			return c
		}
		c.AvailableSlots += delta
		return c
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, domain.ErrConferenceNotFound
		}
		return 0, fmt.Errorf("adjust slots: %w", err)
	}
	if invalid {
		return c.AvailableSlots, fmt.Errorf("%w: available_slots would go negative", domain.ErrInvalidState)
	}

	return c.AvailableSlots, nil
}

func (r *ConferenceRepository) List(ctx context.Context) ([]*domain.Conference, error) {
	records := r.tbl.List(nil, 0, 0)

	res := make([]*domain.Conference, 0, len(records))
	for _, c := range records {
		c := c
		res = append(res, &c)
	}

	return res, nil
}
