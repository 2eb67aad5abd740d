package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Abhijith1907/conference-booking/internal/domain"
	"github.com/Abhijith1907/conference-booking/internal/store"
)

type BookingRepository struct {
	tbl *store.Memory[domain.Booking]
}

func NewBookingRepo(tbl *store.Memory[domain.Booking]) *BookingRepository {
	return &BookingRepository{tbl: tbl}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if err := r.tbl.Create(b.ID, *b); err != nil {
		// booking ids are generated uuids and never reused
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, ok := r.tbl.Get(id)
	if !ok {
		return nil, domain.ErrBookingNotFound
	}

	return &b, nil
}

func (r *BookingRepository) SetStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	b, err := r.tbl.Update(id, func(b domain.Booking) domain.Booking {
		b.Status = status
		b.UpdatedAt = time.Now().UTC()
		return b
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("set booking status: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) ListByConference(ctx context.Context, conference string) ([]*domain.Booking, error) {
	records := r.tbl.List(func(b domain.Booking) bool {
		return b.Conference == conference
	}, 0, 0)

	res := make([]*domain.Booking, 0, len(records))
	for _, b := range records {
		b := b
		res = append(res, &b)
	}

	return res, nil
}
