package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Abhijith1907/conference-booking/internal/domain"
	"github.com/Abhijith1907/conference-booking/internal/store"
)

type WindowRepository struct {
	tbl *store.Memory[domain.ConfirmationWindow]
}

func NewWindowRepo(tbl *store.Memory[domain.ConfirmationWindow]) *WindowRepository {
	return &WindowRepository{tbl: tbl}
}

// Open records that a freed seat was offered to bookingID at offeredAt.
// A booking holds at most one window at a time.
func (r *WindowRepository) Open(ctx context.Context, bookingID string, offeredAt time.Time) error {
	w := domain.ConfirmationWindow{
		BookingID: bookingID,
		OfferedAt: offeredAt,
	}
	if err := r.tbl.Create(bookingID, w); err != nil {
		if errors.Is(err, store.ErrExists) {
			return fmt.Errorf("%w: confirmation window already open", domain.ErrInvalidState)
		}
		return fmt.Errorf("open confirmation window: %w", err)
	}

	return nil
}

func (r *WindowRepository) Get(ctx context.Context, bookingID string) (*domain.ConfirmationWindow, bool, error) {
	w, ok := r.tbl.Get(bookingID)
	if !ok {
		return nil, false, nil
	}

	return &w, true, nil
}

// Delete removes the window if present. Deleting an absent window is a no-op.
func (r *WindowRepository) Delete(ctx context.Context, bookingID string) error {
	if err := r.tbl.Delete(bookingID); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("delete confirmation window: %w", err)
	}

	return nil
}
