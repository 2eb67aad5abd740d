package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/Abhijith1907/conference-booking/internal/domain"
	"github.com/Abhijith1907/conference-booking/internal/store"
)

type WaitlistRepository struct {
	tbl *store.Memory[domain.Waitlist]
}

func NewWaitlistRepo(tbl *store.Memory[domain.Waitlist]) *WaitlistRepository {
	return &WaitlistRepository{tbl: tbl}
}

// Enqueue appends bookingID to the tail of the conference queue, creating
// the queue on first use. An id already present is not enqueued twice.
func (r *WaitlistRepository) Enqueue(ctx context.Context, conference, bookingID string) error {
	_, err := r.tbl.Update(conference, func(w domain.Waitlist) domain.Waitlist {
		if slices.Contains(w.BookingQueue, bookingID) {
			return w
		}
		w.BookingQueue = append(slices.Clone(w.BookingQueue), bookingID)
		return w
	})
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("enqueue: %w", err)
	}

	w := domain.Waitlist{
		Conference:   conference,
		BookingQueue: []string{bookingID},
	}
	if err := r.tbl.Create(conference, w); err != nil {
		return fmt.Errorf("create waitlist: %w", err)
	}
	return nil
}

// PopFront removes and returns the head of the conference queue.
// The second return value is false when the queue is empty or absent.
func (r *WaitlistRepository) PopFront(ctx context.Context, conference string) (string, bool, error) {
	var head string
	var ok bool
	_, err := r.tbl.Update(conference, func(w domain.Waitlist) domain.Waitlist {
		if len(w.BookingQueue) == 0 {
			return w
		}
		head = w.BookingQueue[0]
		ok = true
		w.BookingQueue = slices.Clone(w.BookingQueue[1:])
		return w
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("pop waitlist: %w", err)
	}

	return head, ok, nil
}

// Remove deletes bookingID from the conference queue wherever it sits.
func (r *WaitlistRepository) Remove(ctx context.Context, conference, bookingID string) (bool, error) {
	var removed bool
	_, err := r.tbl.Update(conference, func(w domain.Waitlist) domain.Waitlist {
		i := slices.Index(w.BookingQueue, bookingID)
		if i < 0 {
			return w
		}
		removed = true
		w.BookingQueue = slices.Delete(slices.Clone(w.BookingQueue), i, i+1)
		return w
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("remove from waitlist: %w", err)
	}

	return removed, nil
}

// Position returns the zero-based queue index of bookingID.
func (r *WaitlistRepository) Position(ctx context.Context, conference, bookingID string) (int, bool, error) {
	w, ok := r.tbl.Get(conference)
	if !ok {
		return 0, false, nil
	}

	i := slices.Index(w.BookingQueue, bookingID)
	if i < 0 {
		return 0, false, nil
	}

	return i, true, nil
}

func (r *WaitlistRepository) Depth(ctx context.Context, conference string) (int, error) {
	w, ok := r.tbl.Get(conference)
	if !ok {
		return 0, nil
	}

	return len(w.BookingQueue), nil
}
