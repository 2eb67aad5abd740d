package ports

import (
	"context"
	"time"

	"github.com/Abhijith1907/conference-booking/internal/domain"
)

type WaitlistRepo interface {
	Enqueue(ctx context.Context, conference, bookingID string) error
	PopFront(ctx context.Context, conference string) (string, bool, error)
	Remove(ctx context.Context, conference, bookingID string) (bool, error)
	Position(ctx context.Context, conference, bookingID string) (int, bool, error)
	Depth(ctx context.Context, conference string) (int, error)
}

type WindowRepo interface {
	Open(ctx context.Context, bookingID string, offeredAt time.Time) error
	Get(ctx context.Context, bookingID string) (*domain.ConfirmationWindow, bool, error)
	Delete(ctx context.Context, bookingID string) error
}
