package ports

import (
	"context"

	"github.com/Abhijith1907/conference-booking/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	SetStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	ListByConference(ctx context.Context, conference string) ([]*domain.Booking, error)
}
