package ports

import (
	"context"

	"github.com/Abhijith1907/conference-booking/internal/domain"
)

type ConferenceRepo interface {
	Create(ctx context.Context, c *domain.Conference) error
	GetByName(ctx context.Context, name string) (*domain.Conference, error)
	AdjustSlots(ctx context.Context, name string, delta int) (int, error)
	List(ctx context.Context) ([]*domain.Conference, error)
}
