package ports

import (
	"context"
	"time"

	"github.com/Abhijith1907/conference-booking/internal/domain"
)

type BookingNotifier interface {
	NotifySeatOffered(ctx context.Context, user *domain.User, conf *domain.Conference, deadline time.Duration)
	NotifyBookingConfirmed(ctx context.Context, user *domain.User, conf *domain.Conference)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, conf *domain.Conference)
}
