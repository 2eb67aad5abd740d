package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Abhijith1907/conference-booking/internal/domain"
	"github.com/Abhijith1907/conference-booking/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// BookingService orchestrates the booking/waitlist state machine. Every
// mutating operation (and GetStatus, which may delete an expired
// confirmation window) runs under the exclusive lock of the conference it
// touches, so available_slots and the waitlist queue always move together.
type BookingService struct {
	bookingRepo    ports.BookingRepo
	conferenceRepo ports.ConferenceRepo
	userRepo       ports.UserRepo
	waitlistRepo   ports.WaitlistRepo
	windowRepo     ports.WindowRepo
	notifier       ports.BookingNotifier
	logger         logger.Logger

	windowTTL time.Duration
	now       func() time.Time

	locks sync.Map // conference name -> *sync.Mutex
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	conferenceRepo ports.ConferenceRepo,
	userRepo ports.UserRepo,
	waitlistRepo ports.WaitlistRepo,
	windowRepo ports.WindowRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
	windowTTL time.Duration,
) *BookingService {
	return &BookingService{
		bookingRepo:    bookingRepo,
		conferenceRepo: conferenceRepo,
		userRepo:       userRepo,
		waitlistRepo:   waitlistRepo,
		windowRepo:     windowRepo,
		notifier:       notifier,
		logger:         logger,
		windowTTL:      windowTTL,
		now:            time.Now,
	}
}

// lockConference serializes all operations touching one conference.
// Operations on different conferences proceed in parallel.
func (s *BookingService) lockConference(name string) func() {
	v, _ := s.locks.LoadOrStore(name, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Book reserves a seat for userID, or enqueues the booking on the
// conference waitlist when no seat is free. The waitlisted path is a
// success: the returned outcome carries the created booking either way.
func (s *BookingService) Book(ctx context.Context, conferenceName, userID string) (*domain.BookingOutcome, error) {
	if _, err := s.conferenceRepo.GetByName(ctx, conferenceName); err != nil {
		return nil, fmt.Errorf("check conference: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	unlock := s.lockConference(conferenceName)
	defer unlock()

	// re-read under the lock: the counter may have moved
	conf, err := s.conferenceRepo.GetByName(ctx, conferenceName)
	if err != nil {
		return nil, fmt.Errorf("check conference: %w", err)
	}

	if !s.now().Before(conf.Timing.StartTS) {
		return nil, domain.ErrConferenceStarted
	}

	booking := &domain.Booking{
		ID:         uuid.New().String(),
		UserID:     userID,
		Conference: conferenceName,
		CreatedAt:  s.now().UTC(),
		UpdatedAt:  s.now().UTC(),
	}

	if conf.AvailableSlots < 1 {
		booking.Status = domain.BookingStatusWaitlisted
		if err = s.bookingRepo.Create(ctx, booking); err != nil {
			return nil, fmt.Errorf("create booking: %w", err)
		}
		if err = s.waitlistRepo.Enqueue(ctx, conferenceName, booking.ID); err != nil {
			return nil, fmt.Errorf("enqueue booking: %w", err)
		}

		s.logger.Info("booking waitlisted",
			logger.String("booking_id", booking.ID),
			logger.String("conference", conferenceName),
			logger.String("user_id", userID),
		)

		return &domain.BookingOutcome{Booking: booking, Waitlisted: true}, nil
	}

	booking.Status = domain.BookingStatusConfirmed
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if _, err = s.conferenceRepo.AdjustSlots(ctx, conferenceName, -1); err != nil {
		return nil, fmt.Errorf("take slot: %w", err)
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", booking.ID),
		logger.String("conference", conferenceName),
		logger.String("user_id", userID),
	)

	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), user, conf)

	return &domain.BookingOutcome{Booking: booking}, nil
}

// Cancel releases a confirmed seat (offering it to the waitlist head, if
// any) or withdraws a waitlisted booking from the queue. Cancelling twice
// is rejected.
func (s *BookingService) Cancel(ctx context.Context, bookingID string) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("check booking: %w", err)
	}

	unlock := s.lockConference(booking.Conference)
	defer unlock()

	booking, err = s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("check booking: %w", err)
	}

	switch booking.Status {
	case domain.BookingStatusCancelled:
		return fmt.Errorf("%w: booking already cancelled", domain.ErrInvalidState)

	case domain.BookingStatusConfirmed:
		if _, err = s.conferenceRepo.AdjustSlots(ctx, booking.Conference, 1); err != nil {
			return fmt.Errorf("release slot: %w", err)
		}
		if _, err = s.bookingRepo.SetStatus(ctx, bookingID, domain.BookingStatusCancelled); err != nil {
			return fmt.Errorf("cancel booking: %w", err)
		}

		head, ok, err := s.waitlistRepo.PopFront(ctx, booking.Conference)
		if err != nil {
			return fmt.Errorf("pop waitlist: %w", err)
		}
		if ok {
			if err = s.offerSeat(ctx, booking.Conference, head); err != nil {
				return err
			}
		}

	case domain.BookingStatusWaitlisted:
		if _, err = s.waitlistRepo.Remove(ctx, booking.Conference, bookingID); err != nil {
			return fmt.Errorf("remove from waitlist: %w", err)
		}
		if err = s.windowRepo.Delete(ctx, bookingID); err != nil {
			return fmt.Errorf("drop confirmation window: %w", err)
		}
		if _, err = s.bookingRepo.SetStatus(ctx, bookingID, domain.BookingStatusCancelled); err != nil {
			return fmt.Errorf("cancel booking: %w", err)
		}
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("conference", booking.Conference),
	)

	return nil
}

// offerSeat opens a confirmation window for the waitlist head popped by a
// cancellation and notifies the owner. Caller holds the conference lock.
func (s *BookingService) offerSeat(ctx context.Context, conference, bookingID string) error {
	if err := s.windowRepo.Open(ctx, bookingID, s.now()); err != nil {
		return fmt.Errorf("open confirmation window: %w", err)
	}

	s.logger.Info("seat offered to waitlisted booking",
		logger.String("booking_id", bookingID),
		logger.String("conference", conference),
		logger.Duration("deadline", s.windowTTL),
	)

	head, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		s.logger.Error("failed to get booking for offer notification",
			logger.String("booking_id", bookingID),
			logger.String("error", err.Error()),
		)
		return nil
	}
	user, err := s.userRepo.GetByID(ctx, head.UserID)
	if err != nil {
		s.logger.Error("failed to get user for offer notification",
			logger.String("user_id", head.UserID),
			logger.String("error", err.Error()),
		)
		return nil
	}
	conf, err := s.conferenceRepo.GetByName(ctx, conference)
	if err != nil {
		return nil
	}

	go s.notifier.NotifySeatOffered(context.WithoutCancel(ctx), user, conf, s.windowTTL)

	return nil
}

// Confirm promotes a waitlisted booking that holds an open confirmation
// window. An expired window is deleted and the attempt rejected; the
// booking stays WAITLISTED and is not re-offered.
func (s *BookingService) Confirm(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("check booking: %w", err)
	}

	unlock := s.lockConference(booking.Conference)
	defer unlock()

	booking, err = s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("check booking: %w", err)
	}

	if booking.Status != domain.BookingStatusWaitlisted {
		return nil, fmt.Errorf("%w: booking is %s", domain.ErrInvalidState, booking.Status)
	}

	window, ok, err := s.windowRepo.Get(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("check confirmation window: %w", err)
	}
	if !ok {
		return nil, domain.ErrConfirmationNotOffered
	}

	if s.now().Sub(window.OfferedAt) > s.windowTTL {
		if err = s.windowRepo.Delete(ctx, bookingID); err != nil {
			return nil, fmt.Errorf("drop expired window: %w", err)
		}
		return nil, domain.ErrConfirmationExpired
	}

	// the freed seat may have been taken by a direct booking in the
	// meantime; the registry guard keeps the counter non-negative and the
	// window stays open so the holder can retry within the hour
	if _, err = s.conferenceRepo.AdjustSlots(ctx, booking.Conference, -1); err != nil {
		return nil, fmt.Errorf("take slot: %w", err)
	}

	booking, err = s.bookingRepo.SetStatus(ctx, bookingID, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("confirm booking: %w", err)
	}
	if err = s.windowRepo.Delete(ctx, bookingID); err != nil {
		return nil, fmt.Errorf("close confirmation window: %w", err)
	}

	s.logger.Info("waitlisted booking confirmed",
		logger.String("booking_id", bookingID),
		logger.String("conference", booking.Conference),
	)

	if user, err := s.userRepo.GetByID(ctx, booking.UserID); err == nil {
		if conf, err := s.conferenceRepo.GetByName(ctx, booking.Conference); err == nil {
			go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), user, conf)
		}
	}

	return booking, nil
}

// GetStatus returns the booking with its waitlist attachment: time left to
// confirm while a window is open, queue position while still queued.
// Observing an expired window deletes it.
func (s *BookingService) GetStatus(ctx context.Context, bookingID string) (*domain.BookingStatusInfo, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("check booking: %w", err)
	}

	unlock := s.lockConference(booking.Conference)
	defer unlock()

	booking, err = s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("check booking: %w", err)
	}

	info := &domain.BookingStatusInfo{Booking: booking}
	if booking.Status != domain.BookingStatusWaitlisted {
		return info, nil
	}

	window, ok, err := s.windowRepo.Get(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("check confirmation window: %w", err)
	}
	if ok {
		elapsed := s.now().Sub(window.OfferedAt)
		if elapsed > s.windowTTL {
			if err = s.windowRepo.Delete(ctx, bookingID); err != nil {
				return nil, fmt.Errorf("drop expired window: %w", err)
			}
			return nil, domain.ErrConfirmationExpired
		}
		left := s.windowTTL - elapsed
		info.TimeLeft = &left
		return info, nil
	}

	if pos, queued, err := s.waitlistRepo.Position(ctx, booking.Conference, bookingID); err != nil {
		return nil, fmt.Errorf("queue position: %w", err)
	} else if queued {
		info.QueuePosition = &pos
	}

	return info, nil
}
