package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed  BookingStatus = "CONFIRMED"
	BookingStatusWaitlisted BookingStatus = "WAITLISTED"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
)

type Booking struct {
	ID         string        `json:"booking_id"`
	UserID     string        `json:"user_id"`
	Conference string        `json:"conference"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// BookingOutcome is the result of a book request. Waitlisted is a success
// variant, not an error: the booking exists and is queryable even though no
// seat was free at booking time.
type BookingOutcome struct {
	Booking    *Booking
	Waitlisted bool
}

// BookingStatusInfo is a booking plus the waitlist attachment computed at
// read time. At most one of TimeLeft and QueuePosition is set: TimeLeft
// while a confirmation window is open, QueuePosition while still queued.
type BookingStatusInfo struct {
	Booking       *Booking
	TimeLeft      *time.Duration
	QueuePosition *int
}
