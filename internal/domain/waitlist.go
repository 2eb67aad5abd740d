package domain

import "time"

// Waitlist is the per-conference FIFO of waitlisted booking ids.
// Insertion order is arrival order; an id appears at most once.
type Waitlist struct {
	Conference   string   `json:"conference"`
	BookingQueue []string `json:"booking_queue"`
}

// ConfirmationWindow marks when a freed seat was offered to a waitlisted
// booking. It exists only while the offer is pending: deleted on confirm,
// on cancel, or when expiry is observed.
type ConfirmationWindow struct {
	BookingID string    `json:"booking_id"`
	OfferedAt time.Time `json:"offered_at"`
}
