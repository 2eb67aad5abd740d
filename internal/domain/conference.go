package domain

import "time"

// TimeLayout is the wire format for conference and booking timestamps.
// Naive local time, no timezone suffix.
const TimeLayout = "2006-01-02 15:04:05"

const (
	// MaxConferenceDuration bounds end_ts - start_ts.
	MaxConferenceDuration = 12 * time.Hour
	// MaxTopics bounds the topics list on a conference.
	MaxTopics = 10
)

type Timing struct {
	StartTS time.Time `json:"start_ts"`
	EndTS   time.Time `json:"end_ts"`
}

type Conference struct {
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	Topics         []string  `json:"topics"`
	Timing         Timing    `json:"timing"`
	AvailableSlots int       `json:"available_slots"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateConferenceInput struct {
	Name           string
	Location       string
	Topics         []string
	StartTS        time.Time
	EndTS          time.Time
	AvailableSlots int
}

// ConferenceOccupancy is a point-in-time view of a conference's capacity
// and waitlist pressure, reported by the background scheduler.
type ConferenceOccupancy struct {
	Conference     string `json:"conference"`
	AvailableSlots int    `json:"available_slots"`
	WaitlistDepth  int    `json:"waitlist_depth"`
}
