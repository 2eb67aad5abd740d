package dto

import (
	"time"

	"github.com/Abhijith1907/conference-booking/internal/domain"
)

type TimingResponse struct {
	StartTS string `json:"start_ts"`
	EndTS   string `json:"end_ts"`
}

type ConferenceResponse struct {
	Name           string         `json:"name"`
	Location       string         `json:"location"`
	Topics         []string       `json:"topics"`
	Timing         TimingResponse `json:"timing"`
	AvailableSlots int            `json:"available_slots"`
	CreatedAt      string         `json:"created_at"`
}

type BookingResponse struct {
	BookingID  string `json:"booking_id"`
	UserID     string `json:"user_id"`
	Conference string `json:"conference"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

// WaitlistedResponse is returned when a book request lands on the
// waitlist: an accepted outcome carrying the id to track the booking with.
type WaitlistedResponse struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

type BookingStatusResponse struct {
	Booking           BookingResponse `json:"booking"`
	TimeLeftToConfirm *string         `json:"time_left_to_confirm,omitempty"`
	QueuePosition     *int            `json:"queue_position,omitempty"`
}

type UserResponse struct {
	UserID           string   `json:"user_id"`
	InterestedTopics []string `json:"interested_topics"`
	TelegramChatID   *int64   `json:"telegram_chat_id,omitempty"`
	CreatedAt        string   `json:"created_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToConferenceResponse(c *domain.Conference) ConferenceResponse {
	return ConferenceResponse{
		Name:     c.Name,
		Location: c.Location,
		Topics:   c.Topics,
		Timing: TimingResponse{
			StartTS: c.Timing.StartTS.Format(domain.TimeLayout),
			EndTS:   c.Timing.EndTS.Format(domain.TimeLayout),
		},
		AvailableSlots: c.AvailableSlots,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		BookingID:  b.ID,
		UserID:     b.UserID,
		Conference: b.Conference,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingStatusResponse(info *domain.BookingStatusInfo) BookingStatusResponse {
	resp := BookingStatusResponse{
		Booking:       ToBookingResponse(info.Booking),
		QueuePosition: info.QueuePosition,
	}
	if info.TimeLeft != nil {
		left := info.TimeLeft.String()
		resp.TimeLeftToConfirm = &left
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:           u.ID,
		InterestedTopics: u.InterestedTopics,
		TelegramChatID:   u.TelegramChatID,
		CreatedAt:        u.CreatedAt.Format(time.RFC3339),
	}
}
