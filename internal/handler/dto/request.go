package dto

type TimingPayload struct {
	StartTS string `json:"start_ts" binding:"required"`
	EndTS   string `json:"end_ts" binding:"required"`
}

type CreateConferenceRequest struct {
	Name           string        `json:"name" binding:"required"`
	Location       string        `json:"location" binding:"required"`
	Topics         []string      `json:"topics" binding:"max=10"`
	Timing         TimingPayload `json:"timing" binding:"required"`
	AvailableSlots int           `json:"available_slots" binding:"min=0"`
}

type BookRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type CreateUserRequest struct {
	UserID           string   `json:"user_id" binding:"required"`
	InterestedTopics []string `json:"interested_topics"`
	TelegramChatID   *int64   `json:"telegram_chat_id"`
}
