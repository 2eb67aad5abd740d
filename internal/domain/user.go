package domain

import "time"

type User struct {
	ID               string    `json:"user_id"`
	InterestedTopics []string  `json:"interested_topics"`
	TelegramChatID   *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type CreateUserInput struct {
	UserID           string
	InterestedTopics []string
	TelegramChatID   *int64
}
