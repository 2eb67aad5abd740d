package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/Abhijith1907/conference-booking/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifySeatOffered(ctx context.Context, user *domain.User, conf *domain.Conference, deadline time.Duration) {
	text := fmt.Sprintf(
		"*A seat freed up!*\n\n"+"Conference: %s\n"+"Location: %s\n"+"Starts: %s\n"+"Confirm your booking within %s or the offer lapses.",
		conf.Name, conf.Location,
		conf.Timing.StartTS.Format(domain.TimeLayout),
		deadline.String(),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, user *domain.User, conf *domain.Conference) {
	text := fmt.Sprintf(
		"*Booking confirmed!*\n\n"+"Conference: %s\n"+"Location: %s\n"+"Starts: %s",
		conf.Name, conf.Location,
		conf.Timing.StartTS.Format(domain.TimeLayout),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, user *domain.User, conf *domain.Conference) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\n"+"Conference: %s\n"+"Location: %s",
		conf.Name, conf.Location,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
