package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
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

func (n *TelegramNotifier) NotifyReservationCreated(ctx context.Context, player *domain.Player, ground *domain.Ground, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Slot reserved!*\n\n"+"Ground: %s\n"+"Kickoff: %s %s\n"+"Pay before %s or the slot is released.",
		ground.Name,
		r.Date.Format("02.01.2006"),
		domain.FormatClock(r.StartMin),
		r.ExpiresAt.UTC().Format("15:04:05"),
	)
	n.send(ctx, player.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, player *domain.Player, ground *domain.Ground, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking confirmed!*\n\n"+"Ground: %s\n"+"Kickoff: %s %s",
		ground.Name,
		b.Date.Format("02.01.2006"),
		domain.FormatClock(b.StartMin),
	)
	n.send(ctx, player.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyReservationExpired(ctx context.Context, player *domain.Player, ground *domain.Ground, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Reservation expired (payment window passed)*\n\n"+"Ground: %s\n"+"Kickoff: %s %s",
		ground.Name,
		r.Date.Format("02.01.2006"),
		domain.FormatClock(r.StartMin),
	)
	n.send(ctx, player.TelegramChatID, text)
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
