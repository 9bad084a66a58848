// Package notify delivers out-of-band operator notifications for
// events the official's live connection cannot receive.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"samwad/backend/internal/models"
)

// Telegram pings a fixed operator chat. One-way only: the portal has no
// inbound Telegram surface.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram init: %w", err)
	}
	log.Info().Str("bot", bot.Self.UserName).Msg("telegram notifier ready")
	return &Telegram{bot: bot, chatID: chatID}, nil
}

// GrievanceFiled notifies the operator chat about a grievance filed
// while the official had no live connection. Failures are logged and
// dropped; a notification must never affect the submission flow.
func (t *Telegram) GrievanceFiled(g models.Grievance) {
	text := fmt.Sprintf(
		"New grievance #%s\nFrom: %s (%s)\nLocation: %s / %s / %s\nAttachments: %d\n\n%s",
		g.ID, g.CitizenName, g.CitizenMobile,
		g.District, g.Block, g.Village,
		len(g.FileURLs), g.Message,
	)
	if _, err := t.bot.Send(tgbotapi.NewMessage(t.chatID, text)); err != nil {
		log.Warn().Err(err).Str("grievance_id", g.ID).Msg("telegram notification failed")
	}
}
