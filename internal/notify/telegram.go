package notify

import (
	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/service"

	tele "gopkg.in/telebot.v3"
)

// TelegramNotifier implements service.Notifier over the bot transport
type TelegramNotifier struct {
	bot *tele.Bot
}

// NewTelegramNotifier creates a notifier backed by the bot
func NewTelegramNotifier(bot *tele.Bot) *TelegramNotifier {
	return &TelegramNotifier{bot: bot}
}

// Notify sends a message to the recipient, rendering each button on
// its own row with the action token as raw callback data.
func (n *TelegramNotifier) Notify(recipientID int64, text string, buttons ...service.Button) error {
	var opts []interface{}

	if len(buttons) > 0 {
		rows := make([][]tele.InlineButton, 0, len(buttons))
		for _, b := range buttons {
			rows = append(rows, []tele.InlineButton{{Text: b.Label, Data: b.Data}})
		}
		opts = append(opts, &tele.ReplyMarkup{InlineKeyboard: rows})
	}

	_, err := n.bot.Send(tele.ChatID(recipientID), text, opts...)
	return err
}
