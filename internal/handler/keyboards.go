package handler

import (
	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/action"

	tele "gopkg.in/telebot.v3"
)

// dataBtn builds an inline button whose callback data is a raw action
// token, keeping the wire format stable for any client.
func dataBtn(label, token string) tele.InlineButton {
	return tele.InlineButton{Text: label, Data: token}
}

func row(buttons ...tele.InlineButton) []tele.InlineButton {
	return buttons
}

func keyboard(rows ...[]tele.InlineButton) *tele.ReplyMarkup {
	return &tele.ReplyMarkup{InlineKeyboard: rows}
}

// mainMenuMarkup returns the storefront main menu
func mainMenuMarkup() *tele.ReplyMarkup {
	return keyboard(
		row(dataBtn("🛍️ Browse sections", action.Encode(action.VerbBrowseSections))),
		row(
			dataBtn("💰 My balance", action.Encode(action.VerbShowBalance)),
			dataBtn("📄 My orders", action.Encode(action.VerbMyOrders)),
		),
		row(dataBtn("🔔 Notifications", "subscriptions")),
	)
}

// adminPanelMarkup returns the top-level admin panel
func adminPanelMarkup() *tele.ReplyMarkup {
	return keyboard(
		row(dataBtn("👥 Manage users", action.Encode(action.VerbAdminUsers))),
		row(dataBtn("🛒 Manage store", action.Encode(action.VerbAdminStore))),
		row(dataBtn("✉️ Messages and announcements", action.Encode(action.VerbAdminMessages))),
		row(dataBtn("⚙️ General settings", action.Encode(action.VerbAdminSettings))),
	)
}

func backRow(token string) []tele.InlineButton {
	return row(dataBtn("⬅️ Back", token))
}
