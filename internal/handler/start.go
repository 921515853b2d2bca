package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start: registers the user and shows the
// configured welcome message with the main menu.
func (h *Handler) handleStart(c tele.Context) error {
	sender := c.Sender()

	username := sender.Username
	if username == "" {
		username = sender.FirstName
	}

	h.logger.Info("User started bot",
		zap.Int64("user_id", sender.ID),
		zap.String("username", username),
	)

	if err := h.users.EnsureUser(sender.ID, username); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send("Something went wrong. Try again later.")
	}

	welcome, err := h.settings.Welcome()
	if err != nil {
		h.logger.Error("Failed to load welcome message", zap.Error(err))
		return c.Send("Something went wrong. Try again later.")
	}

	return c.Send(welcome, mainMenuMarkup())
}

// handleAdmin handles /admin, refusing every other identity
func (h *Handler) handleAdmin(c tele.Context) error {
	if !h.isAdmin(c.Sender().ID) {
		return c.Send("🚫 This panel is for the admin only.")
	}
	return c.Send("Admin panel — full control", adminPanelMarkup())
}
