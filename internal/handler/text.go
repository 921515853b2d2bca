package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all free-text messages. Admin text feeds the
// workflow engine; everyone else gets quick replies.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	if h.isAdmin(userID) {
		return h.handleAdminText(c, text)
	}

	if err := h.users.EnsureUser(userID, c.Sender().Username); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	// Quick text shortcut for the balance
	if text == "/balance" || strings.EqualFold(text, "my balance") {
		return h.sendBalance(c, userID)
	}

	if strings.HasPrefix(text, "/") {
		return nil
	}

	return c.Send("Use the buttons or /start to browse the store.", mainMenuMarkup())
}

func (h *Handler) handleAdminText(c tele.Context, text string) error {
	reply, err := h.workflow.HandleText(c.Sender().ID, text)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil
		}
		h.logger.Error("Admin workflow failed",
			zap.Int64("user_id", c.Sender().ID),
			zap.Error(err),
		)
		return c.Send("Something went wrong. Re-open the admin panel and try again.")
	}
	return c.Send(reply)
}

func (h *Handler) sendBalance(c tele.Context, userID int64) error {
	balance, err := h.balance.GetBalance(userID)
	if err != nil {
		h.logger.Error("Failed to load balance", zap.Error(err))
		return c.Send("Something went wrong. Try again later.")
	}

	currency, err := h.settings.Currency()
	if err != nil {
		h.logger.Error("Failed to load currency", zap.Error(err))
		currency = domain.DefaultCurrency
	}

	return c.Send(fmt.Sprintf("💰 Your balance: %d %s", balance, currency))
}
