package handler

import (
	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot      *tele.Bot
	users    *service.UserService
	balance  *service.BalanceService
	catalog  *service.CatalogService
	settings *service.SettingsService
	orders   *service.OrderService
	workflow *service.WorkflowService
	adminID  int64
	logger   *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	users *service.UserService,
	balance *service.BalanceService,
	catalog *service.CatalogService,
	settings *service.SettingsService,
	orders *service.OrderService,
	workflow *service.WorkflowService,
	adminID int64,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		users:    users,
		balance:  balance,
		catalog:  catalog,
		settings: settings,
		orders:   orders,
		workflow: workflow,
		adminID:  adminID,
		logger:   logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/admin", h.handleAdmin)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Every button press goes through the action router
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

func (h *Handler) isAdmin(userID int64) bool {
	return userID == h.adminID
}
