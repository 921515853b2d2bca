package handler

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/action"
	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// display edits the callback's message in place, falling back to a new
// message when editing fails. A nil markup leaves the message without
// buttons.
func (h *Handler) display(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	var opts []interface{}
	if markup != nil {
		opts = append(opts, markup)
	}

	if c.Callback() == nil {
		return c.Send(text, opts...)
	}

	if err := c.Edit(text, opts...); err != nil {
		if strings.Contains(err.Error(), "message is not modified") {
			return c.Respond()
		}
		h.logger.Warn("Failed to edit message, sending new",
			zap.Int64("user_id", c.Sender().ID),
			zap.Error(err),
		)
		if ackErr := c.Respond(); ackErr != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
		}
		return c.Send(text, opts...)
	}
	return c.Respond()
}

// handleCallback routes every button press: decode the token, enforce
// the admin guard once, dispatch on the verb. Malformed or unknown
// tokens get a polite acknowledgment, never a crash.
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	userID := c.Sender().ID

	act, err := action.Decode(data)
	if err != nil {
		h.logger.Warn("Undecodable callback",
			zap.String("data", data),
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Respond(&tele.CallbackResponse{Text: "This button is not available yet."})
	}

	// Single authorization gate for every admin-only verb
	if act.Verb.AdminOnly() && !h.isAdmin(userID) {
		h.logger.Warn("Unauthorized admin action",
			zap.Int64("user_id", userID),
			zap.String("verb", string(act.Verb)),
		)
		return c.Respond(&tele.CallbackResponse{Text: "🚫 Not allowed."})
	}

	switch act.Verb {
	case action.VerbBrowseSections:
		return h.handleBrowseSections(c)
	case action.VerbShowBalance:
		return h.handleShowBalance(c)
	case action.VerbMyOrders:
		return h.handleMyOrders(c)
	case action.VerbMainBack:
		return h.handleMainMenu(c)
	case action.VerbSection:
		return h.handleSection(c, act)
	case action.VerbBuy:
		return h.handleBuy(c, act)
	default:
		return h.handleAdminAction(c, act)
	}
}

func (h *Handler) handleMainMenu(c tele.Context) error {
	welcome, err := h.settings.Welcome()
	if err != nil {
		h.logger.Error("Failed to load welcome message", zap.Error(err))
		welcome = domain.DefaultWelcome
	}
	return h.display(c, welcome, mainMenuMarkup())
}

// handleBrowseSections shows the visible catalog sections
func (h *Handler) handleBrowseSections(c tele.Context) error {
	sections, err := h.catalog.Sections(true)
	if err != nil {
		h.logger.Error("Failed to list sections", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load data"})
	}

	if len(sections) == 0 {
		return h.display(c, "No sections yet. Contact support.", mainMenuMarkup())
	}

	rows := make([][]tele.InlineButton, 0, len(sections)+1)
	for _, s := range sections {
		rows = append(rows, row(dataBtn(s.Name, action.Encode(action.VerbSection, s.ID))))
	}
	rows = append(rows, backRow(action.Encode(action.VerbMainBack)))

	return h.display(c, "📚 Sections:", keyboard(rows...))
}

// handleSection shows the products of one section with buy buttons
func (h *Handler) handleSection(c tele.Context, act action.Action) error {
	sectionID, err := act.Int64Arg(0)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid section"})
	}

	products, err := h.catalog.Products(sectionID, true)
	if err != nil {
		h.logger.Error("Failed to list products", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load data"})
	}

	if len(products) == 0 {
		return h.display(c, "No products in this section.",
			keyboard(backRow(action.Encode(action.VerbBrowseSections))))
	}

	currency, err := h.settings.Currency()
	if err != nil {
		currency = domain.DefaultCurrency
	}

	text := "🛍️ Section products:\n"
	rows := make([][]tele.InlineButton, 0, len(products)+1)
	for _, p := range products {
		text += fmt.Sprintf("\n• %s — %d %s", p.Name, p.Price, currency)
		rows = append(rows, row(dataBtn("Buy "+p.Name, action.Encode(action.VerbBuy, p.ID))))
	}
	rows = append(rows, backRow(action.Encode(action.VerbBrowseSections)))

	return h.display(c, text, keyboard(rows...))
}

// handleBuy places a pending order and confirms submission
func (h *Handler) handleBuy(c tele.Context, act action.Action) error {
	productID, err := act.Int64Arg(0)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid product"})
	}

	userID := c.Sender().ID
	if err := h.users.EnsureUser(userID, c.Sender().Username); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong"})
	}

	order, err := h.orders.Place(userID, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return h.display(c, "Product not found.", mainMenuMarkup())
		}
		h.logger.Error("Failed to place order",
			zap.Int64("user_id", userID),
			zap.Int64("product_id", productID),
			zap.Error(err),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong"})
	}

	currency, err := h.settings.Currency()
	if err != nil {
		currency = domain.DefaultCurrency
	}

	h.logger.Info("Order placed",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", userID),
		zap.Int64("total", order.Total),
	)

	text := fmt.Sprintf("✅ Order #%d sent to the admin for review.\nPrice: %d %s",
		order.ID, order.Total, currency)
	return h.display(c, text, mainMenuMarkup())
}

func (h *Handler) handleShowBalance(c tele.Context) error {
	userID := c.Sender().ID

	balance, err := h.balance.GetBalance(userID)
	if err != nil {
		h.logger.Error("Failed to load balance", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load data"})
	}

	currency, err := h.settings.Currency()
	if err != nil {
		currency = domain.DefaultCurrency
	}

	return h.display(c, fmt.Sprintf("💰 Your balance: %d %s", balance, currency), mainMenuMarkup())
}

// handleMyOrders lists the user's order history
func (h *Handler) handleMyOrders(c tele.Context) error {
	userID := c.Sender().ID

	orders, err := h.orders.Orders(userID)
	if err != nil {
		h.logger.Error("Failed to list orders", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load data"})
	}

	if len(orders) == 0 {
		return h.display(c, "You have no orders yet.", mainMenuMarkup())
	}

	currency, err := h.settings.Currency()
	if err != nil {
		currency = domain.DefaultCurrency
	}

	text := "🧾 Your orders:\n"
	for _, o := range orders {
		text += fmt.Sprintf("\n#%d %s — %d %s — %s\n",
			o.ID, h.orders.ProductName(o.ProductID), o.Total, currency, o.Status)
	}

	return h.display(c, text, mainMenuMarkup())
}
