package handler

import (
	"errors"
	"fmt"

	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/action"
	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/domain"
	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// maxListedUsers bounds the user list so one message stays readable
const maxListedUsers = 30

// handleAdminAction dispatches the administrator-only verbs. The
// router has already verified the sender's identity.
func (h *Handler) handleAdminAction(c tele.Context, act action.Action) error {
	switch act.Verb {
	case action.VerbAdminBack:
		return h.display(c, "Admin panel — full control", adminPanelMarkup())
	case action.VerbAdminUsers:
		return h.adminListUsers(c)
	case action.VerbAdminUser:
		return h.adminManageUser(c, act)
	case action.VerbAdminUserAdd:
		return h.adminBeginUserInput(c, act, domain.ActionUserAddBalance)
	case action.VerbAdminUserSub:
		return h.adminBeginUserInput(c, act, domain.ActionUserSubBalance)
	case action.VerbAdminUserMsg:
		return h.adminBeginUserInput(c, act, domain.ActionSendMsgToUser)
	case action.VerbAdminUserReset:
		return h.adminResetBalance(c, act)
	case action.VerbAdminUserBan:
		return h.adminBanUser(c, act)
	case action.VerbAdminUserUnban:
		return h.adminUnbanUser(c, act)
	case action.VerbAdminStore:
		return h.adminStoreMenu(c)
	case action.VerbAdminAddSection:
		prompt := h.workflow.Begin(c.Sender().ID, domain.PendingInput{Action: domain.ActionAddSection})
		return h.display(c, prompt, nil)
	case action.VerbAdminListSections:
		return h.adminListSections(c)
	case action.VerbAdminSectionManage:
		return h.adminManageSection(c, act)
	case action.VerbAdminAddProduct:
		return h.adminBeginAddProduct(c, act)
	case action.VerbAdminListProducts:
		return h.adminListProducts(c, act)
	case action.VerbAdminProductManage:
		return h.adminManageProduct(c, act)
	case action.VerbAdminDeleteSection:
		return h.adminDeleteSection(c, act)
	case action.VerbAdminDeleteProduct:
		return h.adminDeleteProduct(c, act)
	case action.VerbAdminEditProductName:
		return h.adminBeginProductInput(c, act, domain.ActionEditProductName)
	case action.VerbAdminEditProductPrice:
		return h.adminBeginProductInput(c, act, domain.ActionEditProductPrice)
	case action.VerbAdminMessages:
		return h.adminMessagesMenu(c)
	case action.VerbAdminEditWelcome:
		prompt := h.workflow.Begin(c.Sender().ID, domain.PendingInput{Action: domain.ActionEditWelcome})
		return h.display(c, prompt, nil)
	case action.VerbAdminBroadcast:
		prompt := h.workflow.Begin(c.Sender().ID, domain.PendingInput{Action: domain.ActionBroadcast})
		return h.display(c, prompt, nil)
	case action.VerbAdminSettings:
		return h.adminSettingsMenu(c)
	case action.VerbAdminCurrency:
		prompt := h.workflow.Begin(c.Sender().ID, domain.PendingInput{Action: domain.ActionSetCurrency})
		return h.display(c, prompt, nil)
	case action.VerbAdminOrderAccept:
		return h.adminDecideOrder(c, act, service.OutcomeAccept)
	case action.VerbAdminOrderReject:
		return h.adminDecideOrder(c, act, service.OutcomeReject)
	default:
		return c.Respond(&tele.CallbackResponse{Text: "This button is not available yet."})
	}
}

// adminDecideOrder applies an accept/reject decision. An already
// decided order still reads as success for the admin; the purchaser is
// only notified on the first decision.
func (h *Handler) adminDecideOrder(c tele.Context, act action.Action, outcome service.Outcome) error {
	orderID, err := act.Int64Arg(0)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid order"})
	}

	order, changed, err := h.orders.Decide(orderID, outcome, c.Sender().ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return h.display(c, "Order not found.", nil)
		}
		h.logger.Error("Failed to decide order",
			zap.Int64("order_id", orderID),
			zap.Error(err),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong"})
	}

	h.logger.Info("Order decided",
		zap.Int64("order_id", orderID),
		zap.String("status", string(order.Status)),
		zap.Bool("changed", changed),
	)

	if outcome == service.OutcomeAccept {
		return h.display(c, fmt.Sprintf("Order #%d accepted.", orderID), nil)
	}
	return h.display(c, fmt.Sprintf("Order #%d rejected.", orderID), nil)
}

func (h *Handler) adminListUsers(c tele.Context) error {
	users, err := h.users.Users()
	if err != nil {
		h.logger.Error("Failed to list users", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load data"})
	}

	if len(users) == 0 {
		return h.display(c, "No users yet.", adminPanelMarkup())
	}

	currency, err := h.settings.Currency()
	if err != nil {
		currency = domain.DefaultCurrency
	}

	if len(users) > maxListedUsers {
		users = users[:maxListedUsers]
	}

	text := "👥 Users:\n\n"
	rows := make([][]tele.InlineButton, 0, len(users)+1)
	for _, u := range users {
		text += fmt.Sprintf("• %s — ID: %d — %d %s\n", u.Username, u.ID, u.Balance, currency)
		rows = append(rows, row(dataBtn(
			fmt.Sprintf("Manage %d", u.ID),
			action.Encode(action.VerbAdminUser, u.ID),
		)))
	}
	rows = append(rows, backRow(action.Encode(action.VerbAdminBack)))

	return h.display(c, text, keyboard(rows...))
}

func (h *Handler) adminManageUser(c tele.Context, act action.Action) error {
	userID, err := act.Int64Arg(0)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid user"})
	}

	markup := keyboard(
		row(dataBtn("➕ Add balance", action.Encode(action.VerbAdminUserAdd, userID))),
		row(dataBtn("➖ Subtract balance", action.Encode(action.VerbAdminUserSub, userID))),
		row(dataBtn("🔄 Reset balance", action.Encode(action.VerbAdminUserReset, userID))),
		row(dataBtn("🚫 Ban", action.Encode(action.VerbAdminUserBan, userID))),
		row(dataBtn("✅ Unban", action.Encode(action.VerbAdminUserUnban, userID))),
		row(dataBtn("✉️ Send message", action.Encode(action.VerbAdminUserMsg, userID))),
		backRow(action.Encode(action.VerbAdminUsers)),
	)

	return h.display(c, fmt.Sprintf("Managing user %d:", userID), markup)
}

// adminBeginUserInput arms a workflow action that targets a user id
func (h *Handler) adminBeginUserInput(c tele.Context, act action.Action, wfAction domain.AdminAction) error {
	targetID, err := act.Int64Arg(0)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid user"})
	}

	prompt := h.workflow.Begin(c.Sender().ID, domain.PendingInput{
		Action:       wfAction,
		TargetUserID: targetID,
	})
	return h.display(c, prompt, nil)
}

// adminBeginProductInput arms a workflow action that targets a product id
func (h *Handler) adminBeginProductInput(c tele.Context, act action.Action, wfAction domain.AdminAction) error {
	productID, err := act.Int64Arg(0)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid product"})
	}

	prompt := h.workflow.Begin(c.Sender().ID, domain.PendingInput{
		Action:    wfAction,
		ProductID: productID,
	})
	return h.display(c, prompt, nil)
}

func (h *Handler) adminResetBalance(c tele.Context, act action.Action) error {
	userID, err := act.Int64Arg(0)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid user"})
	}

	if err := h.balance.SetBalance(userID, 0); err != nil {
		h.logger.Error("Failed to reset balance", zap.Int64("user_id", userID), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong"})
	}

	return h.display(c, fmt.Sprintf("Balance of user %d reset to zero.", userID), adminPanelMarkup())
}

func (h *Handler) adminBanUser(c tele.Context, act action.Action) error {
	userID, err := act.Int64Arg(0)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid user"})
	}

	if err := h.users.Ban(userID, "banned by admin"); err != nil {
		h.logger.Error("Failed to ban user", zap.Int64("user_id", userID), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong"})
	}

	h.logger.Info("User banned", zap.Int64("user_id", userID))
	return h.display(c, fmt.Sprintf("User %d banned.", userID), adminPanelMarkup())
}

func (h *Handler) adminUnbanUser(c tele.Context, act action.Action) error {
	userID, err := act.Int64Arg(0)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid user"})
	}

	if err := h.users.Unban(userID); err != nil {
		h.logger.Error("Failed to unban user", zap.Int64("user_id", userID), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong"})
	}

	h.logger.Info("User unbanned", zap.Int64("user_id", userID))
	return h.display(c, fmt.Sprintf("User %d unbanned.", userID), adminPanelMarkup())
}

func (h *Handler) adminStoreMenu(c tele.Context) error {
	markup := keyboard(
		row(dataBtn("➕ Add section", action.Encode(action.VerbAdminAddSection))),
		row(dataBtn("📝 List sections", action.Encode(action.VerbAdminListSections))),
		backRow(action.Encode(action.VerbAdminBack)),
	)
	return h.display(c, "🛒 Store management:", markup)
}

func (h *Handler) adminListSections(c tele.Context) error {
	sections, err := h.catalog.Sections(false)
	if err != nil {
		h.logger.Error("Failed to list sections", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load data"})
	}

	if len(sections) == 0 {
		return h.display(c, "No sections.", adminPanelMarkup())
	}

	text := "Sections:\n"
	rows := make([][]tele.InlineButton, 0, len(sections)+1)
	for _, s := range sections {
		text += fmt.Sprintf("• [%d] %s — %s\n", s.ID, s.Name, visibility(s.Visible))
		rows = append(rows, row(dataBtn(
			fmt.Sprintf("Section %d", s.ID),
			action.Encode(action.VerbAdminSectionManage, s.ID),
		)))
	}
	rows = append(rows, backRow(action.Encode(action.VerbAdminStore)))

	return h.display(c, text, keyboard(rows...))
}

func (h *Handler) adminManageSection(c tele.Context, act action.Action) error {
	sectionID, err := act.Int64Arg(0)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid section"})
	}

	section, err := h.catalog.Section(sectionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return h.display(c, "Section not found.", adminPanelMarkup())
		}
		h.logger.Error("Failed to load section", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong"})
	}

	markup := keyboard(
		row(dataBtn("➕ Add product", action.Encode(action.VerbAdminAddProduct, sectionID))),
		row(dataBtn("📝 List products", action.Encode(action.VerbAdminListProducts, sectionID))),
		row(dataBtn("❌ Delete section", action.Encode(action.VerbAdminDeleteSection, sectionID))),
		backRow(action.Encode(action.VerbAdminListSections)),
	)

	return h.display(c, fmt.Sprintf("Section: %s (ID: %d)", section.Name, section.ID), markup)
}

func (h *Handler) adminBeginAddProduct(c tele.Context, act action.Action) error {
	sectionID, err := act.Int64Arg(0)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid section"})
	}

	prompt := h.workflow.Begin(c.Sender().ID, domain.PendingInput{
		Action:    domain.ActionAddProduct,
		SectionID: sectionID,
	})
	return h.display(c, prompt, nil)
}

func (h *Handler) adminListProducts(c tele.Context, act action.Action) error {
	sectionID, err := act.Int64Arg(0)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid section"})
	}

	products, err := h.catalog.Products(sectionID, false)
	if err != nil {
		h.logger.Error("Failed to list products", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load data"})
	}

	currency, err := h.settings.Currency()
	if err != nil {
		currency = domain.DefaultCurrency
	}

	text := fmt.Sprintf("Products of section %d:\n", sectionID)
	rows := make([][]tele.InlineButton, 0, len(products)+1)
	if len(products) == 0 {
		text += "No products."
	}
	for _, p := range products {
		text += fmt.Sprintf("• [%d] %s — %d %s — %s\n", p.ID, p.Name, p.Price, currency, visibility(p.Visible))
		rows = append(rows, row(dataBtn(
			fmt.Sprintf("Product %d", p.ID),
			action.Encode(action.VerbAdminProductManage, p.ID),
		)))
	}
	rows = append(rows, backRow(action.Encode(action.VerbAdminSectionManage, sectionID)))

	return h.display(c, text, keyboard(rows...))
}

func (h *Handler) adminManageProduct(c tele.Context, act action.Action) error {
	productID, err := act.Int64Arg(0)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid product"})
	}

	product, err := h.catalog.Product(productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return h.display(c, "Product not found.", adminPanelMarkup())
		}
		h.logger.Error("Failed to load product", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong"})
	}

	markup := keyboard(
		row(dataBtn("Edit name", action.Encode(action.VerbAdminEditProductName, productID))),
		row(dataBtn("Edit price", action.Encode(action.VerbAdminEditProductPrice, productID))),
		row(dataBtn("Delete product", action.Encode(action.VerbAdminDeleteProduct, productID))),
		backRow(action.Encode(action.VerbAdminStore)),
	)

	text := fmt.Sprintf("Product [%d] %s\nPrice: %d", product.ID, product.Name, product.Price)
	return h.display(c, text, markup)
}

func (h *Handler) adminDeleteSection(c tele.Context, act action.Action) error {
	sectionID, err := act.Int64Arg(0)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid section"})
	}

	if err := h.catalog.DeleteSection(sectionID); err != nil {
		h.logger.Error("Failed to delete section", zap.Int64("section_id", sectionID), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong"})
	}

	h.logger.Info("Section deleted", zap.Int64("section_id", sectionID))
	return h.display(c, fmt.Sprintf("Section %d and all its products deleted.", sectionID), adminPanelMarkup())
}

func (h *Handler) adminDeleteProduct(c tele.Context, act action.Action) error {
	productID, err := act.Int64Arg(0)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid product"})
	}

	if err := h.catalog.DeleteProduct(productID); err != nil {
		h.logger.Error("Failed to delete product", zap.Int64("product_id", productID), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong"})
	}

	return h.display(c, fmt.Sprintf("Product %d deleted.", productID), adminPanelMarkup())
}

func (h *Handler) adminMessagesMenu(c tele.Context) error {
	markup := keyboard(
		row(dataBtn("✏️ Edit welcome message", action.Encode(action.VerbAdminEditWelcome))),
		row(dataBtn("📢 Broadcast", action.Encode(action.VerbAdminBroadcast))),
		backRow(action.Encode(action.VerbAdminBack)),
	)
	return h.display(c, "✉️ Messages:", markup)
}

func (h *Handler) adminSettingsMenu(c tele.Context) error {
	markup := keyboard(
		row(dataBtn("🔁 Change currency", action.Encode(action.VerbAdminCurrency))),
		backRow(action.Encode(action.VerbAdminBack)),
	)
	return h.display(c, "⚙️ General settings:", markup)
}

func visibility(visible bool) string {
	if visible {
		return "visible"
	}
	return "hidden"
}
