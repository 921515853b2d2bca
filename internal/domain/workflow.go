package domain

// AdminAction tags the free-text input the administrator is expected to
// send next. Empty means no input is pending.
type AdminAction string

const (
	ActionNone             AdminAction = ""
	ActionAddSection       AdminAction = "add_section"
	ActionAddProduct       AdminAction = "add_product"
	ActionEditWelcome      AdminAction = "edit_welcome"
	ActionSetCurrency      AdminAction = "set_currency"
	ActionBroadcast        AdminAction = "broadcast"
	ActionUserAddBalance   AdminAction = "user_add_balance"
	ActionUserSubBalance   AdminAction = "user_sub_balance"
	ActionSendMsgToUser    AdminAction = "send_msg_to_user"
	ActionEditProductName  AdminAction = "edit_product_name"
	ActionEditProductPrice AdminAction = "edit_product_price"
)

// PendingInput is the administrator's conversation state between a menu
// selection and the next text message. Scratch parameters are typed;
// only the ones the action needs are set.
type PendingInput struct {
	Action       AdminAction
	SectionID    int64
	ProductID    int64
	TargetUserID int64
}

// Pending reports whether a free-text input is currently expected
func (p PendingInput) Pending() bool {
	return p.Action != ActionNone
}
