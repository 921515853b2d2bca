package action

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Delimiter joins the verb and its arguments inside a token. Arguments
// must never contain it; Encode only accepts integer ids so the
// constraint holds by construction.
const Delimiter = ":"

// ErrMalformed is returned when a token cannot be decoded: unknown
// verb, wrong argument count, or a non-integer argument. Decode fails
// closed so a stale or crafted button never crashes the router.
var ErrMalformed = errors.New("malformed action")

// Verb identifies a button action. The set is closed: decoding only
// succeeds for verbs registered in the table below.
type Verb string

const (
	// User-facing verbs
	VerbBrowseSections Verb = "browse_sections"
	VerbShowBalance    Verb = "show_balance"
	VerbMyOrders       Verb = "my_orders"
	VerbMainBack       Verb = "main_back"
	VerbSection        Verb = "section"
	VerbBuy            Verb = "buy"

	// Administrator-only verbs
	VerbAdminOrderAccept      Verb = "admin_order_accept"
	VerbAdminOrderReject      Verb = "admin_order_reject"
	VerbAdminUsers            Verb = "admin_users"
	VerbAdminStore            Verb = "admin_store"
	VerbAdminMessages         Verb = "admin_messages"
	VerbAdminSettings         Verb = "admin_settings"
	VerbAdminBack             Verb = "admin_back"
	VerbAdminListSections     Verb = "admin_list_sections"
	VerbAdminSectionManage    Verb = "admin_section_manage"
	VerbAdminListProducts     Verb = "admin_list_products"
	VerbAdminProductManage    Verb = "admin_product_manage"
	VerbAdminAddSection       Verb = "admin_add_section"
	VerbAdminAddProduct       Verb = "admin_add_product"
	VerbAdminDeleteSection    Verb = "admin_delete_section"
	VerbAdminDeleteProduct    Verb = "admin_delete_product"
	VerbAdminEditProductName  Verb = "admin_edit_product_name"
	VerbAdminEditProductPrice Verb = "admin_edit_product_price"
	VerbAdminEditWelcome      Verb = "admin_edit_welcome"
	VerbAdminBroadcast        Verb = "admin_broadcast"
	VerbAdminCurrency         Verb = "admin_currency"
	VerbAdminUser             Verb = "admin_user"
	VerbAdminUserAdd          Verb = "admin_user_add"
	VerbAdminUserSub          Verb = "admin_user_sub"
	VerbAdminUserReset        Verb = "admin_user_reset"
	VerbAdminUserBan          Verb = "admin_user_ban"
	VerbAdminUserUnban        Verb = "admin_user_unban"
	VerbAdminUserMsg          Verb = "admin_user_msg"
)

type verbSpec struct {
	arity int
	admin bool
}

// verbs is the closed dispatch table: expected argument count and
// whether the verb is administrator-only.
var verbs = map[Verb]verbSpec{
	VerbBrowseSections: {arity: 0},
	VerbShowBalance:    {arity: 0},
	VerbMyOrders:       {arity: 0},
	VerbMainBack:       {arity: 0},
	VerbSection:        {arity: 1},
	VerbBuy:            {arity: 1},

	VerbAdminOrderAccept:      {arity: 1, admin: true},
	VerbAdminOrderReject:      {arity: 1, admin: true},
	VerbAdminUsers:            {arity: 0, admin: true},
	VerbAdminStore:            {arity: 0, admin: true},
	VerbAdminMessages:         {arity: 0, admin: true},
	VerbAdminSettings:         {arity: 0, admin: true},
	VerbAdminBack:             {arity: 0, admin: true},
	VerbAdminListSections:     {arity: 0, admin: true},
	VerbAdminSectionManage:    {arity: 1, admin: true},
	VerbAdminListProducts:     {arity: 1, admin: true},
	VerbAdminProductManage:    {arity: 1, admin: true},
	VerbAdminAddSection:       {arity: 0, admin: true},
	VerbAdminAddProduct:       {arity: 1, admin: true},
	VerbAdminDeleteSection:    {arity: 1, admin: true},
	VerbAdminDeleteProduct:    {arity: 1, admin: true},
	VerbAdminEditProductName:  {arity: 1, admin: true},
	VerbAdminEditProductPrice: {arity: 1, admin: true},
	VerbAdminEditWelcome:      {arity: 0, admin: true},
	VerbAdminBroadcast:        {arity: 0, admin: true},
	VerbAdminCurrency:         {arity: 0, admin: true},
	VerbAdminUser:             {arity: 1, admin: true},
	VerbAdminUserAdd:          {arity: 1, admin: true},
	VerbAdminUserSub:          {arity: 1, admin: true},
	VerbAdminUserReset:        {arity: 1, admin: true},
	VerbAdminUserBan:          {arity: 1, admin: true},
	VerbAdminUserUnban:        {arity: 1, admin: true},
	VerbAdminUserMsg:          {arity: 1, admin: true},
}

// AdminOnly reports whether the verb requires the administrator identity
func (v Verb) AdminOnly() bool {
	return verbs[v].admin
}

// Action is a decoded button payload: a verb plus its raw arguments
type Action struct {
	Verb Verb
	Args []string
}

// Int64Arg parses argument i as an int64 id
func (a Action) Int64Arg(i int) (int64, error) {
	if i < 0 || i >= len(a.Args) {
		return 0, fmt.Errorf("%w: missing argument %d for %q", ErrMalformed, i, a.Verb)
	}
	n, err := strconv.ParseInt(a.Args[i], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: argument %d of %q is not an integer", ErrMalformed, i, a.Verb)
	}
	return n, nil
}

// Encode builds a button token for a verb and its integer arguments.
// The result is the stable wire format clients render on buttons.
func Encode(v Verb, args ...int64) string {
	if len(args) == 0 {
		return string(v)
	}
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, string(v))
	for _, a := range args {
		parts = append(parts, strconv.FormatInt(a, 10))
	}
	return strings.Join(parts, Delimiter)
}

// Decode parses a button token. Unknown verbs, wrong arity and
// non-integer arguments all return ErrMalformed.
func Decode(token string) (Action, error) {
	parts := strings.Split(token, Delimiter)
	verb := Verb(parts[0])
	spec, ok := verbs[verb]
	if !ok {
		return Action{}, fmt.Errorf("%w: unknown verb %q", ErrMalformed, parts[0])
	}
	args := parts[1:]
	if len(args) != spec.arity {
		return Action{}, fmt.Errorf("%w: %q expects %d argument(s), got %d", ErrMalformed, verb, spec.arity, len(args))
	}
	for _, a := range args {
		if _, err := strconv.ParseInt(a, 10, 64); err != nil {
			return Action{}, fmt.Errorf("%w: %q has non-integer argument %q", ErrMalformed, verb, a)
		}
	}
	return Action{Verb: verb, Args: args}, nil
}
