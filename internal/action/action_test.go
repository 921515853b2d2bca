package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		verb     Verb
		args     []int64
		expected string
	}{
		{
			name:     "verb without arguments",
			verb:     VerbBrowseSections,
			expected: "browse_sections",
		},
		{
			name:     "verb with one id",
			verb:     VerbBuy,
			args:     []int64{42},
			expected: "buy:42",
		},
		{
			name:     "admin verb with order id",
			verb:     VerbAdminOrderAccept,
			args:     []int64{7},
			expected: "admin_order_accept:7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Encode(tt.verb, tt.args...))
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name         string
		token        string
		expectedVerb Verb
		expectedArgs []string
		expectError  bool
	}{
		{
			name:         "plain verb",
			token:        "show_balance",
			expectedVerb: VerbShowBalance,
		},
		{
			name:         "verb with id",
			token:        "section:3",
			expectedVerb: VerbSection,
			expectedArgs: []string{"3"},
		},
		{
			name:         "admin verb with id",
			token:        "admin_user_ban:55",
			expectedVerb: VerbAdminUserBan,
			expectedArgs: []string{"55"},
		},
		{
			name:        "unknown verb fails closed",
			token:       "subscriptions",
			expectError: true,
		},
		{
			name:        "missing argument",
			token:       "buy",
			expectError: true,
		},
		{
			name:        "extra argument",
			token:       "show_balance:1",
			expectError: true,
		},
		{
			name:        "non-integer argument",
			token:       "buy:abc",
			expectError: true,
		},
		{
			name:        "empty token",
			token:       "",
			expectError: true,
		},
		{
			name:        "crafted delimiter flood",
			token:       "buy:1:2:3",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			act, err := Decode(tt.token)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrMalformed)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedVerb, act.Verb)
			assert.Equal(t, tt.expectedArgs, act.Args)
		})
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	for verb, spec := range verbs {
		args := make([]int64, spec.arity)
		for i := range args {
			args[i] = int64(i + 1)
		}

		act, err := Decode(Encode(verb, args...))
		assert.NoError(t, err, "verb %q", verb)
		assert.Equal(t, verb, act.Verb)
		assert.Len(t, act.Args, spec.arity)
	}
}

func TestAction_Int64Arg(t *testing.T) {
	act, err := Decode("admin_user:123")
	assert.NoError(t, err)

	id, err := act.Int64Arg(0)
	assert.NoError(t, err)
	assert.Equal(t, int64(123), id)

	_, err = act.Int64Arg(1)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestVerb_AdminOnly(t *testing.T) {
	assert.False(t, VerbBuy.AdminOnly())
	assert.False(t, VerbBrowseSections.AdminOnly())
	assert.True(t, VerbAdminOrderAccept.AdminOnly())
	assert.True(t, VerbAdminBroadcast.AdminOnly())
	assert.True(t, VerbAdminUserReset.AdminOnly())
}
