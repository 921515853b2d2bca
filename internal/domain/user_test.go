package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVIPTier_Discount(t *testing.T) {
	tests := []struct {
		name             string
		tier             VIPTier
		price            int64
		expectedDiscount int64
	}{
		{
			name:             "no tier pays full price",
			tier:             TierNone,
			price:            1000,
			expectedDiscount: 0,
		},
		{
			name:             "bronze takes one percent",
			tier:             TierBronze,
			price:            1000,
			expectedDiscount: 10,
		},
		{
			name:             "silver takes two percent",
			tier:             TierSilver,
			price:            1000,
			expectedDiscount: 20,
		},
		{
			name:             "gold takes three percent",
			tier:             TierGold,
			price:            1000,
			expectedDiscount: 30,
		},
		{
			name:             "fractional discount truncates down",
			tier:             TierBronze,
			price:            150, // 1% of 150 = 1.5 -> 1
			expectedDiscount: 1,
		},
		{
			name:             "discount below one unit rounds to zero",
			tier:             TierSilver,
			price:            49, // 2% of 49 = 0.98 -> 0
			expectedDiscount: 0,
		},
		{
			name:             "zero price",
			tier:             TierGold,
			price:            0,
			expectedDiscount: 0,
		},
		{
			name:             "unknown tier gets nothing",
			tier:             VIPTier("Platinum"),
			price:            1000,
			expectedDiscount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discount := tt.tier.Discount(tt.price)
			assert.Equal(t, tt.expectedDiscount, discount)

			// Final price never exceeds the original and never goes negative
			final := tt.price - discount
			assert.LessOrEqual(t, final, tt.price)
			assert.GreaterOrEqual(t, final, int64(0))
		})
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.False(t, OrderPending.Terminal())
	assert.True(t, OrderAccepted.Terminal())
	assert.True(t, OrderRejected.Terminal())
}
