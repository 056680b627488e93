package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to CheckoutStatus
		want     bool
	}{
		{"", CheckoutStatusForm, true},
		{"", CheckoutStatusCartEmpty, true},
		{"", CheckoutStatusProcessing, false},
		{CheckoutStatusCartEmpty, CheckoutStatusProcessing, false},
		{CheckoutStatusForm, CheckoutStatusProcessing, true},
		{CheckoutStatusForm, CheckoutStatusComplete, false},
		{CheckoutStatusProcessing, CheckoutStatusComplete, true},
		{CheckoutStatusProcessing, CheckoutStatusForm, false},
		{CheckoutStatusComplete, CheckoutStatusForm, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransitionTo(tt.from, tt.to))
		})
	}
}

func TestCheckoutStatus_IsTerminal(t *testing.T) {
	assert.True(t, CheckoutStatusComplete.IsTerminal())
	assert.True(t, CheckoutStatusCartEmpty.IsTerminal())
	assert.False(t, CheckoutStatusForm.IsTerminal())
	assert.False(t, CheckoutStatusProcessing.IsTerminal())
}

func TestItemKinds(t *testing.T) {
	var items []Item = []Item{Product{Base: Base{ID: "p1"}}, Listing{Base: Base{ID: "1"}}}

	assert.Equal(t, KindProduct, items[0].Kind())
	assert.Equal(t, KindListing, items[1].Kind())
	assert.Equal(t, "1", items[1].Header().ID)
}
