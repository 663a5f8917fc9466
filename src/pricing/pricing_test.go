package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBonusAndDebit(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		wantBonus int
		wantDebit int
	}{
		{"below promotion threshold", 1, 0, 1},
		{"two units", 2, 0, 2},
		{"exactly three", 3, 1, 4},
		{"five units", 5, 1, 6},
		{"six units", 6, 2, 8},
		{"ten units", 10, 3, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantBonus, BonusFor(tt.quantity))
			assert.Equal(t, tt.wantDebit, TotalDebit(tt.quantity))
		})
	}
}

func TestSalePricing(t *testing.T) {
	assert.Equal(t, 4.0, SaleUnitPrice(2.0))
	assert.Equal(t, 12.0, SaleLineTotal(2.0, 3))

	// Bonus units never enter the charge: 10 requested, 13 debited, 10 charged.
	assert.Equal(t, 40.0, SaleLineTotal(2.0, 10))
}

func TestRestockLineCost(t *testing.T) {
	assert.Equal(t, 10.0, RestockLineCost(2.0, 5))
	assert.Equal(t, 0.0, RestockLineCost(0, 5))
}
