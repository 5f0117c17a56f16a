package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate_Example(t *testing.T) {
	services := []Line{{Quantity: 1, UnitPrice: 300000}}
	products := []Line{{Quantity: 1, UnitPrice: 100000}}

	totals := Calculate(services, products, 10)
	assert.Equal(t, int64(400000), totals.Subtotal)
	assert.Equal(t, int64(40000), totals.DiscountAmount)
	assert.Equal(t, int64(360000), totals.Total)
}

func TestCalculate_NoDiscount(t *testing.T) {
	totals := Calculate([]Line{{Quantity: 3, UnitPrice: 50000}}, nil, 0)
	assert.Equal(t, int64(150000), totals.Subtotal)
	assert.Equal(t, int64(0), totals.DiscountAmount)
	assert.Equal(t, int64(150000), totals.Total)
}

func TestCalculate_FullDiscount(t *testing.T) {
	totals := Calculate([]Line{{Quantity: 1, UnitPrice: 99999}}, nil, 100)
	assert.Equal(t, int64(99999), totals.DiscountAmount)
	assert.Equal(t, int64(0), totals.Total)
}

func TestCalculate_Identity(t *testing.T) {
	// subtotal - discount_amount == total for every discount percentage
	services := []Line{{Quantity: 7, UnitPrice: 33333}}
	products := []Line{{Quantity: 2, UnitPrice: 12345}}
	for pct := 0; pct <= 100; pct++ {
		totals := Calculate(services, products, pct)
		assert.Equal(t, totals.Total, totals.Subtotal-totals.DiscountAmount, "pct=%d", pct)
		assert.GreaterOrEqual(t, totals.Total, int64(0), "pct=%d", pct)
	}
}

func TestRoundPercent_HalfUp(t *testing.T) {
	// 1001 * 5% = 50.05 → 50; 1010 * 5% = 50.5 → 51
	assert.Equal(t, int64(50), RoundPercent(1001, 5))
	assert.Equal(t, int64(51), RoundPercent(1010, 5))
	assert.Equal(t, int64(0), RoundPercent(0, 50))
}

func TestLineSubtotal(t *testing.T) {
	assert.Equal(t, int64(250000), LineSubtotal(Line{Quantity: 5, UnitPrice: 50000}))
}
