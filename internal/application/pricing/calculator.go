package pricing

// Line is a quantity/unit-price pair as fixed at selection time. Prices are
// whole pesos.
type Line struct {
	Quantity  int
	UnitPrice int64
}

// Totals is the derived money block stored on the contract.
type Totals struct {
	Subtotal       int64
	DiscountAmount int64
	Total          int64
}

// LineSubtotal is quantity*unit_price, computed once when the line is
// attached.
func LineSubtotal(l Line) int64 {
	return int64(l.Quantity) * l.UnitPrice
}

// Calculate derives subtotal, discount amount and total for a set of service
// and product lines. discountPct must already be validated to [0,100]; the
// calculator never clamps. Discount uses round-half-up to the nearest peso so
// subtotal - discount_amount == total holds exactly.
func Calculate(services, products []Line, discountPct int) Totals {
	var subtotal int64
	for _, l := range services {
		subtotal += LineSubtotal(l)
	}
	for _, l := range products {
		subtotal += LineSubtotal(l)
	}
	discount := RoundPercent(subtotal, discountPct)
	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		Total:          subtotal - discount,
	}
}

// RoundPercent returns amount*pct/100 rounded half-up to the nearest whole
// peso. amount and pct are non-negative.
func RoundPercent(amount int64, pct int) int64 {
	return (amount*int64(pct) + 50) / 100
}
