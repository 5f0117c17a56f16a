package commission

import "funeraria-backend/internal/application/pricing"

const (
	baseRate       = 5
	nightShiftRate = 2
	holidayRate    = 3
)

// Result is the staff commission derived from a finalized total.
type Result struct {
	Rate   int
	Amount int64
}

// Calculate returns the commission rate and amount for a contract total.
// Base 5%, +2 for night shift, +3 for holiday; both surcharges may apply.
// Amount rounds half-up to the nearest peso.
func Calculate(total int64, nightShift, holiday bool) Result {
	rate := baseRate
	if nightShift {
		rate += nightShiftRate
	}
	if holiday {
		rate += holidayRate
	}
	return Result{
		Rate:   rate,
		Amount: pricing.RoundPercent(total, rate),
	}
}
