package schedule

import (
	"errors"
	"time"
)

const (
	MinInstallments = 1
	MaxInstallments = 12
)

var (
	ErrInstallmentCount = errors.New("installment count must be between 1 and 12")
	ErrDownPayment      = errors.New("down payment must be between 0 and total")
)

// Installment is one future payment obligation before persistence.
type Installment struct {
	Number  int
	Amount  int64
	DueDate time.Time
}

// Build splits total-downPayment across count installments due monthly after
// from. Amounts use floor division with the remainder absorbed by the last
// installment, so the amounts always sum exactly to total-downPayment.
func Build(total, downPayment int64, count int, from time.Time) ([]Installment, error) {
	if count < MinInstallments || count > MaxInstallments {
		return nil, ErrInstallmentCount
	}
	if downPayment < 0 || downPayment > total {
		return nil, ErrDownPayment
	}

	financed := total - downPayment
	base := financed / int64(count)
	remainder := financed - base*int64(count)

	out := make([]Installment, count)
	for i := 0; i < count; i++ {
		amount := base
		if i == count-1 {
			amount += remainder
		}
		out[i] = Installment{
			Number:  i + 1,
			Amount:  amount,
			DueDate: from.AddDate(0, i+1, 0),
		}
	}
	return out, nil
}
