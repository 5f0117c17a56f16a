package domain

import "fmt"

// ContractType distinguishes contracts for a death that already occurred from
// pre-arranged ones. Only immediate-need contracts carry a Deceased record and
// deplete product stock.
type ContractType string

const (
	TypeImmediateNeed ContractType = "immediate_need"
	TypeFutureNeed    ContractType = "future_need"
)

type ContractStatus string

const (
	StatusQuote     ContractStatus = "quote"
	StatusContract  ContractStatus = "contract"
	StatusCompleted ContractStatus = "completed"
	StatusCancelled ContractStatus = "cancelled"
)

type PaymentMethod string

const (
	MethodCash   PaymentMethod = "cash"
	MethodCredit PaymentMethod = "credit"
)

// Spanish labels shown by the UI and printed documents. The mapping is
// exhaustive in both directions; unknown labels are a parse error, never a
// silent fallthrough.

func (t ContractType) Valid() bool {
	return t == TypeImmediateNeed || t == TypeFutureNeed
}

func (t ContractType) Label() string {
	switch t {
	case TypeImmediateNeed:
		return "Necesidad Inmediata"
	case TypeFutureNeed:
		return "Necesidad Futura"
	}
	return string(t)
}

func ParseContractType(label string) (ContractType, error) {
	switch label {
	case "Necesidad Inmediata", string(TypeImmediateNeed):
		return TypeImmediateNeed, nil
	case "Necesidad Futura", string(TypeFutureNeed):
		return TypeFutureNeed, nil
	}
	return "", fmt.Errorf("unknown contract type %q", label)
}

func (s ContractStatus) Valid() bool {
	switch s {
	case StatusQuote, StatusContract, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s ContractStatus) Label() string {
	switch s {
	case StatusQuote:
		return "Cotización"
	case StatusContract:
		return "Contrato"
	case StatusCompleted:
		return "Completado"
	case StatusCancelled:
		return "Cancelado"
	}
	return string(s)
}

func ParseContractStatus(label string) (ContractStatus, error) {
	switch label {
	case "Cotización", string(StatusQuote):
		return StatusQuote, nil
	case "Contrato", string(StatusContract):
		return StatusContract, nil
	case "Completado", string(StatusCompleted):
		return StatusCompleted, nil
	case "Cancelado", string(StatusCancelled):
		return StatusCancelled, nil
	}
	return "", fmt.Errorf("unknown contract status %q", label)
}

func (m PaymentMethod) Valid() bool {
	return m == MethodCash || m == MethodCredit
}

func (m PaymentMethod) Label() string {
	switch m {
	case MethodCash:
		return "Contado"
	case MethodCredit:
		return "Crédito"
	}
	return string(m)
}

func ParsePaymentMethod(label string) (PaymentMethod, error) {
	switch label {
	case "Contado", string(MethodCash):
		return MethodCash, nil
	case "Crédito", string(MethodCredit):
		return MethodCredit, nil
	}
	return "", fmt.Errorf("unknown payment method %q", label)
}
