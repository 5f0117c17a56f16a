package contracts

import (
	"strconv"
	"time"

	"funeraria-backend/internal/domain"
	"funeraria-backend/internal/pkg/validation"

	"github.com/google/uuid"
)

// ActorContext identifies who is finalizing and from which branch. Always
// passed explicitly; the engine never reads identity from ambient state.
type ActorContext struct {
	UserID   uuid.UUID
	BranchID uuid.UUID
}

// ClientInput is the upsert payload keyed by the national tax/ID number.
type ClientInput struct {
	TaxNumber    string `json:"tax_number"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Occupation   string `json:"occupation"`
	Relationship string `json:"relationship"`
}

type DeceasedInput struct {
	FullName      string    `json:"full_name"`
	DeathDate     time.Time `json:"death_date"`
	DeathPlace    string    `json:"death_place"`
	Gender        string    `json:"gender"`
	Age           int       `json:"age"`
	MaritalStatus string    `json:"marital_status"`
}

// LineSelection carries the catalog id plus quantity and unit price as fixed
// at selection time. Prices are not re-read from the catalog.
type LineSelection struct {
	ID        uuid.UUID `json:"id"`
	Quantity  int       `json:"quantity"`
	UnitPrice int64     `json:"unit_price"`
}

// Request is the validated quote to be finalized. The same shape serves
// create and edit; on edit the contract number and any prior stock deduction
// are immutable.
type Request struct {
	Client   ClientInput         `json:"client"`
	Type     domain.ContractType `json:"type"`
	Deceased *DeceasedInput      `json:"deceased"`

	Services []LineSelection `json:"services"`
	Products []LineSelection `json:"products"`

	DiscountPercentage int `json:"discount_percentage"`

	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	Installments  int                  `json:"installments"`
	DownPayment   int64                `json:"down_payment"`

	IsHoliday    bool `json:"is_holiday"`
	IsNightShift bool `json:"is_night_shift"`

	AgreementID *uuid.UUID `json:"agreement_id"`
	ChurchID    *uuid.UUID `json:"church_id"`
	CemeteryID  *uuid.UUID `json:"cemetery_id"`
	WakeRoomID  *uuid.UUID `json:"wake_room_id"`

	DriverID    *uuid.UUID `json:"driver_id"`
	AssistantID *uuid.UUID `json:"assistant_id"`
	VehicleID   *uuid.UUID `json:"vehicle_id"`
}

// validateShape checks everything that needs no storage access. Catalog and
// agreement existence are checked separately against the database.
func (r *Request) validateShape() *ValidationError {
	verr := newValidation()

	if r.Client.TaxNumber == "" {
		verr.add("client.tax_number", "required")
	} else if !validation.IsValidTaxNumber(r.Client.TaxNumber) {
		verr.add("client.tax_number", "invalid tax/ID number")
	}
	if r.Client.FullName == "" {
		verr.add("client.full_name", "required")
	}
	if r.Client.Email != "" && !validation.IsValidEmail(r.Client.Email) {
		verr.add("client.email", "invalid email")
	}

	if !r.Type.Valid() {
		verr.add("type", "must be immediate_need or future_need")
	}
	if r.Type == domain.TypeImmediateNeed {
		switch {
		case r.Deceased == nil:
			verr.add("deceased", "required for immediate-need contracts")
		case r.Deceased.FullName == "":
			verr.add("deceased.full_name", "required")
		case r.Deceased.DeathDate.IsZero():
			verr.add("deceased.death_date", "required")
		}
	}

	if r.DiscountPercentage < 0 || r.DiscountPercentage > 100 {
		verr.add("discount_percentage", "must be between 0 and 100")
	}

	if !r.PaymentMethod.Valid() {
		verr.add("payment_method", "must be cash or credit")
	}
	if r.PaymentMethod == domain.MethodCredit {
		if r.Installments < 1 || r.Installments > 12 {
			verr.add("installments", "must be between 1 and 12")
		}
		if r.DownPayment < 0 {
			verr.add("down_payment", "must not be negative")
		}
	}

	if len(r.Services) == 0 && len(r.Products) == 0 {
		verr.add("services", "at least one service or product is required")
	}
	for i, l := range r.Services {
		if l.Quantity < 1 {
			verr.add(lineField("services", i, "quantity"), "must be at least 1")
		}
		if l.UnitPrice < 0 {
			verr.add(lineField("services", i, "unit_price"), "must not be negative")
		}
	}
	for i, l := range r.Products {
		if l.Quantity < 1 {
			verr.add(lineField("products", i, "quantity"), "must be at least 1")
		}
		if l.UnitPrice < 0 {
			verr.add(lineField("products", i, "unit_price"), "must not be negative")
		}
	}

	return verr
}

func lineField(list string, i int, field string) string {
	return list + "[" + strconv.Itoa(i) + "]." + field
}
