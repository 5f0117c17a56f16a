package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contract is the aggregate root produced by finalization. All monetary
// fields are whole pesos, derived once per finalization/edit and stored.
// Soft-deleted contracts keep their number: the sequence never reuses it.
type Contract struct {
	ContractID uuid.UUID      `gorm:"column:contract_id;type:uuid;primaryKey" json:"contract_id"`
	Number     string         `gorm:"column:number;uniqueIndex;not null" json:"number"`
	Type       ContractType   `gorm:"column:type;type:varchar(20);not null" json:"type"`
	Status     ContractStatus `gorm:"column:status;type:varchar(20);not null" json:"status"`

	IsHoliday    bool `gorm:"column:is_holiday;not null;default:false" json:"is_holiday"`
	IsNightShift bool `gorm:"column:is_night_shift;not null;default:false" json:"is_night_shift"`

	Subtotal           int64 `gorm:"column:subtotal;not null;default:0" json:"subtotal"`
	DiscountPercentage int   `gorm:"column:discount_percentage;not null;default:0" json:"discount_percentage"`
	DiscountAmount     int64 `gorm:"column:discount_amount;not null;default:0" json:"discount_amount"`
	Total              int64 `gorm:"column:total;not null;default:0" json:"total"`

	PaymentMethod PaymentMethod `gorm:"column:payment_method;type:varchar(10);not null" json:"payment_method"`
	Installments  int           `gorm:"column:installments;not null;default:0" json:"installments"`
	DownPayment   int64         `gorm:"column:down_payment;not null;default:0" json:"down_payment"`

	CommissionPercentage int   `gorm:"column:commission_percentage;not null;default:0" json:"commission_percentage"`
	CommissionAmount     int64 `gorm:"column:commission_amount;not null;default:0" json:"commission_amount"`

	ClientID    uuid.UUID  `gorm:"column:client_id;type:uuid;not null" json:"client_id"`
	DeceasedID  *uuid.UUID `gorm:"column:deceased_id;type:uuid" json:"deceased_id"`
	AgreementID *uuid.UUID `gorm:"column:agreement_id;type:uuid" json:"agreement_id"`

	// Optional directory references; owned by external collaborators.
	ChurchID   *uuid.UUID `gorm:"column:church_id;type:uuid" json:"church_id"`
	CemeteryID *uuid.UUID `gorm:"column:cemetery_id;type:uuid" json:"cemetery_id"`
	WakeRoomID *uuid.UUID `gorm:"column:wake_room_id;type:uuid" json:"wake_room_id"`

	// Optional staff assignment.
	DriverID    *uuid.UUID `gorm:"column:driver_id;type:uuid" json:"driver_id"`
	AssistantID *uuid.UUID `gorm:"column:assistant_id;type:uuid" json:"assistant_id"`
	VehicleID   *uuid.UUID `gorm:"column:vehicle_id;type:uuid" json:"vehicle_id"`

	CreatedBy uuid.UUID `gorm:"column:created_by;type:uuid;not null" json:"created_by"`
	BranchID  uuid.UUID `gorm:"column:branch_id;type:uuid;not null" json:"branch_id"`

	Client       *Client           `gorm:"foreignKey:ClientID;references:ClientID" json:"client,omitempty"`
	Deceased     *Deceased         `gorm:"foreignKey:DeceasedID;references:DeceasedID" json:"deceased,omitempty"`
	ServiceLines []ServiceLineItem `gorm:"foreignKey:ContractID" json:"service_lines,omitempty"`
	ProductLines []ProductLineItem `gorm:"foreignKey:ContractID" json:"product_lines,omitempty"`
	Payments     []Payment         `gorm:"foreignKey:ContractID" json:"payments,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Contract) TableName() string {
	return "contracts"
}

func (ct *Contract) BeforeCreate(tx *gorm.DB) error {
	if ct.ContractID == uuid.Nil {
		ct.ContractID = uuid.New()
	}
	return nil
}
