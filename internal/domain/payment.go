package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// Payment is one future-dated installment of a credit contract. The schedule
// is created as a batch and destroyed and regenerated wholesale whenever
// payment terms change; cash contracts have no Payment rows at all.
type Payment struct {
	PaymentID  uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey" json:"payment_id"`
	ContractID uuid.UUID `gorm:"column:contract_id;type:uuid;not null;index" json:"contract_id"`
	Number     int       `gorm:"column:number;not null" json:"number"`
	Amount     int64     `gorm:"column:amount;not null" json:"amount"`
	DueDate    time.Time `gorm:"column:due_date;not null" json:"due_date"`
	Status     string    `gorm:"column:status;type:varchar(10);not null;default:'pending'" json:"status"`
	Method     string    `gorm:"column:method;type:varchar(10);not null;default:'credit'" json:"method"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Payment) TableName() string {
	return "payments"
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.PaymentID == uuid.Nil {
		p.PaymentID = uuid.New()
	}
	return nil
}
