package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Line items snapshot quantity and unit price at selection time. Subtotal is
// quantity*unit_price, computed when the line is attached and never
// recomputed. Edits replace the whole set, never patch rows.

type ServiceLineItem struct {
	LineID     uuid.UUID `gorm:"column:line_id;type:uuid;primaryKey" json:"line_id"`
	ContractID uuid.UUID `gorm:"column:contract_id;type:uuid;not null;index" json:"contract_id"`
	ServiceID  uuid.UUID `gorm:"column:service_id;type:uuid;not null" json:"service_id"`
	Quantity   int       `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice  int64     `gorm:"column:unit_price;not null" json:"unit_price"`
	Subtotal   int64     `gorm:"column:subtotal;not null" json:"subtotal"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (ServiceLineItem) TableName() string {
	return "service_line_items"
}

func (l *ServiceLineItem) BeforeCreate(tx *gorm.DB) error {
	if l.LineID == uuid.Nil {
		l.LineID = uuid.New()
	}
	return nil
}

type ProductLineItem struct {
	LineID     uuid.UUID `gorm:"column:line_id;type:uuid;primaryKey" json:"line_id"`
	ContractID uuid.UUID `gorm:"column:contract_id;type:uuid;not null;index" json:"contract_id"`
	ProductID  uuid.UUID `gorm:"column:product_id;type:uuid;not null" json:"product_id"`
	Quantity   int       `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice  int64     `gorm:"column:unit_price;not null" json:"unit_price"`
	Subtotal   int64     `gorm:"column:subtotal;not null" json:"subtotal"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (ProductLineItem) TableName() string {
	return "product_line_items"
}

func (l *ProductLineItem) BeforeCreate(tx *gorm.DB) error {
	if l.LineID == uuid.Nil {
		l.LineID = uuid.New()
	}
	return nil
}
