package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceItem is a catalog entry for a funeral service (wake, transport,
// ceremony). Price is the current list price in whole pesos; line items copy
// it at selection time and never re-read it.
type ServiceItem struct {
	ServiceID uuid.UUID `gorm:"column:service_id;type:uuid;primaryKey" json:"service_id"`
	Code      string    `gorm:"column:code;uniqueIndex;not null" json:"code"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Price     int64     `gorm:"column:price;not null;default:0" json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ServiceItem) TableName() string {
	return "service_items"
}

func (s *ServiceItem) BeforeCreate(tx *gorm.DB) error {
	if s.ServiceID == uuid.Nil {
		s.ServiceID = uuid.New()
	}
	return nil
}

// Product is a physical catalog item (casket, urn) with tracked stock.
// Stock changes only through the guarded decrement in the inventory adjuster.
type Product struct {
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;primaryKey" json:"product_id"`
	Code      string    `gorm:"column:code;uniqueIndex;not null" json:"code"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Price     int64     `gorm:"column:price;not null;default:0" json:"price"`
	Stock     int       `gorm:"column:stock;not null;default:0" json:"stock"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ProductID == uuid.Nil {
		p.ProductID = uuid.New()
	}
	return nil
}
