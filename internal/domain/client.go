package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is the person who signs the contract. TaxNumber is the national
// tax/ID number and acts as the natural key: finalization upserts by it and
// never deletes.
type Client struct {
	ClientID     uuid.UUID `gorm:"column:client_id;type:uuid;primaryKey" json:"client_id"`
	TaxNumber    string    `gorm:"column:tax_number;uniqueIndex;not null" json:"tax_number"`
	FullName     string    `gorm:"column:full_name;not null" json:"full_name"`
	Phone        string    `gorm:"column:phone" json:"phone"`
	Email        string    `gorm:"column:email" json:"email"`
	Address      string    `gorm:"column:address" json:"address"`
	Occupation   string    `gorm:"column:occupation" json:"occupation"`
	Relationship string    `gorm:"column:relationship" json:"relationship"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Client) TableName() string {
	return "clients"
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ClientID == uuid.Nil {
		c.ClientID = uuid.New()
	}
	return nil
}
