package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Deceased exists only for immediate-need contracts, 1:1 with its Contract.
// Created on finalization, mutated in place on edit.
type Deceased struct {
	DeceasedID    uuid.UUID `gorm:"column:deceased_id;type:uuid;primaryKey" json:"deceased_id"`
	FullName      string    `gorm:"column:full_name;not null" json:"full_name"`
	DeathDate     time.Time `gorm:"column:death_date;not null" json:"death_date"`
	DeathPlace    string    `gorm:"column:death_place" json:"death_place"`
	Gender        string    `gorm:"column:gender" json:"gender"`
	Age           int       `gorm:"column:age" json:"age"`
	MaritalStatus string    `gorm:"column:marital_status" json:"marital_status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Deceased) TableName() string {
	return "deceased"
}

func (d *Deceased) BeforeCreate(tx *gorm.DB) error {
	if d.DeceasedID == uuid.Nil {
		d.DeceasedID = uuid.New()
	}
	return nil
}
