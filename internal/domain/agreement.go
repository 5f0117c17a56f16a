package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Agreement is a corporate sponsorship record. Read-only to the finalization
// engine: it may be referenced by a contract only while temporally active.
type Agreement struct {
	AgreementID           uuid.UUID `gorm:"column:agreement_id;type:uuid;primaryKey" json:"agreement_id"`
	CompanyName           string    `gorm:"column:company_name;not null" json:"company_name"`
	CompanyPaysPercentage int       `gorm:"column:company_pays_percentage;not null;default:0" json:"company_pays_percentage"`
	StartDate             time.Time `gorm:"column:start_date;not null" json:"start_date"`
	EndDate               time.Time `gorm:"column:end_date;not null" json:"end_date"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

func (Agreement) TableName() string {
	return "agreements"
}

func (a *Agreement) BeforeCreate(tx *gorm.DB) error {
	if a.AgreementID == uuid.Nil {
		a.AgreementID = uuid.New()
	}
	return nil
}

// IsActiveOn reports whether the agreement covers the given date, bounds
// inclusive.
func (a *Agreement) IsActiveOn(t time.Time) bool {
	day := t.Truncate(24 * time.Hour)
	return !day.Before(a.StartDate.Truncate(24*time.Hour)) && !day.After(a.EndDate.Truncate(24*time.Hour))
}
