package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	EventContractCreated   = "CREATED"
	EventContractUpdated   = "UPDATED"
	EventContractConverted = "CONVERTED"
	EventContractStatus    = "STATUS_CHANGED"
	EventContractDeleted   = "DELETED"
)

// ContractEvent is the audit trail written in the same transaction as the
// change it describes.
type ContractEvent struct {
	EventID    uuid.UUID      `gorm:"column:event_id;type:uuid;primaryKey" json:"event_id"`
	ContractID uuid.UUID      `gorm:"column:contract_id;type:uuid;not null;index" json:"contract_id"`
	EventType  string         `gorm:"column:event_type;type:varchar(30);not null" json:"event_type"`
	EventData  datatypes.JSON `gorm:"column:event_data;not null" json:"event_data"`
	ActorID    uuid.UUID      `gorm:"column:actor_id;type:uuid;not null" json:"actor_id"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func (ContractEvent) TableName() string {
	return "contract_events"
}

func (e *ContractEvent) BeforeCreate(tx *gorm.DB) error {
	if e.EventID == uuid.Nil {
		e.EventID = uuid.New()
	}
	return nil
}
