package domain

import "time"

// Counter is a named single-row sequence. The contract number allocator
// increments it inside the finalization transaction so the row lock is held
// until commit.
type Counter struct {
	Name      string    `gorm:"column:name;primaryKey" json:"name"`
	Value     int64     `gorm:"column:value;not null;default:0" json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Counter) TableName() string {
	return "counters"
}
