package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Preference is a single durable key-value entry.
type Preference struct {
	Key       string         `json:"key" gorm:"primaryKey"`
	Value     datatypes.JSON `json:"value" gorm:"type:jsonb;not null"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
