package models

import (
	"time"

	"gorm.io/datatypes"
)

// Record is one equipment record of any catalog type. The domain fields
// vary per type, so they live in a JSON column; the lifecycle is uniform.
type Record struct {
	ID       string            `gorm:"primaryKey;size:36" json:"id"`
	DataType string            `gorm:"size:50;not null;index" json:"data_type"`
	Fields   datatypes.JSONMap `gorm:"not null" json:"fields"`

	CreatedBy string `gorm:"size:64" json:"created_by"`
	Status    string `gorm:"size:20;default:'approved'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
