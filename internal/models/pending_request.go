package models

import (
	"time"

	"gorm.io/datatypes"
)

// PendingRequest holds a non-admin create submission until an admin decides
// on it. Data and the submitter fields are written once at submission and
// never rewritten after the status leaves "pending".
type PendingRequest struct {
	ID       string            `gorm:"primaryKey;size:36" json:"id"`
	DataType string            `gorm:"size:50;not null;index" json:"data_type"`
	Data     datatypes.JSONMap `gorm:"not null" json:"data"`

	SubmittedBy string `gorm:"size:64;not null" json:"submitted_by"`
	Username    string `gorm:"size:100" json:"username"`
	Email       string `gorm:"size:100" json:"email"`
	Description string `gorm:"size:255" json:"description"`

	Status     string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	ReviewedBy *string    `gorm:"size:64" json:"reviewed_by"`
	ReviewedAt *time.Time `json:"reviewed_at"`

	CreatedAt time.Time `json:"created_at"`
}
