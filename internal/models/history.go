package models

import "time"

// History is one append-only audit entry per applied mutation. Rows are
// never updated; admins may prune individual rows.
type History struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Action   string `gorm:"size:20;not null;index" json:"action"`
	DataType string `gorm:"size:50;not null;index" json:"data_type"`
	RecordID string `gorm:"size:36;index" json:"record_id"`

	AdminEmail string `gorm:"size:100" json:"admin_email"`
	AdminName  string `gorm:"size:100" json:"admin_name"`
	Details    string `gorm:"type:text" json:"details"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
