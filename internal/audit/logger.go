package audit

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dudhwalekaran/voltvault-sub000/internal/models"
)

// Entry is one history row to be appended.
type Entry struct {
	Action     string
	DataType   string
	RecordID   string
	AdminEmail string
	AdminName  string
	Details    string
}

// Logger writes history rows synchronously.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, e Entry) error {
	row := models.History{
		ID:         uuid.NewString(),
		Action:     e.Action,
		DataType:   e.DataType,
		RecordID:   e.RecordID,
		AdminEmail: e.AdminEmail,
		AdminName:  e.AdminName,
		Details:    e.Details,
	}

	return l.db.WithContext(ctx).Create(&row).Error
}
