package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wanjiku/elimu-api/internal/domain/enum"
)

// LiveClass represents a scheduled online class session for a class and subject
type LiveClass struct {
	ID              uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	TeacherID       uuid.UUID            `gorm:"type:uuid;not null;index" json:"teacher_id"`
	Title           string               `gorm:"size:255;not null" json:"title"`
	Subject         string               `gorm:"size:100;not null" json:"subject"`
	ClassName       string               `gorm:"size:100;not null;index" json:"class_name"`
	MeetingURL      string               `gorm:"size:512;not null" json:"meeting_url"`
	StartsAt        time.Time            `gorm:"not null;index" json:"starts_at"`
	DurationMinutes int                  `gorm:"not null;default:40" json:"duration_minutes"`
	Status          enum.LiveClassStatus `gorm:"size:20;not null;default:'scheduled'" json:"status"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
	DeletedAt       gorm.DeletedAt       `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new live class
func (l *LiveClass) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LiveClass model
func (LiveClass) TableName() string {
	return "live_classes"
}
