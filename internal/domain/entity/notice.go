package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notice represents an announcement. A nil ClassName means the notice is
// school-wide; otherwise it is scoped to one class.
type Notice struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	Body      string         `gorm:"type:text;not null" json:"body"`
	ClassName *string        `gorm:"size:100;index" json:"class_name,omitempty"`
	PostedBy  uuid.UUID      `gorm:"type:uuid;not null;index" json:"posted_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new notice
func (n *Notice) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Notice model
func (Notice) TableName() string {
	return "notices"
}
