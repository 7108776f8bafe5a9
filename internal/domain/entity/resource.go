package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudyResource represents shared study material (books, notes, recordings).
// Only the metadata and a link are stored; binary uploads are out of scope.
type StudyResource struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Subject     string         `gorm:"size:100;not null" json:"subject"`
	ClassName   string         `gorm:"size:100;not null;index" json:"class_name"`
	URL         string         `gorm:"size:512;not null" json:"url"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	UploadedBy  uuid.UUID      `gorm:"type:uuid;not null;index" json:"uploaded_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new study resource
func (r *StudyResource) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StudyResource model
func (StudyResource) TableName() string {
	return "study_resources"
}
