package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student represents an enrolled student's school record. A student may or
// may not have a login account linked through UserID.
type Student struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID        *uuid.UUID     `gorm:"type:uuid;index" json:"user_id,omitempty"`
	FirstName     string         `gorm:"size:255;not null" json:"first_name"`
	LastName      string         `gorm:"size:255;not null" json:"last_name"`
	ClassName     string         `gorm:"size:100;index" json:"class_name"`
	RollNumber    string         `gorm:"size:50" json:"roll_number"`
	GuardianName  *string        `gorm:"size:255" json:"guardian_name,omitempty"`
	GuardianPhone *string        `gorm:"size:50" json:"guardian_phone,omitempty"`
	Address       *string        `gorm:"type:text" json:"address,omitempty"`
	AdmittedAt    *time.Time     `gorm:"type:date" json:"admitted_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	FeeEntries []FeeEntry `gorm:"foreignKey:StudentID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new student
func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Student model
func (Student) TableName() string {
	return "students"
}

// FullName returns the student's display name
func (s *Student) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}
