package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wanjiku/elimu-api/internal/domain/enum"
)

// AttendanceRecord represents one student's attendance for one calendar day.
// A student has at most one record per day; re-marking updates the status.
type AttendanceRecord struct {
	ID        uuid.UUID             `gorm:"type:uuid;primary_key" json:"id"`
	StudentID uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex:idx_student_day" json:"student_id"`
	Date      time.Time             `gorm:"type:date;not null;uniqueIndex:idx_student_day" json:"date"`
	Status    enum.AttendanceStatus `gorm:"size:20;not null" json:"status"`
	MarkedBy  uuid.UUID             `gorm:"type:uuid;not null" json:"marked_by"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new attendance record
func (a *AttendanceRecord) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AttendanceRecord model
func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
