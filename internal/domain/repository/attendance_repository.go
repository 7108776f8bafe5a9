package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wanjiku/elimu-api/internal/domain/entity"
)

// AttendanceSummary aggregates one student's attendance over a period
type AttendanceSummary struct {
	Present int64 `json:"present"`
	Absent  int64 `json:"absent"`
	Late    int64 `json:"late"`
}

// AttendanceRepository defines the interface for attendance operations
type AttendanceRepository interface {
	// Upsert creates the day's record or updates its status if one exists
	Upsert(ctx context.Context, record *entity.AttendanceRecord) error
	GetByStudentAndDate(ctx context.Context, studentID uuid.UUID, date time.Time) (*entity.AttendanceRecord, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID, from, to time.Time) ([]entity.AttendanceRecord, error)
	ListByClassAndDate(ctx context.Context, className string, date time.Time) ([]entity.AttendanceRecord, error)
	Summary(ctx context.Context, studentID uuid.UUID, from, to time.Time) (*AttendanceSummary, error)
	CountByDateAndStatus(ctx context.Context, date time.Time, status string) (int64, error)
}
