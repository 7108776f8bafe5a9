package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wanjiku/elimu-api/internal/domain/entity"
	"github.com/wanjiku/elimu-api/internal/domain/enum"
	"github.com/wanjiku/elimu-api/internal/domain/repository"
	"github.com/wanjiku/elimu-api/pkg/apperror"
)

// AttendanceService handles attendance marking and reporting
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
	studentRepo    repository.StudentRepository
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(attendanceRepo repository.AttendanceRepository, studentRepo repository.StudentRepository) *AttendanceService {
	return &AttendanceService{attendanceRepo: attendanceRepo, studentRepo: studentRepo}
}

// MarkAttendanceInput represents the mark attendance input
type MarkAttendanceInput struct {
	StudentID uuid.UUID
	Date      time.Time
	Status    enum.AttendanceStatus
	MarkedBy  uuid.UUID
}

// MarkAttendance records one student's attendance for a day. Marking the same
// day twice updates the existing record.
func (s *AttendanceService) MarkAttendance(ctx context.Context, input *MarkAttendanceInput) (*entity.AttendanceRecord, error) {
	if !input.Status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid attendance status: " + string(input.Status))
	}
	day := truncateToDay(input.Date)
	if day.After(truncateToDay(time.Now())) {
		return nil, apperror.NewBadRequestError("Cannot mark attendance for a future date")
	}

	student, err := s.studentRepo.GetByID(ctx, input.StudentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NewNotFoundError("Student")
	}

	record := &entity.AttendanceRecord{
		StudentID: input.StudentID,
		Date:      day,
		Status:    input.Status,
		MarkedBy:  input.MarkedBy,
	}
	if err := s.attendanceRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// BulkMark represents one student's status within a bulk marking request
type BulkMark struct {
	StudentID uuid.UUID
	Status    enum.AttendanceStatus
}

// MarkClassAttendance records attendance for several students of a class at
// once. It fails fast on the first invalid status before writing anything.
func (s *AttendanceService) MarkClassAttendance(ctx context.Context, date time.Time, marks []BulkMark, markedBy uuid.UUID) ([]entity.AttendanceRecord, error) {
	if len(marks) == 0 {
		return nil, apperror.NewBadRequestError("No attendance marks provided")
	}
	for _, m := range marks {
		if !m.Status.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid attendance status: " + string(m.Status))
		}
	}

	day := truncateToDay(date)
	if day.After(truncateToDay(time.Now())) {
		return nil, apperror.NewBadRequestError("Cannot mark attendance for a future date")
	}

	records := make([]entity.AttendanceRecord, 0, len(marks))
	for _, m := range marks {
		record := entity.AttendanceRecord{
			StudentID: m.StudentID,
			Date:      day,
			Status:    m.Status,
			MarkedBy:  markedBy,
		}
		if err := s.attendanceRepo.Upsert(ctx, &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// GetStudentAttendance returns a student's records within a date range
func (s *AttendanceService) GetStudentAttendance(ctx context.Context, studentID uuid.UUID, from, to time.Time) ([]entity.AttendanceRecord, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NewNotFoundError("Student")
	}

	return s.attendanceRepo.ListByStudent(ctx, studentID, truncateToDay(from), truncateToDay(to))
}

// GetClassAttendance returns all records for a class on a given day
func (s *AttendanceService) GetClassAttendance(ctx context.Context, className string, date time.Time) ([]entity.AttendanceRecord, error) {
	return s.attendanceRepo.ListByClassAndDate(ctx, className, truncateToDay(date))
}

// GetMonthlySummary aggregates a student's attendance for one calendar month
func (s *AttendanceService) GetMonthlySummary(ctx context.Context, studentID uuid.UUID, year int, month string) (*repository.AttendanceSummary, error) {
	idx := enum.MonthIndex(month)
	if idx < 0 {
		return nil, apperror.NewBadRequestError("Invalid month name: " + month)
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NewNotFoundError("Student")
	}

	from := time.Date(year, time.Month(idx+1), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return s.attendanceRepo.Summary(ctx, studentID, from, to)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
