package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wanjiku/elimu-api/internal/domain/entity"
	domainRepo "github.com/wanjiku/elimu-api/internal/domain/repository"
)

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) domainRepo.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Upsert(ctx context.Context, record *entity.AttendanceRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "marked_by", "updated_at"}),
		}).
		Create(record).Error
}

func (r *attendanceRepository) GetByStudentAndDate(ctx context.Context, studentID uuid.UUID, date time.Time) (*entity.AttendanceRecord, error) {
	var record entity.AttendanceRecord
	err := r.db.WithContext(ctx).
		First(&record, "student_id = ? AND date = ?", studentID, date).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *attendanceRepository) ListByStudent(ctx context.Context, studentID uuid.UUID, from, to time.Time) ([]entity.AttendanceRecord, error) {
	var records []entity.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND date BETWEEN ? AND ?", studentID, from, to).
		Order("date ASC").
		Find(&records).Error
	return records, err
}

func (r *attendanceRepository) ListByClassAndDate(ctx context.Context, className string, date time.Time) ([]entity.AttendanceRecord, error) {
	var records []entity.AttendanceRecord
	err := r.db.WithContext(ctx).
		Joins("JOIN students ON students.id = attendance_records.student_id").
		Where("students.class_name = ? AND attendance_records.date = ?", className, date).
		Order("students.roll_number ASC").
		Find(&records).Error
	return records, err
}

func (r *attendanceRepository) Summary(ctx context.Context, studentID uuid.UUID, from, to time.Time) (*domainRepo.AttendanceSummary, error) {
	var summary domainRepo.AttendanceSummary
	err := r.db.WithContext(ctx).
		Model(&entity.AttendanceRecord{}).
		Select(
			"COUNT(*) FILTER (WHERE status = 'present') AS present, "+
				"COUNT(*) FILTER (WHERE status = 'absent') AS absent, "+
				"COUNT(*) FILTER (WHERE status = 'late') AS late").
		Where("student_id = ? AND date BETWEEN ? AND ?", studentID, from, to).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *attendanceRepository) CountByDateAndStatus(ctx context.Context, date time.Time, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entity.AttendanceRecord{}).
		Where("date = ? AND status = ?", date, status).
		Count(&total).Error
	return total, err
}
