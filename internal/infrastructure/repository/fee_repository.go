package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wanjiku/elimu-api/internal/domain/entity"
	domainRepo "github.com/wanjiku/elimu-api/internal/domain/repository"
)

type feeRepository struct {
	db *gorm.DB
}

// NewFeeRepository creates a new fee repository
func NewFeeRepository(db *gorm.DB) domainRepo.FeeRepository {
	return &feeRepository{db: db}
}

func (r *feeRepository) CreateEntry(ctx context.Context, entry *entity.FeeEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *feeRepository) GetEntryByReceiptNo(ctx context.Context, studentID uuid.UUID, receiptNo string) (*entity.FeeEntry, error) {
	var entry entity.FeeEntry
	err := r.db.WithContext(ctx).
		First(&entry, "student_id = ? AND receipt_no = ?", studentID, receiptNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &entry, err
}

// GetLedger returns every fee entry for the student in insertion order.
// Receipt resolution depends on this ordering when a month holds more
// than one entry.
func (r *feeRepository) GetLedger(ctx context.Context, studentID uuid.UUID) ([]entity.FeeEntry, error) {
	var entries []entity.FeeEntry
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at ASC, id ASC").
		Find(&entries).Error
	return entries, err
}

func (r *feeRepository) UpdateEntry(ctx context.Context, entry *entity.FeeEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *feeRepository) Stats(ctx context.Context) (*domainRepo.FeeStats, error) {
	var stats domainRepo.FeeStats
	err := r.db.WithContext(ctx).
		Model(&entity.FeeEntry{}).
		Select("COUNT(*) AS total_entries, COALESCE(SUM(monthly_fee + COALESCE(other_charges, 0)), 0) AS total_charged, COALESCE(SUM(paid_amount), 0) AS total_collected").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
