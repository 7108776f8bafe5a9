package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wanjiku/elimu-api/internal/domain/entity"
	"github.com/wanjiku/elimu-api/internal/domain/enum"
	domainRepo "github.com/wanjiku/elimu-api/internal/domain/repository"
	"github.com/wanjiku/elimu-api/pkg/pagination"
)

type liveClassRepository struct {
	db *gorm.DB
}

// NewLiveClassRepository creates a new live class repository
func NewLiveClassRepository(db *gorm.DB) domainRepo.LiveClassRepository {
	return &liveClassRepository{db: db}
}

func (r *liveClassRepository) Create(ctx context.Context, class *entity.LiveClass) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *liveClassRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.LiveClass, error) {
	var class entity.LiveClass
	err := r.db.WithContext(ctx).First(&class, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &class, err
}

func (r *liveClassRepository) Update(ctx context.Context, class *entity.LiveClass) error {
	return r.db.WithContext(ctx).Save(class).Error
}

func (r *liveClassRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.LiveClass{}, "id = ?", id).Error
}

func (r *liveClassRepository) List(ctx context.Context, params *pagination.PaginationParams, className string, teacherID *uuid.UUID) ([]entity.LiveClass, int64, error) {
	var classes []entity.LiveClass
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.LiveClass{})

	if className != "" {
		query = query.Where("class_name = ?", className)
	}
	if teacherID != nil {
		query = query.Where("teacher_id = ?", *teacherID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("starts_at DESC").
		Find(&classes).Error

	return classes, total, err
}

func (r *liveClassRepository) ListUpcoming(ctx context.Context, after time.Time, className string, limit int) ([]entity.LiveClass, error) {
	var classes []entity.LiveClass

	query := r.db.WithContext(ctx).
		Where("status = ? AND starts_at > ?", enum.LiveClassScheduled, after)
	if className != "" {
		query = query.Where("class_name = ?", className)
	}

	err := query.Order("starts_at ASC").Limit(limit).Find(&classes).Error
	return classes, err
}
