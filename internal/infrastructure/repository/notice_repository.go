package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wanjiku/elimu-api/internal/domain/entity"
	domainRepo "github.com/wanjiku/elimu-api/internal/domain/repository"
	"github.com/wanjiku/elimu-api/pkg/pagination"
)

type noticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository creates a new notice repository
func NewNoticeRepository(db *gorm.DB) domainRepo.NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) Create(ctx context.Context, notice *entity.Notice) error {
	return r.db.WithContext(ctx).Create(notice).Error
}

func (r *noticeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Notice, error) {
	var notice entity.Notice
	err := r.db.WithContext(ctx).First(&notice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &notice, err
}

func (r *noticeRepository) Update(ctx context.Context, notice *entity.Notice) error {
	return r.db.WithContext(ctx).Save(notice).Error
}

func (r *noticeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Notice{}, "id = ?", id).Error
}

func (r *noticeRepository) List(ctx context.Context, params *pagination.PaginationParams, className string) ([]entity.Notice, int64, error) {
	var notices []entity.Notice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Notice{})

	if className != "" {
		query = query.Where("class_name IS NULL OR class_name = ?", className)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&notices).Error

	return notices, total, err
}

func (r *noticeRepository) ListRecent(ctx context.Context, limit int) ([]entity.Notice, error) {
	var notices []entity.Notice
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&notices).Error
	return notices, err
}
