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

type resourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository creates a new study resource repository
func NewResourceRepository(db *gorm.DB) domainRepo.ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Create(ctx context.Context, resource *entity.StudyResource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

func (r *resourceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.StudyResource, error) {
	var resource entity.StudyResource
	err := r.db.WithContext(ctx).First(&resource, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &resource, err
}

func (r *resourceRepository) Update(ctx context.Context, resource *entity.StudyResource) error {
	return r.db.WithContext(ctx).Save(resource).Error
}

func (r *resourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.StudyResource{}, "id = ?", id).Error
}

func (r *resourceRepository) List(ctx context.Context, params *pagination.PaginationParams, className, subject string) ([]entity.StudyResource, int64, error) {
	var resources []entity.StudyResource
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.StudyResource{})

	if className != "" {
		query = query.Where("class_name = ?", className)
	}
	if subject != "" {
		query = query.Where("subject = ?", subject)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&resources).Error

	return resources, total, err
}
