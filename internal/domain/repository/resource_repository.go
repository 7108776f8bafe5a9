package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/wanjiku/elimu-api/internal/domain/entity"
	"github.com/wanjiku/elimu-api/pkg/pagination"
)

// ResourceRepository defines the interface for study resource operations
type ResourceRepository interface {
	Create(ctx context.Context, resource *entity.StudyResource) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.StudyResource, error)
	Update(ctx context.Context, resource *entity.StudyResource) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns resources filtered by class name and/or subject
	List(ctx context.Context, params *pagination.PaginationParams, className, subject string) ([]entity.StudyResource, int64, error)
}
