package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/wanjiku/elimu-api/internal/domain/entity"
	"github.com/wanjiku/elimu-api/pkg/pagination"
)

// StudentRepository defines the interface for student record operations
type StudentRepository interface {
	Create(ctx context.Context, student *entity.Student) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Student, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Student, error)
	Update(ctx context.Context, student *entity.Student) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns students filtered by class name and/or name search
	List(ctx context.Context, params *pagination.PaginationParams, className, search string) ([]entity.Student, int64, error)
	Count(ctx context.Context) (int64, error)
}
