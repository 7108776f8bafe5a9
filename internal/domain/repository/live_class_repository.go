package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wanjiku/elimu-api/internal/domain/entity"
	"github.com/wanjiku/elimu-api/pkg/pagination"
)

// LiveClassRepository defines the interface for live class scheduling
type LiveClassRepository interface {
	Create(ctx context.Context, class *entity.LiveClass) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.LiveClass, error)
	Update(ctx context.Context, class *entity.LiveClass) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns live classes filtered by class name and/or teacher
	List(ctx context.Context, params *pagination.PaginationParams, className string, teacherID *uuid.UUID) ([]entity.LiveClass, int64, error)
	// ListUpcoming returns scheduled classes starting after the given time
	ListUpcoming(ctx context.Context, after time.Time, className string, limit int) ([]entity.LiveClass, error)
}
