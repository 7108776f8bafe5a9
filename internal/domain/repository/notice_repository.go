package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/wanjiku/elimu-api/internal/domain/entity"
	"github.com/wanjiku/elimu-api/pkg/pagination"
)

// NoticeRepository defines the interface for notice operations
type NoticeRepository interface {
	Create(ctx context.Context, notice *entity.Notice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Notice, error)
	Update(ctx context.Context, notice *entity.Notice) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns notices visible to a class: school-wide ones plus those
	// scoped to className. An empty className returns everything.
	List(ctx context.Context, params *pagination.PaginationParams, className string) ([]entity.Notice, int64, error)
	ListRecent(ctx context.Context, limit int) ([]entity.Notice, error)
}
