package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/wanjiku/elimu-api/internal/domain/entity"
	"github.com/wanjiku/elimu-api/internal/domain/repository"
	"github.com/wanjiku/elimu-api/pkg/apperror"
	"github.com/wanjiku/elimu-api/pkg/pagination"
)

// NoticeService handles notice operations
type NoticeService struct {
	noticeRepo repository.NoticeRepository
}

// NewNoticeService creates a new notice service
func NewNoticeService(noticeRepo repository.NoticeRepository) *NoticeService {
	return &NoticeService{noticeRepo: noticeRepo}
}

// CreateNoticeInput represents the create notice input
type CreateNoticeInput struct {
	PostedBy  uuid.UUID
	Title     string
	Body      string
	ClassName *string
}

// CreateNotice posts a new notice
func (s *NoticeService) CreateNotice(ctx context.Context, input *CreateNoticeInput) (*entity.Notice, error) {
	notice := &entity.Notice{
		Title:     input.Title,
		Body:      input.Body,
		ClassName: input.ClassName,
		PostedBy:  input.PostedBy,
	}

	if err := s.noticeRepo.Create(ctx, notice); err != nil {
		return nil, err
	}

	return notice, nil
}

// GetNotice retrieves a notice by ID
func (s *NoticeService) GetNotice(ctx context.Context, id uuid.UUID) (*entity.Notice, error) {
	notice, err := s.noticeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notice == nil {
		return nil, apperror.NewNotFoundError("Notice")
	}
	return notice, nil
}

// ListNotices lists notices visible to a class (school-wide plus class-scoped)
func (s *NoticeService) ListNotices(ctx context.Context, params *pagination.PaginationParams, className string) (*pagination.PaginatedResult[entity.Notice], error) {
	notices, total, err := s.noticeRepo.List(ctx, params, className)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(notices, pag), nil
}

// UpdateNoticeInput represents the update notice input
type UpdateNoticeInput struct {
	ID        uuid.UUID
	ActorID   uuid.UUID
	IsAdmin   bool
	Title     *string
	Body      *string
	ClassName *string
}

// UpdateNotice updates a notice. Teachers may only edit their own.
func (s *NoticeService) UpdateNotice(ctx context.Context, input *UpdateNoticeInput) (*entity.Notice, error) {
	notice, err := s.noticeRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if notice == nil {
		return nil, apperror.NewNotFoundError("Notice")
	}

	if !input.IsAdmin && notice.PostedBy != input.ActorID {
		return nil, apperror.ErrForbidden
	}

	if input.Title != nil {
		notice.Title = *input.Title
	}
	if input.Body != nil {
		notice.Body = *input.Body
	}
	if input.ClassName != nil {
		notice.ClassName = input.ClassName
	}

	if err := s.noticeRepo.Update(ctx, notice); err != nil {
		return nil, err
	}

	return notice, nil
}

// DeleteNotice removes a notice. Teachers may only delete their own.
func (s *NoticeService) DeleteNotice(ctx context.Context, actorID, id uuid.UUID, isAdmin bool) error {
	notice, err := s.noticeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notice == nil {
		return apperror.NewNotFoundError("Notice")
	}

	if !isAdmin && notice.PostedBy != actorID {
		return apperror.ErrForbidden
	}

	return s.noticeRepo.Delete(ctx, id)
}
