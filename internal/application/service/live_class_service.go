package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wanjiku/elimu-api/internal/domain/entity"
	"github.com/wanjiku/elimu-api/internal/domain/enum"
	"github.com/wanjiku/elimu-api/internal/domain/repository"
	"github.com/wanjiku/elimu-api/pkg/apperror"
	"github.com/wanjiku/elimu-api/pkg/pagination"
)

// LiveClassService handles live class scheduling
type LiveClassService struct {
	liveClassRepo repository.LiveClassRepository
}

// NewLiveClassService creates a new live class service
func NewLiveClassService(liveClassRepo repository.LiveClassRepository) *LiveClassService {
	return &LiveClassService{liveClassRepo: liveClassRepo}
}

// ScheduleClassInput represents the schedule class input
type ScheduleClassInput struct {
	TeacherID       uuid.UUID
	Title           string
	Subject         string
	ClassName       string
	MeetingURL      string
	StartsAt        time.Time
	DurationMinutes int
}

// ScheduleClass schedules a new live class session
func (s *LiveClassService) ScheduleClass(ctx context.Context, input *ScheduleClassInput) (*entity.LiveClass, error) {
	if input.StartsAt.Before(time.Now()) {
		return nil, apperror.NewBadRequestError("Start time must be in the future")
	}
	if input.DurationMinutes <= 0 {
		input.DurationMinutes = 40
	}

	class := &entity.LiveClass{
		TeacherID:       input.TeacherID,
		Title:           input.Title,
		Subject:         input.Subject,
		ClassName:       input.ClassName,
		MeetingURL:      input.MeetingURL,
		StartsAt:        input.StartsAt,
		DurationMinutes: input.DurationMinutes,
		Status:          enum.LiveClassScheduled,
	}

	if err := s.liveClassRepo.Create(ctx, class); err != nil {
		return nil, err
	}

	return class, nil
}

// GetClass retrieves a live class by ID
func (s *LiveClassService) GetClass(ctx context.Context, id uuid.UUID) (*entity.LiveClass, error) {
	class, err := s.liveClassRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, apperror.NewNotFoundError("Live class")
	}
	return class, nil
}

// ListClasses lists live classes with optional class name and teacher filters
func (s *LiveClassService) ListClasses(ctx context.Context, params *pagination.PaginationParams, className string, teacherID *uuid.UUID) (*pagination.PaginatedResult[entity.LiveClass], error) {
	classes, total, err := s.liveClassRepo.List(ctx, params, className, teacherID)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(classes, pag), nil
}

// UpdateClassInput represents the update class input
type UpdateClassInput struct {
	ID              uuid.UUID
	ActorID         uuid.UUID
	IsAdmin         bool
	Title           *string
	Subject         *string
	MeetingURL      *string
	StartsAt        *time.Time
	DurationMinutes *int
	Status          *enum.LiveClassStatus
}

// UpdateClass updates a scheduled class. Teachers may only change their own.
func (s *LiveClassService) UpdateClass(ctx context.Context, input *UpdateClassInput) (*entity.LiveClass, error) {
	class, err := s.liveClassRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, apperror.NewNotFoundError("Live class")
	}

	if !input.IsAdmin && class.TeacherID != input.ActorID {
		return nil, apperror.ErrForbidden
	}

	if input.Title != nil {
		class.Title = *input.Title
	}
	if input.Subject != nil {
		class.Subject = *input.Subject
	}
	if input.MeetingURL != nil {
		class.MeetingURL = *input.MeetingURL
	}
	if input.StartsAt != nil {
		class.StartsAt = *input.StartsAt
	}
	if input.DurationMinutes != nil {
		class.DurationMinutes = *input.DurationMinutes
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid live class status")
		}
		class.Status = *input.Status
	}

	if err := s.liveClassRepo.Update(ctx, class); err != nil {
		return nil, err
	}

	return class, nil
}

// CancelClass cancels a scheduled class. Teachers may only cancel their own.
func (s *LiveClassService) CancelClass(ctx context.Context, actorID, id uuid.UUID, isAdmin bool) (*entity.LiveClass, error) {
	class, err := s.liveClassRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, apperror.NewNotFoundError("Live class")
	}

	if !isAdmin && class.TeacherID != actorID {
		return nil, apperror.ErrForbidden
	}

	class.Status = enum.LiveClassCancelled
	if err := s.liveClassRepo.Update(ctx, class); err != nil {
		return nil, err
	}

	return class, nil
}
