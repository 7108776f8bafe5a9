package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/wanjiku/elimu-api/internal/domain/entity"
	"github.com/wanjiku/elimu-api/internal/domain/repository"
	"github.com/wanjiku/elimu-api/pkg/apperror"
	"github.com/wanjiku/elimu-api/pkg/pagination"
)

// ResourceService handles study resource operations
type ResourceService struct {
	resourceRepo repository.ResourceRepository
}

// NewResourceService creates a new resource service
func NewResourceService(resourceRepo repository.ResourceRepository) *ResourceService {
	return &ResourceService{resourceRepo: resourceRepo}
}

// CreateResourceInput represents the create resource input
type CreateResourceInput struct {
	UploadedBy  uuid.UUID
	Title       string
	Subject     string
	ClassName   string
	URL         string
	Description *string
}

// CreateResource shares new study material
func (s *ResourceService) CreateResource(ctx context.Context, input *CreateResourceInput) (*entity.StudyResource, error) {
	resource := &entity.StudyResource{
		Title:       input.Title,
		Subject:     input.Subject,
		ClassName:   input.ClassName,
		URL:         input.URL,
		Description: input.Description,
		UploadedBy:  input.UploadedBy,
	}

	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		return nil, err
	}

	return resource, nil
}

// GetResource retrieves a study resource by ID
func (s *ResourceService) GetResource(ctx context.Context, id uuid.UUID) (*entity.StudyResource, error) {
	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, apperror.NewNotFoundError("Resource")
	}
	return resource, nil
}

// ListResources lists study resources filtered by class name and/or subject
func (s *ResourceService) ListResources(ctx context.Context, params *pagination.PaginationParams, className, subject string) (*pagination.PaginatedResult[entity.StudyResource], error) {
	resources, total, err := s.resourceRepo.List(ctx, params, className, subject)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(resources, pag), nil
}

// UpdateResourceInput represents the update resource input
type UpdateResourceInput struct {
	ID          uuid.UUID
	ActorID     uuid.UUID
	IsAdmin     bool
	Title       *string
	Subject     *string
	ClassName   *string
	URL         *string
	Description *string
}

// UpdateResource updates a study resource. Teachers may only edit their own.
func (s *ResourceService) UpdateResource(ctx context.Context, input *UpdateResourceInput) (*entity.StudyResource, error) {
	resource, err := s.resourceRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, apperror.NewNotFoundError("Resource")
	}

	if !input.IsAdmin && resource.UploadedBy != input.ActorID {
		return nil, apperror.ErrForbidden
	}

	if input.Title != nil {
		resource.Title = *input.Title
	}
	if input.Subject != nil {
		resource.Subject = *input.Subject
	}
	if input.ClassName != nil {
		resource.ClassName = *input.ClassName
	}
	if input.URL != nil {
		resource.URL = *input.URL
	}
	if input.Description != nil {
		resource.Description = input.Description
	}

	if err := s.resourceRepo.Update(ctx, resource); err != nil {
		return nil, err
	}

	return resource, nil
}

// DeleteResource removes a study resource. Teachers may only delete their own.
func (s *ResourceService) DeleteResource(ctx context.Context, actorID, id uuid.UUID, isAdmin bool) error {
	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if resource == nil {
		return apperror.NewNotFoundError("Resource")
	}

	if !isAdmin && resource.UploadedBy != actorID {
		return apperror.ErrForbidden
	}

	return s.resourceRepo.Delete(ctx, id)
}
