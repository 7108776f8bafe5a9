package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wanjiku/elimu-api/internal/domain/entity"
	"github.com/wanjiku/elimu-api/internal/domain/repository"
	"github.com/wanjiku/elimu-api/pkg/apperror"
	"github.com/wanjiku/elimu-api/pkg/pagination"
)

// StudentService handles student record operations
type StudentService struct {
	studentRepo repository.StudentRepository
}

// NewStudentService creates a new student service
func NewStudentService(studentRepo repository.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// CreateStudentInput represents the create student input
type CreateStudentInput struct {
	UserID        *uuid.UUID
	FirstName     string
	LastName      string
	ClassName     string
	RollNumber    string
	GuardianName  *string
	GuardianPhone *string
	Address       *string
	AdmittedAt    *time.Time
}

// CreateStudent enrolls a new student
func (s *StudentService) CreateStudent(ctx context.Context, input *CreateStudentInput) (*entity.Student, error) {
	student := &entity.Student{
		UserID:        input.UserID,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		ClassName:     input.ClassName,
		RollNumber:    input.RollNumber,
		GuardianName:  input.GuardianName,
		GuardianPhone: input.GuardianPhone,
		Address:       input.Address,
		AdmittedAt:    input.AdmittedAt,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// GetStudent retrieves a student by ID
func (s *StudentService) GetStudent(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NewNotFoundError("Student")
	}
	return student, nil
}

// GetStudentByUser retrieves the student record linked to a login account
func (s *StudentService) GetStudentByUser(ctx context.Context, userID uuid.UUID) (*entity.Student, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NewNotFoundError("Student")
	}
	return student, nil
}

// ListStudents lists students with pagination, class filter and name search
func (s *StudentService) ListStudents(ctx context.Context, params *pagination.PaginationParams, className, search string) (*pagination.PaginatedResult[entity.Student], error) {
	students, total, err := s.studentRepo.List(ctx, params, className, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(students, pag), nil
}

// UpdateStudentInput represents the update student input
type UpdateStudentInput struct {
	ID            uuid.UUID
	FirstName     *string
	LastName      *string
	ClassName     *string
	RollNumber    *string
	GuardianName  *string
	GuardianPhone *string
	Address       *string
}

// UpdateStudent updates a student record
func (s *StudentService) UpdateStudent(ctx context.Context, input *UpdateStudentInput) (*entity.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NewNotFoundError("Student")
	}

	if input.FirstName != nil {
		student.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		student.LastName = *input.LastName
	}
	if input.ClassName != nil {
		student.ClassName = *input.ClassName
	}
	if input.RollNumber != nil {
		student.RollNumber = *input.RollNumber
	}
	if input.GuardianName != nil {
		student.GuardianName = input.GuardianName
	}
	if input.GuardianPhone != nil {
		student.GuardianPhone = input.GuardianPhone
	}
	if input.Address != nil {
		student.Address = input.Address
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// DeleteStudent removes a student record
func (s *StudentService) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if student == nil {
		return apperror.NewNotFoundError("Student")
	}

	return s.studentRepo.Delete(ctx, id)
}
