package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/wanjiku/elimu-api/internal/domain/entity"
	"github.com/wanjiku/elimu-api/internal/domain/enum"
	"github.com/wanjiku/elimu-api/internal/domain/repository"
	"github.com/wanjiku/elimu-api/pkg/apperror"
	"github.com/wanjiku/elimu-api/pkg/utils"
)

// FeeService handles the write side of the fee ledger: recording billing
// entries and payments. Receipt computation lives in ReceiptService.
type FeeService struct {
	feeRepo     repository.FeeRepository
	studentRepo repository.StudentRepository
}

// NewFeeService creates a new fee service
func NewFeeService(feeRepo repository.FeeRepository, studentRepo repository.StudentRepository) *FeeService {
	return &FeeService{feeRepo: feeRepo, studentRepo: studentRepo}
}

// RecordFeeInput represents the record fee input
type RecordFeeInput struct {
	StudentID    uuid.UUID
	ReceiptNo    string
	Month        string
	MonthlyFee   float64
	OtherCharges *float64
	PaidAmount   float64
}

// RecordFee creates a new fee ledger entry. Receipt numbers are unique per
// student; this is where that invariant is enforced, so the receipt resolver
// can assume at most one match.
func (s *FeeService) RecordFee(ctx context.Context, input *RecordFeeInput) (*entity.FeeEntry, error) {
	if !enum.IsValidMonth(input.Month) {
		return nil, apperror.NewBadRequestError("Invalid month name: " + input.Month)
	}
	if input.MonthlyFee < 0 || input.PaidAmount < 0 {
		return nil, apperror.NewBadRequestError("Amounts cannot be negative")
	}
	if input.OtherCharges != nil && *input.OtherCharges < 0 {
		return nil, apperror.NewBadRequestError("Amounts cannot be negative")
	}

	student, err := s.studentRepo.GetByID(ctx, input.StudentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NewNotFoundError("Student")
	}

	receiptNo := strings.TrimSpace(input.ReceiptNo)
	if receiptNo == "" {
		receiptNo = utils.GenerateReceiptNo()
	} else {
		existing, err := s.feeRepo.GetEntryByReceiptNo(ctx, input.StudentID, receiptNo)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Receipt number already exists for this student")
		}
	}

	entry := &entity.FeeEntry{
		StudentID:    input.StudentID,
		ReceiptNo:    receiptNo,
		Month:        input.Month,
		MonthlyFee:   input.MonthlyFee,
		OtherCharges: input.OtherCharges,
		PaidAmount:   input.PaidAmount,
	}

	if err := s.feeRepo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// RecordPayment adds a payment against an existing fee entry
func (s *FeeService) RecordPayment(ctx context.Context, studentID uuid.UUID, receiptNo string, amount float64) (*entity.FeeEntry, error) {
	if amount <= 0 {
		return nil, apperror.NewBadRequestError("Payment amount must be positive")
	}

	entry, err := s.feeRepo.GetEntryByReceiptNo(ctx, studentID, receiptNo)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}

	entry.PaidAmount += amount
	if err := s.feeRepo.UpdateEntry(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// GetLedger returns a student's full fee history in insertion order
func (s *FeeService) GetLedger(ctx context.Context, studentID uuid.UUID) ([]entity.FeeEntry, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NewNotFoundError("Student")
	}

	return s.feeRepo.GetLedger(ctx, studentID)
}

// GetStats returns school-wide fee aggregates
func (s *FeeService) GetStats(ctx context.Context) (*repository.FeeStats, error) {
	return s.feeRepo.Stats(ctx)
}
