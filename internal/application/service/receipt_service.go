package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/wanjiku/elimu-api/internal/domain/entity"
	"github.com/wanjiku/elimu-api/internal/domain/enum"
	"github.com/wanjiku/elimu-api/internal/domain/repository"
	"github.com/wanjiku/elimu-api/pkg/apperror"
)

// unknownField is shown on receipts when a student record lacks a display attribute
const unknownField = "N/A"

// ReceiptService computes fee receipts from a student's ledger. It is a pure
// read path: one store fetch, then in-memory traversal. It never writes.
type ReceiptService struct {
	studentRepo repository.StudentRepository
	feeRepo     repository.FeeRepository
}

// NewReceiptService creates a new receipt service
func NewReceiptService(studentRepo repository.StudentRepository, feeRepo repository.FeeRepository) *ReceiptService {
	return &ReceiptService{studentRepo: studentRepo, feeRepo: feeRepo}
}

// GetReceipt resolves a receipt number against a student's fee ledger and
// returns the computed receipt. Failures map to the HTTP boundary as:
// missing input 400, unknown student or receipt 404, store errors 500.
func (s *ReceiptService) GetReceipt(ctx context.Context, studentID uuid.UUID, receiptNo string) (*entity.FeeReceipt, error) {
	if studentID == uuid.Nil || strings.TrimSpace(receiptNo) == "" {
		return nil, apperror.NewBadRequestError("Student ID and receipt number are required")
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NewNotFoundError("Student")
	}

	ledger, err := s.feeRepo.GetLedger(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return buildReceipt(student, ledger, receiptNo)
}

// buildReceipt derives the receipt projection from a ledger snapshot. The
// ledger must be in insertion order; months are scanned in calendar order so
// the result does not depend on store iteration order.
func buildReceipt(student *entity.Student, ledger []entity.FeeEntry, receiptNo string) (*entity.FeeReceipt, error) {
	byMonth := make(map[string][]entity.FeeEntry)
	for _, e := range ledger {
		byMonth[e.Month] = append(byMonth[e.Month], e)
	}

	var matched *entity.FeeEntry
	var foundMonth string
	for _, month := range enum.Months {
		for i := range byMonth[month] {
			if byMonth[month][i].ReceiptNo == receiptNo {
				matched = &byMonth[month][i]
				foundMonth = month
				break
			}
		}
		if matched != nil {
			break
		}
	}
	if matched == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}

	// Carry forward the balance of the last entry of the preceding month.
	// January has no preceding month; a month with no history carries zero.
	// An overpaid previous month yields a negative due (credit), unclamped.
	previousMonthDue := 0.0
	if prev, ok := enum.PreviousMonth(foundMonth); ok {
		if bucket := byMonth[prev]; len(bucket) > 0 {
			last := bucket[len(bucket)-1]
			previousMonthDue = last.Outstanding()
		}
	}

	total := matched.MonthlyFee + matched.OtherChargesAmount() + previousMonthDue

	return &entity.FeeReceipt{
		StudentName:      student.FullName(),
		ClassName:        fallback(student.ClassName),
		RollNo:           fallback(student.RollNumber),
		Address:          fallbackPtr(student.Address),
		ReceiptNo:        matched.ReceiptNo,
		Date:             matched.UpdatedAt.Format("2006-01-02"),
		Month:            foundMonth,
		MonthlyFee:       matched.MonthlyFee,
		OtherCharges:     matched.OtherChargesAmount(),
		PreviousMonthDue: previousMonthDue,
		Total:            total,
		PaidAmount:       matched.PaidAmount,
		BalanceDue:       total - matched.PaidAmount,
	}, nil
}

func fallback(s string) string {
	if s == "" {
		return unknownField
	}
	return s
}

func fallbackPtr(s *string) string {
	if s == nil || *s == "" {
		return unknownField
	}
	return *s
}
