package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wanjiku/elimu-api/internal/domain/entity"
	"github.com/wanjiku/elimu-api/pkg/apperror"
)

func floatPtr(v float64) *float64 { return &v }

func testStudent() *entity.Student {
	address := "Moi Avenue, Nakuru"
	return &entity.Student{
		ID:         uuid.New(),
		FirstName:  "Amani",
		LastName:   "Otieno",
		ClassName:  "Grade 6",
		RollNumber: "17",
		Address:    &address,
	}
}

// ledgerEntry builds a fee entry with a created_at offset so insertion order
// is explicit in tests
func ledgerEntry(studentID uuid.UUID, receiptNo, month string, fee float64, other *float64, paid float64, seq int) entity.FeeEntry {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return entity.FeeEntry{
		ID:           uuid.New(),
		StudentID:    studentID,
		ReceiptNo:    receiptNo,
		Month:        month,
		MonthlyFee:   fee,
		OtherCharges: other,
		PaidAmount:   paid,
		CreatedAt:    base.Add(time.Duration(seq) * time.Minute),
		UpdatedAt:    base.Add(time.Duration(seq) * time.Minute),
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func statusCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	return apperror.GetAppError(err).Code
}

func TestGetReceiptCarriesPreviousMonthDue(t *testing.T) {
	student := testStudent()
	feeRepo := &fakeFeeRepo{entries: []entity.FeeEntry{
		ledgerEntry(student.ID, "R001", "January", 1000, nil, 800, 0),
		ledgerEntry(student.ID, "R002", "February", 1000, nil, 800, 1),
	}}
	svc := NewReceiptService(newFakeStudentRepo(student), feeRepo)

	receipt, err := svc.GetReceipt(context.Background(), student.ID, "R002")
	if err != nil {
		t.Fatalf("GetReceipt: %v", err)
	}

	if !almostEqual(receipt.PreviousMonthDue, 200) {
		t.Errorf("PreviousMonthDue = %v, want 200", receipt.PreviousMonthDue)
	}
	if !almostEqual(receipt.Total, 1200) {
		t.Errorf("Total = %v, want 1200", receipt.Total)
	}
	if !almostEqual(receipt.BalanceDue, 400) {
		t.Errorf("BalanceDue = %v, want 400", receipt.BalanceDue)
	}
	if receipt.Month != "February" {
		t.Errorf("Month = %q, want February", receipt.Month)
	}
}

func TestGetReceiptJanuaryHasNoPreviousMonth(t *testing.T) {
	student := testStudent()
	feeRepo := &fakeFeeRepo{entries: []entity.FeeEntry{
		ledgerEntry(student.ID, "R001", "January", 1500, floatPtr(100), 1000, 0),
	}}
	svc := NewReceiptService(newFakeStudentRepo(student), feeRepo)

	receipt, err := svc.GetReceipt(context.Background(), student.ID, "R001")
	if err != nil {
		t.Fatalf("GetReceipt: %v", err)
	}

	if receipt.PreviousMonthDue != 0 {
		t.Errorf("PreviousMonthDue = %v, want 0", receipt.PreviousMonthDue)
	}
	if !almostEqual(receipt.Total, 1600) {
		t.Errorf("Total = %v, want 1600", receipt.Total)
	}
	if !almostEqual(receipt.BalanceDue, 600) {
		t.Errorf("BalanceDue = %v, want 600", receipt.BalanceDue)
	}
}

func TestGetReceiptAbsentPreviousMonthCarriesZero(t *testing.T) {
	student := testStudent()
	// March entry with no February history at all
	feeRepo := &fakeFeeRepo{entries: []entity.FeeEntry{
		ledgerEntry(student.ID, "R001", "January", 1000, nil, 1000, 0),
		ledgerEntry(student.ID, "R003", "March", 1000, nil, 500, 1),
	}}
	svc := NewReceiptService(newFakeStudentRepo(student), feeRepo)

	receipt, err := svc.GetReceipt(context.Background(), student.ID, "R003")
	if err != nil {
		t.Fatalf("GetReceipt: %v", err)
	}

	if receipt.PreviousMonthDue != 0 {
		t.Errorf("PreviousMonthDue = %v, want 0", receipt.PreviousMonthDue)
	}
}

func TestGetReceiptUsesLastEntryOfPreviousMonth(t *testing.T) {
	student := testStudent()
	// Two January entries; the carry-forward must come from the later one
	feeRepo := &fakeFeeRepo{entries: []entity.FeeEntry{
		ledgerEntry(student.ID, "R001", "January", 1000, nil, 1000, 0),
		ledgerEntry(student.ID, "R001B", "January", 500, nil, 200, 1),
		ledgerEntry(student.ID, "R002", "February", 1000, nil, 0, 2),
	}}
	svc := NewReceiptService(newFakeStudentRepo(student), feeRepo)

	receipt, err := svc.GetReceipt(context.Background(), student.ID, "R002")
	if err != nil {
		t.Fatalf("GetReceipt: %v", err)
	}

	if !almostEqual(receipt.PreviousMonthDue, 300) {
		t.Errorf("PreviousMonthDue = %v, want 300 (last January entry)", receipt.PreviousMonthDue)
	}
}

func TestGetReceiptOverpaidPreviousMonthIsCredit(t *testing.T) {
	student := testStudent()
	feeRepo := &fakeFeeRepo{entries: []entity.FeeEntry{
		ledgerEntry(student.ID, "R001", "January", 1000, nil, 1300, 0),
		ledgerEntry(student.ID, "R002", "February", 1000, nil, 0, 1),
	}}
	svc := NewReceiptService(newFakeStudentRepo(student), feeRepo)

	receipt, err := svc.GetReceipt(context.Background(), student.ID, "R002")
	if err != nil {
		t.Fatalf("GetReceipt: %v", err)
	}

	if !almostEqual(receipt.PreviousMonthDue, -300) {
		t.Errorf("PreviousMonthDue = %v, want -300", receipt.PreviousMonthDue)
	}
	if !almostEqual(receipt.Total, 700) {
		t.Errorf("Total = %v, want 700", receipt.Total)
	}
}

func TestGetReceiptNilAndZeroOtherChargesAreEquivalent(t *testing.T) {
	student := testStudent()

	for name, other := range map[string]*float64{"nil": nil, "zero": floatPtr(0)} {
		feeRepo := &fakeFeeRepo{entries: []entity.FeeEntry{
			ledgerEntry(student.ID, "R001", "May", 900, other, 400, 0),
		}}
		svc := NewReceiptService(newFakeStudentRepo(student), feeRepo)

		receipt, err := svc.GetReceipt(context.Background(), student.ID, "R001")
		if err != nil {
			t.Fatalf("%s other charges: %v", name, err)
		}
		if receipt.OtherCharges != 0 {
			t.Errorf("%s other charges: OtherCharges = %v, want 0", name, receipt.OtherCharges)
		}
		if !almostEqual(receipt.Total, 900) {
			t.Errorf("%s other charges: Total = %v, want 900", name, receipt.Total)
		}
	}
}

func TestGetReceiptBalanceIdentity(t *testing.T) {
	student := testStudent()
	feeRepo := &fakeFeeRepo{entries: []entity.FeeEntry{
		ledgerEntry(student.ID, "R001", "June", 1000, floatPtr(250), 700, 0),
		ledgerEntry(student.ID, "R002", "July", 1100, floatPtr(50), 600, 1),
	}}
	svc := NewReceiptService(newFakeStudentRepo(student), feeRepo)

	receipt, err := svc.GetReceipt(context.Background(), student.ID, "R002")
	if err != nil {
		t.Fatalf("GetReceipt: %v", err)
	}

	want := receipt.MonthlyFee + receipt.OtherCharges + receipt.PreviousMonthDue - receipt.PaidAmount
	if !almostEqual(receipt.BalanceDue, want) {
		t.Errorf("BalanceDue = %v, want %v", receipt.BalanceDue, want)
	}
}

func TestGetReceiptMatchIsDeterministicAcrossInsertionOrder(t *testing.T) {
	student := testStudent()
	// Ledger written out of calendar order; resolution must still find the
	// receipt and carry the due from the calendar-previous month
	feeRepo := &fakeFeeRepo{entries: []entity.FeeEntry{
		ledgerEntry(student.ID, "R004", "April", 1000, nil, 0, 0),
		ledgerEntry(student.ID, "R002", "February", 1000, nil, 600, 1),
		ledgerEntry(student.ID, "R003", "March", 1000, nil, 1000, 2),
	}}
	svc := NewReceiptService(newFakeStudentRepo(student), feeRepo)

	receipt, err := svc.GetReceipt(context.Background(), student.ID, "R003")
	if err != nil {
		t.Fatalf("GetReceipt: %v", err)
	}

	if receipt.Month != "March" {
		t.Errorf("Month = %q, want March", receipt.Month)
	}
	if !almostEqual(receipt.PreviousMonthDue, 400) {
		t.Errorf("PreviousMonthDue = %v, want 400", receipt.PreviousMonthDue)
	}
}

func TestGetReceiptUnknownReceipt(t *testing.T) {
	student := testStudent()
	feeRepo := &fakeFeeRepo{entries: []entity.FeeEntry{
		ledgerEntry(student.ID, "R001", "January", 1000, nil, 0, 0),
	}}
	svc := NewReceiptService(newFakeStudentRepo(student), feeRepo)

	_, err := svc.GetReceipt(context.Background(), student.ID, "R999")
	if code := statusCode(t, err); code != 404 {
		t.Errorf("status = %d, want 404", code)
	}
}

func TestGetReceiptUnknownStudent(t *testing.T) {
	feeRepo := &fakeFeeRepo{}
	svc := NewReceiptService(newFakeStudentRepo(), feeRepo)

	_, err := svc.GetReceipt(context.Background(), uuid.New(), "R001")
	if code := statusCode(t, err); code != 404 {
		t.Errorf("status = %d, want 404", code)
	}
	if feeRepo.getLedgerCalls != 0 {
		t.Errorf("ledger read %d times for unknown student, want 0", feeRepo.getLedgerCalls)
	}
}

func TestGetReceiptMissingInputsSkipStore(t *testing.T) {
	student := testStudent()
	studentRepo := newFakeStudentRepo(student)
	feeRepo := &fakeFeeRepo{}
	svc := NewReceiptService(studentRepo, feeRepo)

	tests := []struct {
		name      string
		studentID uuid.UUID
		receiptNo string
	}{
		{"nil student ID", uuid.Nil, "R001"},
		{"blank receipt no", student.ID, "   "},
		{"both missing", uuid.Nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetReceipt(context.Background(), tt.studentID, tt.receiptNo)
			if code := statusCode(t, err); code != 400 {
				t.Errorf("status = %d, want 400", code)
			}
		})
	}

	if studentRepo.getByIDCalls != 0 || feeRepo.getLedgerCalls != 0 {
		t.Errorf("store accessed on invalid input: student reads %d, ledger reads %d",
			studentRepo.getByIDCalls, feeRepo.getLedgerCalls)
	}
}

func TestGetReceiptFallsBackOnMissingStudentFields(t *testing.T) {
	student := &entity.Student{
		ID:        uuid.New(),
		FirstName: "Neema",
		LastName:  "Wairimu",
	}
	feeRepo := &fakeFeeRepo{entries: []entity.FeeEntry{
		ledgerEntry(student.ID, "R001", "August", 800, nil, 800, 0),
	}}
	svc := NewReceiptService(newFakeStudentRepo(student), feeRepo)

	receipt, err := svc.GetReceipt(context.Background(), student.ID, "R001")
	if err != nil {
		t.Fatalf("GetReceipt: %v", err)
	}

	if receipt.ClassName != "N/A" || receipt.RollNo != "N/A" || receipt.Address != "N/A" {
		t.Errorf("missing fields not defaulted: class %q roll %q address %q",
			receipt.ClassName, receipt.RollNo, receipt.Address)
	}
	if receipt.StudentName != "Neema Wairimu" {
		t.Errorf("StudentName = %q, want Neema Wairimu", receipt.StudentName)
	}
}

func TestGetReceiptReadsLedgerOnce(t *testing.T) {
	student := testStudent()
	feeRepo := &fakeFeeRepo{entries: []entity.FeeEntry{
		ledgerEntry(student.ID, "R001", "January", 1000, nil, 500, 0),
		ledgerEntry(student.ID, "R002", "February", 1000, nil, 0, 1),
	}}
	svc := NewReceiptService(newFakeStudentRepo(student), feeRepo)

	if _, err := svc.GetReceipt(context.Background(), student.ID, "R002"); err != nil {
		t.Fatalf("GetReceipt: %v", err)
	}
	if feeRepo.getLedgerCalls != 1 {
		t.Errorf("ledger read %d times, want 1", feeRepo.getLedgerCalls)
	}
}
