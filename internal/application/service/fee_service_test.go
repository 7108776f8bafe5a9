package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/wanjiku/elimu-api/internal/domain/entity"
)

func TestRecordFeeRejectsInvalidMonth(t *testing.T) {
	student := testStudent()
	svc := NewFeeService(&fakeFeeRepo{}, newFakeStudentRepo(student))

	_, err := svc.RecordFee(context.Background(), &RecordFeeInput{
		StudentID:  student.ID,
		Month:      "Januar",
		MonthlyFee: 1000,
	})
	if code := statusCode(t, err); code != 400 {
		t.Errorf("status = %d, want 400", code)
	}
}

func TestRecordFeeRejectsNegativeAmounts(t *testing.T) {
	student := testStudent()
	svc := NewFeeService(&fakeFeeRepo{}, newFakeStudentRepo(student))

	tests := []struct {
		name  string
		input RecordFeeInput
	}{
		{"negative monthly fee", RecordFeeInput{StudentID: student.ID, Month: "January", MonthlyFee: -1}},
		{"negative paid amount", RecordFeeInput{StudentID: student.ID, Month: "January", MonthlyFee: 1000, PaidAmount: -50}},
		{"negative other charges", RecordFeeInput{StudentID: student.ID, Month: "January", MonthlyFee: 1000, OtherCharges: floatPtr(-10)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RecordFee(context.Background(), &tt.input)
			if code := statusCode(t, err); code != 400 {
				t.Errorf("status = %d, want 400", code)
			}
		})
	}
}

func TestRecordFeeUnknownStudent(t *testing.T) {
	svc := NewFeeService(&fakeFeeRepo{}, newFakeStudentRepo())

	_, err := svc.RecordFee(context.Background(), &RecordFeeInput{
		StudentID:  uuid.New(),
		Month:      "March",
		MonthlyFee: 1000,
	})
	if code := statusCode(t, err); code != 404 {
		t.Errorf("status = %d, want 404", code)
	}
}

func TestRecordFeeRejectsDuplicateReceiptForStudent(t *testing.T) {
	student := testStudent()
	feeRepo := &fakeFeeRepo{entries: []entity.FeeEntry{
		ledgerEntry(student.ID, "R001", "January", 1000, nil, 0, 0),
	}}
	svc := NewFeeService(feeRepo, newFakeStudentRepo(student))

	_, err := svc.RecordFee(context.Background(), &RecordFeeInput{
		StudentID:  student.ID,
		ReceiptNo:  "R001",
		Month:      "February",
		MonthlyFee: 1000,
	})
	if code := statusCode(t, err); code != 409 {
		t.Errorf("status = %d, want 409", code)
	}
}

func TestRecordFeeAllowsSameReceiptForDifferentStudents(t *testing.T) {
	first := testStudent()
	second := testStudent()
	feeRepo := &fakeFeeRepo{entries: []entity.FeeEntry{
		ledgerEntry(first.ID, "R001", "January", 1000, nil, 0, 0),
	}}
	svc := NewFeeService(feeRepo, newFakeStudentRepo(first, second))

	entry, err := svc.RecordFee(context.Background(), &RecordFeeInput{
		StudentID:  second.ID,
		ReceiptNo:  "R001",
		Month:      "January",
		MonthlyFee: 1000,
	})
	if err != nil {
		t.Fatalf("RecordFee: %v", err)
	}
	if entry.ReceiptNo != "R001" {
		t.Errorf("ReceiptNo = %q, want R001", entry.ReceiptNo)
	}
}

func TestRecordFeeGeneratesReceiptNoWhenBlank(t *testing.T) {
	student := testStudent()
	svc := NewFeeService(&fakeFeeRepo{}, newFakeStudentRepo(student))

	entry, err := svc.RecordFee(context.Background(), &RecordFeeInput{
		StudentID:  student.ID,
		Month:      "April",
		MonthlyFee: 1200,
		PaidAmount: 1200,
	})
	if err != nil {
		t.Fatalf("RecordFee: %v", err)
	}

	if !strings.HasPrefix(entry.ReceiptNo, "RCT-") {
		t.Errorf("ReceiptNo = %q, want RCT- prefix", entry.ReceiptNo)
	}
	if len(entry.ReceiptNo) != 12 {
		t.Errorf("len(ReceiptNo) = %d, want 12", len(entry.ReceiptNo))
	}
}

func TestRecordPaymentValidation(t *testing.T) {
	student := testStudent()
	feeRepo := &fakeFeeRepo{entries: []entity.FeeEntry{
		ledgerEntry(student.ID, "R001", "January", 1000, nil, 200, 0),
	}}
	svc := NewFeeService(feeRepo, newFakeStudentRepo(student))

	if _, err := svc.RecordPayment(context.Background(), student.ID, "R001", 0); err == nil {
		t.Error("zero amount accepted, want 400")
	} else if code := statusCode(t, err); code != 400 {
		t.Errorf("zero amount: status = %d, want 400", code)
	}

	if _, err := svc.RecordPayment(context.Background(), student.ID, "R999", 100); err == nil {
		t.Error("unknown receipt accepted, want 404")
	} else if code := statusCode(t, err); code != 404 {
		t.Errorf("unknown receipt: status = %d, want 404", code)
	}
}

func TestRecordPaymentAccumulates(t *testing.T) {
	student := testStudent()
	feeRepo := &fakeFeeRepo{entries: []entity.FeeEntry{
		ledgerEntry(student.ID, "R001", "January", 1000, nil, 200, 0),
	}}
	svc := NewFeeService(feeRepo, newFakeStudentRepo(student))

	entry, err := svc.RecordPayment(context.Background(), student.ID, "R001", 300)
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if !almostEqual(entry.PaidAmount, 500) {
		t.Errorf("PaidAmount = %v, want 500", entry.PaidAmount)
	}

	// The update must be visible on subsequent reads
	stored, err := feeRepo.GetEntryByReceiptNo(context.Background(), student.ID, "R001")
	if err != nil {
		t.Fatalf("GetEntryByReceiptNo: %v", err)
	}
	if !almostEqual(stored.PaidAmount, 500) {
		t.Errorf("stored PaidAmount = %v, want 500", stored.PaidAmount)
	}
}

func TestGetLedgerUnknownStudent(t *testing.T) {
	svc := NewFeeService(&fakeFeeRepo{}, newFakeStudentRepo())

	_, err := svc.GetLedger(context.Background(), uuid.New())
	if code := statusCode(t, err); code != 404 {
		t.Errorf("status = %d, want 404", code)
	}
}

func TestGetLedgerPreservesInsertionOrder(t *testing.T) {
	student := testStudent()
	feeRepo := &fakeFeeRepo{entries: []entity.FeeEntry{
		ledgerEntry(student.ID, "R002", "February", 1000, nil, 0, 0),
		ledgerEntry(student.ID, "R001", "January", 1000, nil, 0, 1),
	}}
	svc := NewFeeService(feeRepo, newFakeStudentRepo(student))

	ledger, err := svc.GetLedger(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("GetLedger: %v", err)
	}
	if len(ledger) != 2 {
		t.Fatalf("len(ledger) = %d, want 2", len(ledger))
	}
	if ledger[0].ReceiptNo != "R002" || ledger[1].ReceiptNo != "R001" {
		t.Errorf("ledger order = [%s %s], want [R002 R001]", ledger[0].ReceiptNo, ledger[1].ReceiptNo)
	}
}

func TestGetStatsAggregates(t *testing.T) {
	student := testStudent()
	feeRepo := &fakeFeeRepo{entries: []entity.FeeEntry{
		ledgerEntry(student.ID, "R001", "January", 1000, floatPtr(100), 800, 0),
		ledgerEntry(student.ID, "R002", "February", 1000, nil, 500, 1),
	}}
	svc := NewFeeService(feeRepo, newFakeStudentRepo(student))

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.TotalEntries != 2 {
		t.Errorf("TotalEntries = %d, want 2", stats.TotalEntries)
	}
	if !almostEqual(stats.TotalCharged, 2100) {
		t.Errorf("TotalCharged = %v, want 2100", stats.TotalCharged)
	}
	if !almostEqual(stats.TotalCollected, 1300) {
		t.Errorf("TotalCollected = %v, want 1300", stats.TotalCollected)
	}
}
