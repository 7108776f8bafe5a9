package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wanjiku/elimu-api/internal/application/service"
	"github.com/wanjiku/elimu-api/internal/domain/entity"
	"github.com/wanjiku/elimu-api/internal/domain/repository"
	"github.com/wanjiku/elimu-api/pkg/pagination"
)

type stubStudentRepo struct {
	student *entity.Student
}

func (r *stubStudentRepo) Create(ctx context.Context, student *entity.Student) error { return nil }

func (r *stubStudentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	if r.student != nil && r.student.ID == id {
		return r.student, nil
	}
	return nil, nil
}

func (r *stubStudentRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Student, error) {
	return nil, nil
}

func (r *stubStudentRepo) Update(ctx context.Context, student *entity.Student) error { return nil }

func (r *stubStudentRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *stubStudentRepo) List(ctx context.Context, params *pagination.PaginationParams, className, search string) ([]entity.Student, int64, error) {
	return nil, 0, nil
}

func (r *stubStudentRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

type stubFeeRepo struct {
	entries []entity.FeeEntry
}

func (r *stubFeeRepo) CreateEntry(ctx context.Context, entry *entity.FeeEntry) error { return nil }

func (r *stubFeeRepo) GetEntryByReceiptNo(ctx context.Context, studentID uuid.UUID, receiptNo string) (*entity.FeeEntry, error) {
	for i := range r.entries {
		if r.entries[i].StudentID == studentID && r.entries[i].ReceiptNo == receiptNo {
			entry := r.entries[i]
			return &entry, nil
		}
	}
	return nil, nil
}

func (r *stubFeeRepo) GetLedger(ctx context.Context, studentID uuid.UUID) ([]entity.FeeEntry, error) {
	var ledger []entity.FeeEntry
	for _, e := range r.entries {
		if e.StudentID == studentID {
			ledger = append(ledger, e)
		}
	}
	return ledger, nil
}

func (r *stubFeeRepo) UpdateEntry(ctx context.Context, entry *entity.FeeEntry) error { return nil }

func (r *stubFeeRepo) Stats(ctx context.Context) (*repository.FeeStats, error) {
	return &repository.FeeStats{}, nil
}

func receiptRouter(studentRepo *stubStudentRepo, feeRepo *stubFeeRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	feeService := service.NewFeeService(feeRepo, studentRepo)
	receiptService := service.NewReceiptService(studentRepo, feeRepo)
	h := NewFeeHandler(feeService, receiptService)

	router := gin.New()
	router.POST("/fees/receipt", h.ResolveReceipt)
	return router
}

func postReceipt(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/fees/receipt", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope
}

func TestResolveReceiptMissingFields(t *testing.T) {
	router := receiptRouter(&stubStudentRepo{}, &stubFeeRepo{})

	tests := []struct {
		name string
		body map[string]string
	}{
		{"empty body", map[string]string{}},
		{"missing receipt no", map[string]string{"student_id": uuid.NewString()}},
		{"missing student id", map[string]string{"receipt_no": "R001"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postReceipt(t, router, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			envelope := decodeEnvelope(t, rec)
			if envelope["success"] != false {
				t.Errorf("success = %v, want false", envelope["success"])
			}
		})
	}
}

func TestResolveReceiptInvalidStudentID(t *testing.T) {
	router := receiptRouter(&stubStudentRepo{}, &stubFeeRepo{})

	rec := postReceipt(t, router, map[string]string{
		"student_id": "not-a-uuid",
		"receipt_no": "R001",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestResolveReceiptUnknownStudent(t *testing.T) {
	router := receiptRouter(&stubStudentRepo{}, &stubFeeRepo{})

	rec := postReceipt(t, router, map[string]string{
		"student_id": uuid.NewString(),
		"receipt_no": "R001",
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestResolveReceiptUnknownReceipt(t *testing.T) {
	student := &entity.Student{ID: uuid.New(), FirstName: "Zuri", LastName: "Kamau"}
	router := receiptRouter(&stubStudentRepo{student: student}, &stubFeeRepo{})

	rec := postReceipt(t, router, map[string]string{
		"student_id": student.ID.String(),
		"receipt_no": "R404",
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestResolveReceiptSuccess(t *testing.T) {
	other := 150.0
	student := &entity.Student{
		ID:         uuid.New(),
		FirstName:  "Zuri",
		LastName:   "Kamau",
		ClassName:  "Grade 4",
		RollNumber: "9",
	}
	feeRepo := &stubFeeRepo{entries: []entity.FeeEntry{
		{
			ID:         uuid.New(),
			StudentID:  student.ID,
			ReceiptNo:  "R001",
			Month:      "January",
			MonthlyFee: 1000,
			PaidAmount: 600,
		},
		{
			ID:           uuid.New(),
			StudentID:    student.ID,
			ReceiptNo:    "R002",
			Month:        "February",
			MonthlyFee:   1000,
			OtherCharges: &other,
			PaidAmount:   500,
		},
	}}
	router := receiptRouter(&stubStudentRepo{student: student}, feeRepo)

	rec := postReceipt(t, router, map[string]string{
		"student_id": student.ID.String(),
		"receipt_no": "R002",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	envelope := decodeEnvelope(t, rec)
	if envelope["success"] != true {
		t.Fatalf("success = %v, want true", envelope["success"])
	}

	data, ok := envelope["data"].(map[string]any)
	if !ok {
		t.Fatalf("data is %T, want object", envelope["data"])
	}
	if data["student_name"] != "Zuri Kamau" {
		t.Errorf("student_name = %v, want Zuri Kamau", data["student_name"])
	}
	if data["previous_month_due"] != 400.0 {
		t.Errorf("previous_month_due = %v, want 400", data["previous_month_due"])
	}
	if data["total"] != 1550.0 {
		t.Errorf("total = %v, want 1550", data["total"])
	}
	if data["balance_due"] != 1050.0 {
		t.Errorf("balance_due = %v, want 1050", data["balance_due"])
	}
	if data["address"] != "N/A" {
		t.Errorf("address = %v, want N/A", data["address"])
	}
}
