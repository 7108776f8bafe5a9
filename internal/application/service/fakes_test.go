package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wanjiku/elimu-api/internal/domain/entity"
	"github.com/wanjiku/elimu-api/internal/domain/repository"
	"github.com/wanjiku/elimu-api/pkg/pagination"
)

// fakeStudentRepo is an in-memory StudentRepository for service tests
type fakeStudentRepo struct {
	students     map[uuid.UUID]*entity.Student
	getByIDCalls int
}

func newFakeStudentRepo(students ...*entity.Student) *fakeStudentRepo {
	repo := &fakeStudentRepo{students: make(map[uuid.UUID]*entity.Student)}
	for _, s := range students {
		repo.students[s.ID] = s
	}
	return repo
}

func (r *fakeStudentRepo) Create(ctx context.Context, student *entity.Student) error {
	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}
	r.students[student.ID] = student
	return nil
}

func (r *fakeStudentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	r.getByIDCalls++
	return r.students[id], nil
}

func (r *fakeStudentRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Student, error) {
	for _, s := range r.students {
		if s.UserID != nil && *s.UserID == userID {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeStudentRepo) Update(ctx context.Context, student *entity.Student) error {
	r.students[student.ID] = student
	return nil
}

func (r *fakeStudentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.students, id)
	return nil
}

func (r *fakeStudentRepo) List(ctx context.Context, params *pagination.PaginationParams, className, search string) ([]entity.Student, int64, error) {
	var students []entity.Student
	for _, s := range r.students {
		students = append(students, *s)
	}
	return students, int64(len(students)), nil
}

func (r *fakeStudentRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.students)), nil
}

// fakeFeeRepo is an in-memory FeeRepository that preserves insertion order
type fakeFeeRepo struct {
	entries        []entity.FeeEntry
	getLedgerCalls int
}

func (r *fakeFeeRepo) CreateEntry(ctx context.Context, entry *entity.FeeEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	now := time.Now()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	if entry.UpdatedAt.IsZero() {
		entry.UpdatedAt = now
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeFeeRepo) GetEntryByReceiptNo(ctx context.Context, studentID uuid.UUID, receiptNo string) (*entity.FeeEntry, error) {
	for i := range r.entries {
		if r.entries[i].StudentID == studentID && r.entries[i].ReceiptNo == receiptNo {
			entry := r.entries[i]
			return &entry, nil
		}
	}
	return nil, nil
}

func (r *fakeFeeRepo) GetLedger(ctx context.Context, studentID uuid.UUID) ([]entity.FeeEntry, error) {
	r.getLedgerCalls++
	var ledger []entity.FeeEntry
	for _, e := range r.entries {
		if e.StudentID == studentID {
			ledger = append(ledger, e)
		}
	}
	return ledger, nil
}

func (r *fakeFeeRepo) UpdateEntry(ctx context.Context, entry *entity.FeeEntry) error {
	for i := range r.entries {
		if r.entries[i].ID == entry.ID {
			r.entries[i] = *entry
			return nil
		}
	}
	return nil
}

func (r *fakeFeeRepo) Stats(ctx context.Context) (*repository.FeeStats, error) {
	stats := &repository.FeeStats{}
	for _, e := range r.entries {
		stats.TotalEntries++
		stats.TotalCharged += e.Charged()
		stats.TotalCollected += e.PaidAmount
	}
	return stats, nil
}

// fakeAttendanceRepo is an in-memory AttendanceRepository
type fakeAttendanceRepo struct {
	records []entity.AttendanceRecord
}

func (r *fakeAttendanceRepo) Upsert(ctx context.Context, record *entity.AttendanceRecord) error {
	for i := range r.records {
		if r.records[i].StudentID == record.StudentID && r.records[i].Date.Equal(record.Date) {
			r.records[i].Status = record.Status
			r.records[i].MarkedBy = record.MarkedBy
			record.ID = r.records[i].ID
			return nil
		}
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	r.records = append(r.records, *record)
	return nil
}

func (r *fakeAttendanceRepo) GetByStudentAndDate(ctx context.Context, studentID uuid.UUID, date time.Time) (*entity.AttendanceRecord, error) {
	for i := range r.records {
		if r.records[i].StudentID == studentID && r.records[i].Date.Equal(date) {
			record := r.records[i]
			return &record, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) ListByStudent(ctx context.Context, studentID uuid.UUID, from, to time.Time) ([]entity.AttendanceRecord, error) {
	var records []entity.AttendanceRecord
	for _, rec := range r.records {
		if rec.StudentID == studentID && !rec.Date.Before(from) && !rec.Date.After(to) {
			records = append(records, rec)
		}
	}
	return records, nil
}

func (r *fakeAttendanceRepo) ListByClassAndDate(ctx context.Context, className string, date time.Time) ([]entity.AttendanceRecord, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) Summary(ctx context.Context, studentID uuid.UUID, from, to time.Time) (*repository.AttendanceSummary, error) {
	summary := &repository.AttendanceSummary{}
	for _, rec := range r.records {
		if rec.StudentID != studentID || rec.Date.Before(from) || rec.Date.After(to) {
			continue
		}
		switch rec.Status {
		case "present":
			summary.Present++
		case "absent":
			summary.Absent++
		case "late":
			summary.Late++
		}
	}
	return summary, nil
}

func (r *fakeAttendanceRepo) CountByDateAndStatus(ctx context.Context, date time.Time, status string) (int64, error) {
	var total int64
	for _, rec := range r.records {
		if rec.Date.Equal(date) && string(rec.Status) == status {
			total++
		}
	}
	return total, nil
}
