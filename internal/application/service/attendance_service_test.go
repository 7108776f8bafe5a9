package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wanjiku/elimu-api/internal/domain/enum"
)

func TestMarkAttendanceRejectsInvalidStatus(t *testing.T) {
	student := testStudent()
	svc := NewAttendanceService(&fakeAttendanceRepo{}, newFakeStudentRepo(student))

	_, err := svc.MarkAttendance(context.Background(), &MarkAttendanceInput{
		StudentID: student.ID,
		Date:      time.Now(),
		Status:    enum.AttendanceStatus("sick"),
		MarkedBy:  uuid.New(),
	})
	if code := statusCode(t, err); code != 400 {
		t.Errorf("status = %d, want 400", code)
	}
}

func TestMarkAttendanceRejectsFutureDate(t *testing.T) {
	student := testStudent()
	svc := NewAttendanceService(&fakeAttendanceRepo{}, newFakeStudentRepo(student))

	_, err := svc.MarkAttendance(context.Background(), &MarkAttendanceInput{
		StudentID: student.ID,
		Date:      time.Now().AddDate(0, 0, 2),
		Status:    enum.AttendancePresent,
		MarkedBy:  uuid.New(),
	})
	if code := statusCode(t, err); code != 400 {
		t.Errorf("status = %d, want 400", code)
	}
}

func TestMarkAttendanceUnknownStudent(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{}, newFakeStudentRepo())

	_, err := svc.MarkAttendance(context.Background(), &MarkAttendanceInput{
		StudentID: uuid.New(),
		Date:      time.Now(),
		Status:    enum.AttendancePresent,
		MarkedBy:  uuid.New(),
	})
	if code := statusCode(t, err); code != 404 {
		t.Errorf("status = %d, want 404", code)
	}
}

func TestMarkAttendanceRemarkUpdatesExisting(t *testing.T) {
	student := testStudent()
	attendanceRepo := &fakeAttendanceRepo{}
	svc := NewAttendanceService(attendanceRepo, newFakeStudentRepo(student))
	markedBy := uuid.New()
	day := time.Now()

	first, err := svc.MarkAttendance(context.Background(), &MarkAttendanceInput{
		StudentID: student.ID,
		Date:      day,
		Status:    enum.AttendanceAbsent,
		MarkedBy:  markedBy,
	})
	if err != nil {
		t.Fatalf("first mark: %v", err)
	}

	second, err := svc.MarkAttendance(context.Background(), &MarkAttendanceInput{
		StudentID: student.ID,
		Date:      day,
		Status:    enum.AttendancePresent,
		MarkedBy:  markedBy,
	})
	if err != nil {
		t.Fatalf("second mark: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("re-mark created a new record: %s vs %s", second.ID, first.ID)
	}
	if len(attendanceRepo.records) != 1 {
		t.Fatalf("records = %d, want 1", len(attendanceRepo.records))
	}
	if attendanceRepo.records[0].Status != enum.AttendancePresent {
		t.Errorf("status = %q, want present", attendanceRepo.records[0].Status)
	}
}

func TestMarkClassAttendanceFailsFastOnInvalidStatus(t *testing.T) {
	student := testStudent()
	attendanceRepo := &fakeAttendanceRepo{}
	svc := NewAttendanceService(attendanceRepo, newFakeStudentRepo(student))

	marks := []BulkMark{
		{StudentID: student.ID, Status: enum.AttendancePresent},
		{StudentID: uuid.New(), Status: enum.AttendanceStatus("holiday")},
	}
	_, err := svc.MarkClassAttendance(context.Background(), time.Now(), marks, uuid.New())
	if code := statusCode(t, err); code != 400 {
		t.Errorf("status = %d, want 400", code)
	}
	if len(attendanceRepo.records) != 0 {
		t.Errorf("records written before validation: %d", len(attendanceRepo.records))
	}
}

func TestMarkClassAttendanceRejectsEmpty(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{}, newFakeStudentRepo())

	_, err := svc.MarkClassAttendance(context.Background(), time.Now(), nil, uuid.New())
	if code := statusCode(t, err); code != 400 {
		t.Errorf("status = %d, want 400", code)
	}
}

func TestMarkClassAttendanceWritesAll(t *testing.T) {
	attendanceRepo := &fakeAttendanceRepo{}
	svc := NewAttendanceService(attendanceRepo, newFakeStudentRepo())

	marks := []BulkMark{
		{StudentID: uuid.New(), Status: enum.AttendancePresent},
		{StudentID: uuid.New(), Status: enum.AttendanceLate},
		{StudentID: uuid.New(), Status: enum.AttendanceAbsent},
	}
	records, err := svc.MarkClassAttendance(context.Background(), time.Now(), marks, uuid.New())
	if err != nil {
		t.Fatalf("MarkClassAttendance: %v", err)
	}
	if len(records) != 3 || len(attendanceRepo.records) != 3 {
		t.Errorf("returned %d, stored %d, want 3 each", len(records), len(attendanceRepo.records))
	}
}

func TestGetMonthlySummary(t *testing.T) {
	student := testStudent()
	attendanceRepo := &fakeAttendanceRepo{}
	svc := NewAttendanceService(attendanceRepo, newFakeStudentRepo(student))
	markedBy := uuid.New()

	days := []struct {
		day    int
		status enum.AttendanceStatus
	}{
		{2, enum.AttendancePresent},
		{3, enum.AttendancePresent},
		{4, enum.AttendanceLate},
		{5, enum.AttendanceAbsent},
	}
	for _, d := range days {
		_, err := svc.MarkAttendance(context.Background(), &MarkAttendanceInput{
			StudentID: student.ID,
			Date:      time.Date(2025, time.June, d.day, 0, 0, 0, 0, time.UTC),
			Status:    d.status,
			MarkedBy:  markedBy,
		})
		if err != nil {
			t.Fatalf("mark day %d: %v", d.day, err)
		}
	}

	summary, err := svc.GetMonthlySummary(context.Background(), student.ID, 2025, "June")
	if err != nil {
		t.Fatalf("GetMonthlySummary: %v", err)
	}
	if summary.Present != 2 || summary.Late != 1 || summary.Absent != 1 {
		t.Errorf("summary = present %d late %d absent %d, want 2/1/1",
			summary.Present, summary.Late, summary.Absent)
	}
}

func TestGetMonthlySummaryInvalidMonth(t *testing.T) {
	student := testStudent()
	svc := NewAttendanceService(&fakeAttendanceRepo{}, newFakeStudentRepo(student))

	_, err := svc.GetMonthlySummary(context.Background(), student.ID, 2025, "Juneish")
	if code := statusCode(t, err); code != 400 {
		t.Errorf("status = %d, want 400", code)
	}
}
