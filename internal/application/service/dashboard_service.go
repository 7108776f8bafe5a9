package service

import (
	"context"
	"time"

	"github.com/wanjiku/elimu-api/internal/domain/entity"
	"github.com/wanjiku/elimu-api/internal/domain/enum"
	"github.com/wanjiku/elimu-api/internal/domain/repository"
)

// DashboardStats aggregates the figures shown on role dashboards
type DashboardStats struct {
	TotalStudents   int64                `json:"total_students"`
	FeeStats        *repository.FeeStats `json:"fee_stats"`
	OutstandingFees float64              `json:"outstanding_fees"`
	PresentToday    int64                `json:"present_today"`
	AbsentToday     int64                `json:"absent_today"`
	UpcomingClasses []entity.LiveClass   `json:"upcoming_classes"`
	RecentNotices   []entity.Notice      `json:"recent_notices"`
}

// DashboardService builds dashboard aggregates from the individual stores
type DashboardService struct {
	studentRepo    repository.StudentRepository
	feeRepo        repository.FeeRepository
	attendanceRepo repository.AttendanceRepository
	liveClassRepo  repository.LiveClassRepository
	noticeRepo     repository.NoticeRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	studentRepo repository.StudentRepository,
	feeRepo repository.FeeRepository,
	attendanceRepo repository.AttendanceRepository,
	liveClassRepo repository.LiveClassRepository,
	noticeRepo repository.NoticeRepository,
) *DashboardService {
	return &DashboardService{
		studentRepo:    studentRepo,
		feeRepo:        feeRepo,
		attendanceRepo: attendanceRepo,
		liveClassRepo:  liveClassRepo,
		noticeRepo:     noticeRepo,
	}
}

// GetStats builds the dashboard snapshot. className scopes the upcoming
// classes list for student dashboards; empty means school-wide.
func (s *DashboardService) GetStats(ctx context.Context, className string) (*DashboardStats, error) {
	totalStudents, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	feeStats, err := s.feeRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	presentToday, err := s.attendanceRepo.CountByDateAndStatus(ctx, today, string(enum.AttendancePresent))
	if err != nil {
		return nil, err
	}
	absentToday, err := s.attendanceRepo.CountByDateAndStatus(ctx, today, string(enum.AttendanceAbsent))
	if err != nil {
		return nil, err
	}

	upcoming, err := s.liveClassRepo.ListUpcoming(ctx, now, className, 5)
	if err != nil {
		return nil, err
	}

	notices, err := s.noticeRepo.ListRecent(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalStudents:   totalStudents,
		FeeStats:        feeStats,
		OutstandingFees: feeStats.TotalCharged - feeStats.TotalCollected,
		PresentToday:    presentToday,
		AbsentToday:     absentToday,
		UpcomingClasses: upcoming,
		RecentNotices:   notices,
	}, nil
}
