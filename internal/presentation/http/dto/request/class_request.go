package request

import "time"

// ScheduleClassRequest represents a live class scheduling request
type ScheduleClassRequest struct {
	Title           string    `json:"title" binding:"required,max=255"`
	Subject         string    `json:"subject" binding:"required,max=100"`
	ClassName       string    `json:"class_name" binding:"required"`
	MeetingURL      string    `json:"meeting_url" binding:"required,url"`
	StartsAt        time.Time `json:"starts_at" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"omitempty,gt=0"`
}

// UpdateClassRequest represents a partial live class update
type UpdateClassRequest struct {
	Title           *string    `json:"title"`
	Subject         *string    `json:"subject"`
	MeetingURL      *string    `json:"meeting_url" binding:"omitempty,url"`
	StartsAt        *time.Time `json:"starts_at"`
	DurationMinutes *int       `json:"duration_minutes" binding:"omitempty,gt=0"`
	Status          *string    `json:"status"`
}
