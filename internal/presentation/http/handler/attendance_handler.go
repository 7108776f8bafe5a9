package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wanjiku/elimu-api/internal/application/service"
	"github.com/wanjiku/elimu-api/internal/domain/enum"
	"github.com/wanjiku/elimu-api/internal/presentation/http/dto/request"
	"github.com/wanjiku/elimu-api/internal/presentation/http/dto/response"
)

const dateLayout = "2006-01-02"

// AttendanceHandler handles attendance HTTP requests
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// Mark handles marking one student's attendance
// @Summary Mark Attendance
// @Description Mark one student's attendance for a day
// @Tags attendance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.MarkAttendanceRequest true "Attendance data"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /attendance [post]
func (h *AttendanceHandler) Mark(c *gin.Context) {
	markedBy := GetUserID(c)
	if markedBy == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		response.BadRequest(c, "Invalid student ID")
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	record, err := h.attendanceService.MarkAttendance(c.Request.Context(), &service.MarkAttendanceInput{
		StudentID: studentID,
		Date:      date,
		Status:    enum.AttendanceStatus(req.Status),
		MarkedBy:  *markedBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Attendance marked successfully", gin.H{
		"record": record,
	})
}

// MarkClass handles marking a whole class in one call
// @Summary Mark Class Attendance
// @Description Mark attendance for several students of a class at once
// @Tags attendance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.MarkClassAttendanceRequest true "Bulk attendance data"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /attendance/bulk [post]
func (h *AttendanceHandler) MarkClass(c *gin.Context) {
	markedBy := GetUserID(c)
	if markedBy == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.MarkClassAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	marks := make([]service.BulkMark, 0, len(req.Marks))
	for _, m := range req.Marks {
		studentID, err := uuid.Parse(m.StudentID)
		if err != nil {
			response.BadRequest(c, "Invalid student ID: "+m.StudentID)
			return
		}
		marks = append(marks, service.BulkMark{
			StudentID: studentID,
			Status:    enum.AttendanceStatus(m.Status),
		})
	}

	records, err := h.attendanceService.MarkClassAttendance(c.Request.Context(), date, marks, *markedBy)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Attendance marked successfully", gin.H{
		"records": records,
	})
}

// GetStudent handles fetching one student's attendance over a date range
// @Summary Student Attendance
// @Description Get a student's attendance records within a date range
// @Tags attendance
// @Security BearerAuth
// @Produce json
// @Param id path string true "Student ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /attendance/students/{id} [get]
func (h *AttendanceHandler) GetStudent(c *gin.Context) {
	studentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid student ID")
		return
	}

	from, err := time.Parse(dateLayout, c.Query("from"))
	if err != nil {
		response.BadRequest(c, "Invalid from date, expected YYYY-MM-DD")
		return
	}
	to, err := time.Parse(dateLayout, c.Query("to"))
	if err != nil {
		response.BadRequest(c, "Invalid to date, expected YYYY-MM-DD")
		return
	}

	records, err := h.attendanceService.GetStudentAttendance(c.Request.Context(), studentID, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Attendance retrieved successfully", gin.H{
		"records": records,
	})
}

// GetClass handles fetching all records for a class on a given day
// @Summary Class Attendance
// @Description Get all attendance records for a class on one day
// @Tags attendance
// @Security BearerAuth
// @Produce json
// @Param class_name query string true "Class name"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Router /attendance [get]
func (h *AttendanceHandler) GetClass(c *gin.Context) {
	className := c.Query("class_name")
	if className == "" {
		response.BadRequest(c, "Class name is required")
		return
	}

	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	records, err := h.attendanceService.GetClassAttendance(c.Request.Context(), className, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Attendance retrieved successfully", gin.H{
		"records": records,
	})
}

// GetMonthlySummary handles fetching one student's monthly attendance summary
// @Summary Monthly Attendance Summary
// @Description Get a student's present/absent/late counts for one month
// @Tags attendance
// @Security BearerAuth
// @Produce json
// @Param id path string true "Student ID"
// @Param year query int true "Year"
// @Param month query string true "Month name, e.g. March"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /attendance/students/{id}/summary [get]
func (h *AttendanceHandler) GetMonthlySummary(c *gin.Context) {
	studentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid student ID")
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 {
		response.BadRequest(c, "Invalid year")
		return
	}

	summary, err := h.attendanceService.GetMonthlySummary(c.Request.Context(), studentID, year, c.Query("month"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Attendance summary retrieved successfully", summary)
}
