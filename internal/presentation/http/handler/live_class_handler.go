package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wanjiku/elimu-api/internal/application/service"
	"github.com/wanjiku/elimu-api/internal/domain/enum"
	"github.com/wanjiku/elimu-api/internal/presentation/http/dto/request"
	"github.com/wanjiku/elimu-api/internal/presentation/http/dto/response"
	"github.com/wanjiku/elimu-api/pkg/pagination"
)

// LiveClassHandler handles live class HTTP requests
type LiveClassHandler struct {
	liveClassService *service.LiveClassService
}

// NewLiveClassHandler creates a new live class handler
func NewLiveClassHandler(liveClassService *service.LiveClassService) *LiveClassHandler {
	return &LiveClassHandler{liveClassService: liveClassService}
}

// Schedule handles scheduling a new live class
// @Summary Schedule Class
// @Description Schedule a new live class session
// @Tags classes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.ScheduleClassRequest true "Class data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /classes [post]
func (h *LiveClassHandler) Schedule(c *gin.Context) {
	teacherID := GetUserID(c)
	if teacherID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.ScheduleClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	class, err := h.liveClassService.ScheduleClass(c.Request.Context(), &service.ScheduleClassInput{
		TeacherID:       *teacherID,
		Title:           req.Title,
		Subject:         req.Subject,
		ClassName:       req.ClassName,
		MeetingURL:      req.MeetingURL,
		StartsAt:        req.StartsAt,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Class scheduled successfully", gin.H{
		"class": class,
	})
}

// List handles listing live classes
// @Summary List Classes
// @Description Get a paginated list of live classes
// @Tags classes
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Param class_name query string false "Filter by class"
// @Param mine query bool false "Only classes taught by the current user"
// @Success 200 {object} response.APIResponse
// @Router /classes [get]
func (h *LiveClassHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	var teacherID *uuid.UUID
	if c.Query("mine") == "true" {
		teacherID = GetUserID(c)
	}

	result, err := h.liveClassService.ListClasses(c.Request.Context(), params, c.Query("class_name"), teacherID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Classes retrieved successfully", result)
}

// Get handles getting a single live class
// @Summary Get Class
// @Description Get a live class by ID
// @Tags classes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /classes/{id} [get]
func (h *LiveClassHandler) Get(c *gin.Context) {
	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid class ID")
		return
	}

	class, err := h.liveClassService.GetClass(c.Request.Context(), classID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Class retrieved successfully", gin.H{
		"class": class,
	})
}

// Update handles updating a scheduled class
// @Summary Update Class
// @Description Update a scheduled live class
// @Tags classes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Class ID"
// @Param request body request.UpdateClassRequest true "Fields to update"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /classes/{id} [put]
func (h *LiveClassHandler) Update(c *gin.Context) {
	actorID := GetUserID(c)
	if actorID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid class ID")
		return
	}

	var req request.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateClassInput{
		ID:              classID,
		ActorID:         *actorID,
		IsAdmin:         IsAdmin(c),
		Title:           req.Title,
		Subject:         req.Subject,
		MeetingURL:      req.MeetingURL,
		StartsAt:        req.StartsAt,
		DurationMinutes: req.DurationMinutes,
	}
	if req.Status != nil {
		status := enum.LiveClassStatus(*req.Status)
		input.Status = &status
	}

	class, err := h.liveClassService.UpdateClass(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Class updated successfully", gin.H{
		"class": class,
	})
}

// Cancel handles cancelling a scheduled class
// @Summary Cancel Class
// @Description Cancel a scheduled live class
// @Tags classes
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /classes/{id} [delete]
func (h *LiveClassHandler) Cancel(c *gin.Context) {
	actorID := GetUserID(c)
	if actorID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid class ID")
		return
	}

	class, err := h.liveClassService.CancelClass(c.Request.Context(), *actorID, classID, IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Class cancelled successfully", gin.H{
		"class": class,
	})
}
