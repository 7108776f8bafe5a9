package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wanjiku/elimu-api/internal/application/service"
	"github.com/wanjiku/elimu-api/internal/presentation/http/dto/request"
	"github.com/wanjiku/elimu-api/internal/presentation/http/dto/response"
	"github.com/wanjiku/elimu-api/pkg/pagination"
)

// NoticeHandler handles notice board HTTP requests
type NoticeHandler struct {
	noticeService *service.NoticeService
}

// NewNoticeHandler creates a new notice handler
func NewNoticeHandler(noticeService *service.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeService: noticeService}
}

// Create handles posting a new notice
// @Summary Create Notice
// @Description Post a new notice, school-wide or scoped to one class
// @Tags notices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateNoticeRequest true "Notice data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /notices [post]
func (h *NoticeHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	notice, err := h.noticeService.CreateNotice(c.Request.Context(), &service.CreateNoticeInput{
		PostedBy:  *userID,
		Title:     req.Title,
		Body:      req.Body,
		ClassName: req.ClassName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Notice posted successfully", gin.H{
		"notice": notice,
	})
}

// List handles listing notices
// @Summary List Notices
// @Description Get a paginated list of notices
// @Tags notices
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Param class_name query string false "Filter to one class plus school-wide notices"
// @Success 200 {object} response.APIResponse
// @Router /notices [get]
func (h *NoticeHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.noticeService.ListNotices(c.Request.Context(), params, c.Query("class_name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Notices retrieved successfully", result)
}

// Get handles getting a single notice
// @Summary Get Notice
// @Description Get a notice by ID
// @Tags notices
// @Security BearerAuth
// @Produce json
// @Param id path string true "Notice ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /notices/{id} [get]
func (h *NoticeHandler) Get(c *gin.Context) {
	noticeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid notice ID")
		return
	}

	notice, err := h.noticeService.GetNotice(c.Request.Context(), noticeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Notice retrieved successfully", gin.H{
		"notice": notice,
	})
}

// Update handles editing a notice
// @Summary Update Notice
// @Description Edit a notice
// @Tags notices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Notice ID"
// @Param request body request.UpdateNoticeRequest true "Fields to update"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /notices/{id} [put]
func (h *NoticeHandler) Update(c *gin.Context) {
	actorID := GetUserID(c)
	if actorID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	noticeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid notice ID")
		return
	}

	var req request.UpdateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	notice, err := h.noticeService.UpdateNotice(c.Request.Context(), &service.UpdateNoticeInput{
		ID:        noticeID,
		ActorID:   *actorID,
		IsAdmin:   IsAdmin(c),
		Title:     req.Title,
		Body:      req.Body,
		ClassName: req.ClassName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Notice updated successfully", gin.H{
		"notice": notice,
	})
}

// Delete handles removing a notice
// @Summary Delete Notice
// @Description Remove a notice
// @Tags notices
// @Security BearerAuth
// @Param id path string true "Notice ID"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /notices/{id} [delete]
func (h *NoticeHandler) Delete(c *gin.Context) {
	actorID := GetUserID(c)
	if actorID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	noticeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid notice ID")
		return
	}

	if err := h.noticeService.DeleteNotice(c.Request.Context(), *actorID, noticeID, IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Notice deleted successfully", nil)
}
