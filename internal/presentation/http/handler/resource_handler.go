package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wanjiku/elimu-api/internal/application/service"
	"github.com/wanjiku/elimu-api/internal/presentation/http/dto/request"
	"github.com/wanjiku/elimu-api/internal/presentation/http/dto/response"
	"github.com/wanjiku/elimu-api/pkg/pagination"
)

// ResourceHandler handles study resource HTTP requests
type ResourceHandler struct {
	resourceService *service.ResourceService
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler(resourceService *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceService: resourceService}
}

// Create handles sharing a new study resource
// @Summary Create Resource
// @Description Share a new study resource link
// @Tags resources
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateResourceRequest true "Resource data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /resources [post]
func (h *ResourceHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resource, err := h.resourceService.CreateResource(c.Request.Context(), &service.CreateResourceInput{
		UploadedBy:  *userID,
		Title:       req.Title,
		Subject:     req.Subject,
		ClassName:   req.ClassName,
		URL:         req.URL,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Resource shared successfully", gin.H{
		"resource": resource,
	})
}

// List handles listing study resources
// @Summary List Resources
// @Description Get a paginated list of study resources
// @Tags resources
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Param class_name query string false "Filter by class"
// @Param subject query string false "Filter by subject"
// @Success 200 {object} response.APIResponse
// @Router /resources [get]
func (h *ResourceHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.resourceService.ListResources(c.Request.Context(), params, c.Query("class_name"), c.Query("subject"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Resources retrieved successfully", result)
}

// Get handles getting a single study resource
// @Summary Get Resource
// @Description Get a study resource by ID
// @Tags resources
// @Security BearerAuth
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /resources/{id} [get]
func (h *ResourceHandler) Get(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid resource ID")
		return
	}

	resource, err := h.resourceService.GetResource(c.Request.Context(), resourceID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Resource retrieved successfully", gin.H{
		"resource": resource,
	})
}

// Update handles editing a study resource
// @Summary Update Resource
// @Description Edit a study resource
// @Tags resources
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Param request body request.UpdateResourceRequest true "Fields to update"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /resources/{id} [put]
func (h *ResourceHandler) Update(c *gin.Context) {
	actorID := GetUserID(c)
	if actorID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid resource ID")
		return
	}

	var req request.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resource, err := h.resourceService.UpdateResource(c.Request.Context(), &service.UpdateResourceInput{
		ID:          resourceID,
		ActorID:     *actorID,
		IsAdmin:     IsAdmin(c),
		Title:       req.Title,
		Subject:     req.Subject,
		ClassName:   req.ClassName,
		URL:         req.URL,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Resource updated successfully", gin.H{
		"resource": resource,
	})
}

// Delete handles removing a study resource
// @Summary Delete Resource
// @Description Remove a study resource
// @Tags resources
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /resources/{id} [delete]
func (h *ResourceHandler) Delete(c *gin.Context) {
	actorID := GetUserID(c)
	if actorID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid resource ID")
		return
	}

	if err := h.resourceService.DeleteResource(c.Request.Context(), *actorID, resourceID, IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Resource deleted successfully", nil)
}
