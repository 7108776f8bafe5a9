package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/wanjiku/elimu-api/internal/application/service"
	"github.com/wanjiku/elimu-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats handles fetching dashboard statistics
// @Summary Dashboard Stats
// @Description Get aggregate figures for the dashboard
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Param class_name query string false "Scope upcoming classes to one class"
// @Success 200 {object} response.APIResponse
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context(), c.Query("class_name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}
