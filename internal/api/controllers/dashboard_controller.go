package controllers

import (
	"github.com/gin-gonic/gin"

	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary Build the trip-lead dashboard
// @Description Status totals, pipeline share percentages, per-destination totals and the most recent requests
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response_models.DashboardReport
// @Security BearerAuth
// @Router /dashboard [get]
func (d *DashboardController) GetDashboard(c *gin.Context) {
	report, err := d.dashboardService.BuildDashboard(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, report, "Dashboard built")
}
