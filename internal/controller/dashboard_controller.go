package controller

import (
	"digicheck_backend/internal/service"
	"digicheck_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// @Summary Maturity dashboard
// @Description Latest scores, maturity levels, recommended actions and benchmark comparison for the organization
// @Tags dashboard
// @Produce json
// @Param X-Org-ID header int true "Organization id"
// @Success 200 {object} util.Response
// @Router /dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	orgID := util.OrgID(ctx)
	if orgID == 0 {
		util.BadRequest(ctx, util.ErrMissingOrg.Error())
		return
	}

	report, err := c.DashboardService.GetDashboard(orgID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, report)
}
