package handler

import (
	"net/http"

	"github.com/newstarted0004/surti-khaman/internal/apierror"
	"github.com/newstarted0004/surti-khaman/internal/dto"
	"github.com/newstarted0004/surti-khaman/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Summary godoc
// @Summary Period totals and net profit
// @Description netProfit = sales + bulkSales − purchases − workerCosts over the selected period.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param period query string false "today | month | year (default today)"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	var filter dto.DashboardFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Summary(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to compute dashboard"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
