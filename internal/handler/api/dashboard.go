package api

import (
	"errors"
	"net/http"

	resdto "equiprent/internal/handler/dto/response"
	"equiprent/internal/handler/httperr"
	"equiprent/internal/pkg/errs"
	"equiprent/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardQuery queries.DashboardQueries
}

func NewDashboardHandler(dashboardQuery queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{dashboardQuery: dashboardQuery}
}

func (h *DashboardHandler) Overview(c *gin.Context) {
	view, err := h.dashboardQuery.Overview(c.Request.Context())
	if err != nil {
		if errors.Is(err, errs.ErrOperationalFailure) {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDashboardView(view))
}
