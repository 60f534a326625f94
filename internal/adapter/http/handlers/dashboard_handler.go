package handlers

import (
	"net/http"

	"nextribe/internal/usecase"
	"nextribe/pkg"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// Leaderboard godoc
// @Summary      Top community members by points
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}   entities.LeaderboardEntry
// @Router       /dashboard/leaderboard [get]
func (h *DashboardHandler) Leaderboard(c *gin.Context) {
	entries, err := h.usecase.Leaderboard(c.Request.Context())
	if err != nil {
		writeError(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GlobalStats godoc
// @Summary      Network headline numbers
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  entities.GlobalStats
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) GlobalStats(c *gin.Context) {
	stats, err := h.usecase.GlobalStats(c.Request.Context())
	if err != nil {
		writeError(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, stats)
}
