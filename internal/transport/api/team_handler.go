package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamSvs TeamServicer
}

func NewTeamHandler(teamSvs TeamServicer) *TeamHandler {
	return &TeamHandler{
		teamSvs: teamSvs,
	}
}

type TeamEarningsResponse struct {
	TeamSize                int64   `json:"teamSize"`
	TotalOrders             int64   `json:"totalOrders"`
	TotalSales              float64 `json:"totalSales"`
	TotalCommissionFromTeam float64 `json:"totalCommissionFromTeam"`
}

// Index GET RouteGroup + TeamRoute. Роллап по всему поддереву рефералов текущего юзера.
func (h *TeamHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	earnings, err := h.teamSvs.TeamEarnings(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, TeamEarningsResponse{
		TeamSize:                earnings.TeamSize,
		TotalOrders:             earnings.TotalOrders,
		TotalSales:              earnings.TotalSales.InexactFloat64(),
		TotalCommissionFromTeam: earnings.TotalCommissionFromTeam.InexactFloat64(),
	})
}
