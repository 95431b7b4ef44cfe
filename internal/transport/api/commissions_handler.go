package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-commission/internal/domain"
	"github.com/fsdevblog/groph-commission/internal/repository/repoargs"
)

type CommissionsHandler struct {
	ledgerSvs LedgerServicer
}

func NewCommissionsHandler(ledgerSvs LedgerServicer) *CommissionsHandler {
	return &CommissionsHandler{
		ledgerSvs: ledgerSvs,
	}
}

type CommissionResponse struct {
	ID                     int64                       `json:"ID"`
	OrderID                int64                       `json:"orderID"`
	SellerID               int64                       `json:"sellerID"`
	RecipientID            int64                       `json:"recipientID"`
	Type                   domain.CommissionType       `json:"type"`
	Level                  int16                       `json:"level"`
	Amount                 float64                     `json:"amount"`
	ProductPrice           float64                     `json:"productPrice"`
	SellerSlabPercentage   float64                     `json:"sellerSlabPercentage"`
	SellerTotalSalesAtTime float64                     `json:"sellerTotalSalesAtTime"`
	Status                 domain.CommissionStatusType `json:"status"`
	CreatedAt              time.Time                   `json:"createdAt"`
	UpdatedAt              time.Time                   `json:"updatedAt"`
}

func newCommissionResponse(commission *domain.Commission) CommissionResponse {
	return CommissionResponse{
		ID:                     commission.ID,
		OrderID:                commission.OrderID,
		SellerID:               commission.SellerID,
		RecipientID:            commission.RecipientID,
		Type:                   commission.Type,
		Level:                  commission.Level,
		Amount:                 commission.Amount.InexactFloat64(),
		ProductPrice:           commission.ProductPrice.InexactFloat64(),
		SellerSlabPercentage:   commission.SellerSlabPercentage.InexactFloat64(),
		SellerTotalSalesAtTime: commission.SellerTotalSalesAtTime.InexactFloat64(),
		Status:                 commission.Status,
		CreatedAt:              commission.CreatedAt,
		UpdatedAt:              commission.UpdatedAt,
	}
}

func newCommissionResponses(commissions []domain.Commission) []CommissionResponse {
	response := make([]CommissionResponse, len(commissions))
	for i := range commissions {
		response[i] = newCommissionResponse(&commissions[i])
	}
	return response
}

type CommissionIndexParams struct {
	OrderID *int64  `binding:"omitempty,min=1"                           form:"orderID"`
	Status  *string `binding:"omitempty,oneof=pending credited cancelled" form:"status"`
	Page    uint    `binding:"omitempty,min=1"                           form:"page"`
	PerPage uint    `binding:"omitempty,min=1,max=100"                   form:"perPage"`
}

// Index GET RouteGroup + CommissionsRoute. Записи леджера текущего юзера как получателя,
// с фильтрами по заказу и статусу и постраничным выводом.
func (h *CommissionsHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params CommissionIndexParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	filter := repoargs.CommissionFilter{
		RecipientID: &currentUserID,
		OrderID:     params.OrderID,
		Page:        params.Page,
		PerPage:     params.PerPage,
	}
	if params.Status != nil {
		status := domain.CommissionStatusType(*params.Status)
		filter.Status = &status
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	commissions, total, err := h.ledgerSvs.List(reqCtx, filter)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(commissions) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"commissions": newCommissionResponses(commissions),
		"total":       total,
	})
}

type CommissionStatsResponse struct {
	PendingCount        int64   `json:"pendingCount"`
	PendingTotal        float64 `json:"pendingTotal"`
	CreditedCount       int64   `json:"creditedCount"`
	CreditedTotal       float64 `json:"creditedTotal"`
	CancelledCount      int64   `json:"cancelledCount"`
	CancelledTotal      float64 `json:"cancelledTotal"`
	DirectCredited      float64 `json:"directCredited"`
	ReferralCredited    float64 `json:"referralCredited"`
	TotalSales          float64 `json:"totalSales"`
	CommissionSlab      float64 `json:"commissionSlab"`
	PendingCommission   float64 `json:"pendingCommission"`
	AvailableCommission float64 `json:"availableCommission"`
}

// Stats GET RouteGroup + CommissionStatsRoute. Сводка по комиссиям текущего юзера вместе с
// его балансами и текущей ставкой.
func (h *CommissionsHandler) Stats(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stats, err := h.ledgerSvs.StatsByUser(reqCtx, currentUserID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, CommissionStatsResponse{
		PendingCount:        stats.Stats.PendingCount,
		PendingTotal:        stats.Stats.PendingTotal.InexactFloat64(),
		CreditedCount:       stats.Stats.CreditedCount,
		CreditedTotal:       stats.Stats.CreditedTotal.InexactFloat64(),
		CancelledCount:      stats.Stats.CancelledCount,
		CancelledTotal:      stats.Stats.CancelledTotal.InexactFloat64(),
		DirectCredited:      stats.Stats.DirectCredited.InexactFloat64(),
		ReferralCredited:    stats.Stats.ReferralCredited.InexactFloat64(),
		TotalSales:          stats.TotalSales.InexactFloat64(),
		CommissionSlab:      stats.CommissionSlab.InexactFloat64(),
		PendingCommission:   stats.PendingCommission.InexactFloat64(),
		AvailableCommission: stats.AvailableCommission.InexactFloat64(),
	})
}
