package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-commission/internal/domain"
)

type OrdersHandler struct {
	orderSvs OrderServicer
}

func NewOrdersHandler(orderSvs OrderServicer) *OrdersHandler {
	return &OrdersHandler{
		orderSvs: orderSvs,
	}
}

type OrderResponse struct {
	ID        int64                  `json:"ID"`
	SellerID  int64                  `json:"sellerID"`
	Amount    float64                `json:"amount"`
	Status    domain.OrderStatusType `json:"status"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

func newOrderResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:        order.ID,
		SellerID:  order.SellerID,
		Amount:    order.TotalAmount.InexactFloat64(),
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}

type OrderCreateParams struct {
	Amount decimal.Decimal `binding:"required" json:"amount"`
}

// Create POST RouteGroup + OrdersRoute. Создает заказ текущего юзера и сразу рассчитывает
// черновики комиссий по нему.
func (o *OrdersHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params OrderCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, commissions, createErr := o.orderSvs.Create(reqCtx, currentUserID, params.Amount)
	if createErr != nil {
		var valErr *domain.ValidationError
		if errors.As(createErr, &valErr) {
			_ = c.AbortWithError(http.StatusUnprocessableEntity, valErr).SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":       newOrderResponse(order),
		"commissions": newCommissionResponses(commissions),
	})
}

// Show GET RouteGroup + OrderRoute. Заказ вместе со всеми записями леджера по нему.
func (o *OrdersHandler) Show(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	orderID, ok := orderIDFromPath(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, commissions, err := o.orderSvs.Find(reqCtx, orderID)
	if err != nil {
		abortWithOrderError(c, err)
		return
	}
	if order.SellerID != currentUserID {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":       newOrderResponse(order),
		"commissions": newCommissionResponses(commissions),
	})
}

type OrderAmountParams struct {
	Amount decimal.Decimal `binding:"required" json:"amount"`
}

// UpdateAmount PATCH RouteGroup + OrderAmountRoute. Меняет сумму нетерминального заказа,
// все комиссии по нему пересчитываются от новой суммы.
func (o *OrdersHandler) UpdateAmount(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	orderID, ok := orderIDFromPath(c)
	if !ok {
		return
	}

	var params OrderAmountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if !o.ensureOwnership(reqCtx, c, orderID, currentUserID) {
		return
	}

	order, commissions, err := o.orderSvs.UpdateAmount(reqCtx, orderID, params.Amount)
	if err != nil {
		abortWithOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":       newOrderResponse(order),
		"commissions": newCommissionResponses(commissions),
	})
}

type OrderStatusParams struct {
	Status domain.OrderStatusType `binding:"required" json:"status"`
}

// UpdateStatus PATCH RouteGroup + OrderStatusRoute. Переводит заказ в новый статус. Переход в
// терминальный статус проводит или отменяет комиссии по заказу.
func (o *OrdersHandler) UpdateStatus(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	orderID, ok := orderIDFromPath(c)
	if !ok {
		return
	}

	var params OrderStatusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if !o.ensureOwnership(reqCtx, c, orderID, currentUserID) {
		return
	}

	order, err := o.orderSvs.HandleStatusChange(reqCtx, orderID, params.Status)
	if err != nil {
		abortWithOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": newOrderResponse(order)})
}

// ensureOwnership проверяет принадлежность заказа юзеру до мутации. Чужой заказ не раскрываем,
// отвечаем 404 как на несуществующий.
func (o *OrdersHandler) ensureOwnership(ctx context.Context, c *gin.Context, orderID, userID int64) bool {
	order, _, err := o.orderSvs.Find(ctx, orderID)
	if err != nil {
		abortWithOrderError(c, err)
		return false
	}
	if order.SellerID != userID {
		c.AbortWithStatus(http.StatusNotFound)
		return false
	}
	return true
}

func orderIDFromPath(c *gin.Context) (int64, bool) {
	orderID, err := strconv.ParseInt(c.Param("orderID"), 10, 64)
	if err != nil || orderID < 1 {
		c.AbortWithStatus(http.StatusBadRequest)
		return 0, false
	}
	return orderID, true
}

func abortWithOrderError(c *gin.Context, err error) {
	var valErr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	case errors.Is(err, domain.ErrConflict):
		_ = c.AbortWithError(http.StatusConflict, errors.New("order is in a terminal status")).
			SetType(gin.ErrorTypePublic)
	case errors.As(err, &valErr):
		_ = c.AbortWithError(http.StatusUnprocessableEntity, valErr).SetType(gin.ErrorTypePublic)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
