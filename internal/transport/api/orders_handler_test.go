package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-commission/internal/domain"
	"github.com/fsdevblog/groph-commission/internal/logger"
	"github.com/fsdevblog/groph-commission/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-commission/internal/transport/api/testutils"
	"github.com/fsdevblog/groph-commission/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockOrderService *mocks.MockOrderServicer
	jwtSecret        []byte
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockOrderService = mocks.NewMockOrderServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		OrderService: s.mockOrderService,
		JWTSecretKey: s.jwtSecret,
	})
}

func (s *OrderHandlerTestSuite) TestCreateOrder() {
	var currentUserID int64 = 1

	currentUserJWTToken, cJWTTokenErr := tokens.GenerateUserJWT(currentUserID, time.Hour, s.jwtSecret)
	s.Require().NoError(cJWTTokenErr)

	validPayload := []byte(`{"amount": "500"}`)
	negativePayload := []byte(`{"amount": "-10"}`)
	brokenPayload := []byte(`{"amount": `)

	// Моки
	// Валидный запрос.
	s.mockOrderService.EXPECT().
		Create(gomock.Any(), currentUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, sellerID int64, amount decimal.Decimal) (*domain.Order, []domain.Commission, error) {
			s.True(amount.Equal(decimal.NewFromInt(500)))
			order := &domain.Order{
				ID:          10,
				SellerID:    sellerID,
				TotalAmount: amount,
				Status:      domain.OrderStatusProcessing,
			}
			commissions := []domain.Commission{
				{ID: 1, OrderID: 10, RecipientID: sellerID, Amount: decimal.NewFromInt(30), Type: domain.CommissionTypeDirect},
			}
			return order, commissions, nil
		}).Times(1)
	// Неположительная сумма отбивается сервисом.
	s.mockOrderService.EXPECT().
		Create(gomock.Any(), currentUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, amount decimal.Decimal) (*domain.Order, []domain.Commission, error) {
			s.True(amount.Equal(decimal.NewFromInt(-10)))
			return nil, nil, domain.NewValidationError("amount", "must be positive")
		}).Times(1)

	cases := []struct {
		name       string
		payload    []byte
		wantStatus int
		jwtToken   string
	}{
		{
			name:       "all ok",
			payload:    validPayload,
			wantStatus: http.StatusCreated,
			jwtToken:   currentUserJWTToken,
		}, {
			name:       "non positive amount",
			payload:    negativePayload,
			wantStatus: http.StatusUnprocessableEntity,
			jwtToken:   currentUserJWTToken,
		}, {
			name:       "not authorized",
			payload:    validPayload,
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "broken json",
			payload:    brokenPayload,
			wantStatus: http.StatusBadRequest,
			jwtToken:   currentUserJWTToken,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + OrdersRoute,
				Body:   bytes.NewReader(t.payload),
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				reqOpts = append(reqOpts, testutils.WithBearerToken(t.jwtToken))
			}
			reqOpts = append(reqOpts, testutils.WithHeader("Content-Type", "application/json; charset=utf-8"))
			res, err := testutils.MakeRequest(args, reqOpts...)

			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *OrderHandlerTestSuite) TestShow() {
	var ownerID int64 = 1
	var strangerID int64 = 2

	ownerJWTToken, oJWTErr := tokens.GenerateUserJWT(ownerID, time.Hour, s.jwtSecret)
	s.Require().NoError(oJWTErr)
	strangerJWTToken, sJWTErr := tokens.GenerateUserJWT(strangerID, time.Hour, s.jwtSecret)
	s.Require().NoError(sJWTErr)

	order := &domain.Order{
		ID:          10,
		SellerID:    ownerID,
		TotalAmount: decimal.NewFromInt(500),
		Status:      domain.OrderStatusProcessing,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	commissions := []domain.Commission{
		{ID: 1, OrderID: 10, RecipientID: ownerID, Amount: decimal.NewFromInt(30), Type: domain.CommissionTypeDirect},
	}

	// И владелец, и чужой юзер дергают Find. Чужому отвечаем 404, не раскрывая заказ.
	s.mockOrderService.EXPECT().
		Find(gomock.Any(), order.ID).
		Return(order, commissions, nil).Times(2)
	s.mockOrderService.EXPECT().
		Find(gomock.Any(), int64(999)).
		Return(nil, nil, domain.ErrRecordNotFound).Times(1)

	cases := []struct {
		name       string
		orderID    string
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "all ok",
			orderID:    "10",
			jwtToken:   ownerJWTToken,
			wantStatus: http.StatusOK,
		}, {
			name:       "foreign order",
			orderID:    "10",
			jwtToken:   strangerJWTToken,
			wantStatus: http.StatusNotFound,
		}, {
			name:       "missing order",
			orderID:    "999",
			jwtToken:   ownerJWTToken,
			wantStatus: http.StatusNotFound,
		}, {
			name:       "malformed order id",
			orderID:    "abc",
			jwtToken:   ownerJWTToken,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "not authorized",
			orderID:    "10",
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    fmt.Sprintf("%s/user/orders/%s", RouteGroup, t.orderID),
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				reqOpts = append(reqOpts, testutils.WithBearerToken(t.jwtToken))
			}
			res, err := testutils.MakeRequest(args, reqOpts...)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

// TestUpdateStatus терминальный заказ нельзя двигать дальше, отвечаем конфликтом.
func (s *OrderHandlerTestSuite) TestUpdateStatus() {
	var ownerID int64 = 1
	ownerJWTToken, oJWTErr := tokens.GenerateUserJWT(ownerID, time.Hour, s.jwtSecret)
	s.Require().NoError(oJWTErr)

	openOrder := &domain.Order{ID: 10, SellerID: ownerID, Status: domain.OrderStatusShipped}
	closedOrder := &domain.Order{ID: 11, SellerID: ownerID, Status: domain.OrderStatusCancelled}

	s.mockOrderService.EXPECT().
		Find(gomock.Any(), openOrder.ID).
		Return(openOrder, nil, nil).Times(1)
	s.mockOrderService.EXPECT().
		HandleStatusChange(gomock.Any(), openOrder.ID, domain.OrderStatusDelivered).
		Return(&domain.Order{ID: 10, SellerID: ownerID, Status: domain.OrderStatusDelivered}, nil).Times(1)

	s.mockOrderService.EXPECT().
		Find(gomock.Any(), closedOrder.ID).
		Return(closedOrder, nil, nil).Times(1)
	s.mockOrderService.EXPECT().
		HandleStatusChange(gomock.Any(), closedOrder.ID, domain.OrderStatusDelivered).
		Return(nil, domain.ErrConflict).Times(1)

	cases := []struct {
		name       string
		orderID    int64
		wantStatus int
	}{
		{
			name:       "all ok",
			orderID:    openOrder.ID,
			wantStatus: http.StatusOK,
		}, {
			name:       "terminal order",
			orderID:    closedOrder.ID,
			wantStatus: http.StatusConflict,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			payload := []byte(`{"status": "delivered"}`)
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPatch,
				URL:    fmt.Sprintf("%s/user/orders/%d/status", RouteGroup, t.orderID),
				Body:   bytes.NewReader(payload),
			}
			res, err := testutils.MakeRequest(args,
				testutils.WithBearerToken(ownerJWTToken),
				testutils.WithHeader("Content-Type", "application/json; charset=utf-8"),
			)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *OrderHandlerTestSuite) TestUpdateAmount() {
	var ownerID int64 = 1
	ownerJWTToken, oJWTErr := tokens.GenerateUserJWT(ownerID, time.Hour, s.jwtSecret)
	s.Require().NoError(oJWTErr)

	order := &domain.Order{ID: 10, SellerID: ownerID, Status: domain.OrderStatusProcessing}

	s.mockOrderService.EXPECT().
		Find(gomock.Any(), order.ID).
		Return(order, nil, nil).Times(1)
	s.mockOrderService.EXPECT().
		UpdateAmount(gomock.Any(), order.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, orderID int64, amount decimal.Decimal) (*domain.Order, []domain.Commission, error) {
			s.True(amount.Equal(decimal.NewFromInt(2000)))
			updated := &domain.Order{ID: orderID, SellerID: ownerID, TotalAmount: amount, Status: domain.OrderStatusProcessing}
			return updated, []domain.Commission{}, nil
		}).Times(1)

	payload := []byte(`{"amount": "2000"}`)
	args := testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPatch,
		URL:    fmt.Sprintf("%s/user/orders/%d/amount", RouteGroup, order.ID),
		Body:   bytes.NewReader(payload),
	}
	res, err := testutils.MakeRequest(args,
		testutils.WithBearerToken(ownerJWTToken),
		testutils.WithHeader("Content-Type", "application/json; charset=utf-8"),
	)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().NoError(err)
	s.Equal(http.StatusOK, res.StatusCode)
}
