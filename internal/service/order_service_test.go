package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-commission/internal/domain"
	"github.com/fsdevblog/groph-commission/internal/repository/repoargs"
	"github.com/fsdevblog/groph-commission/internal/service/mocks"
	"github.com/fsdevblog/groph-commission/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-commission/pkg/uow/mocks"
)

type OrderServiceTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockUOW            *uowmocks.MockUOW
	mockTX             *uowmocks.MockTX
	mockUserRepo       *mocks.MockUserRepository
	mockOrderRepo      *mocks.MockOrderRepository
	mockCommissionRepo *mocks.MockCommissionRepository
	orderService       *OrderService
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(s.mockCtrl)
	s.mockCommissionRepo = mocks.NewMockCommissionRepository(s.mockCtrl)

	// Моки получения репозиториев из uow. Выполняются в инициализации сервисов.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.CommissionRepoName)).
		Return(s.mockCommissionRepo, nil).AnyTimes()

	slabs, slabsErr := domain.ParseSlabTable("0:6,1000:8,5000:10,10000:12")
	s.Require().NoError(slabsErr)
	schedule, scheduleErr := domain.ParseReferralSchedule("25,10,5,2.5")
	s.Require().NoError(scheduleErr)

	graph, graphErr := NewReferralGraphService(s.mockUOW)
	s.Require().NoError(graphErr)
	ledger, ledgerErr := NewCommissionLedgerService(
		s.mockUOW, graph, NewCommissionCalculator(slabs, schedule), slabs, logrus.New())
	s.Require().NoError(ledgerErr)

	orderService, servErr := NewOrderService(s.mockUOW, ledger)
	s.Require().NoError(servErr)
	s.orderService = orderService
}

func (s *OrderServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *OrderServiceTestSuite) expectRetryTx() {
	s.mockUOW.EXPECT().
		DoRetry(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ uint, _ func(error) bool, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.CommissionRepoName)).
		Return(s.mockCommissionRepo, nil).AnyTimes()
}

func (s *OrderServiceTestSuite) TestCreateNonPositiveAmount() {
	var valErr *domain.ValidationError

	_, _, zeroErr := s.orderService.Create(s.T().Context(), 1, decimal.Zero)
	s.Require().ErrorAs(zeroErr, &valErr)

	_, _, negErr := s.orderService.Create(s.T().Context(), 1, decimal.NewFromInt(-10))
	s.Require().ErrorAs(negErr, &valErr)
}

// TestCreate заказ создается и черновики комиссий пишутся в одном транзакционном скоупе.
func (s *OrderServiceTestSuite) TestCreate() {
	s.expectRetryTx()

	amount := decimal.NewFromInt(500)
	s.mockUserRepo.EXPECT().
		FindForUpdate(gomock.Any(), int64(1)).
		Return(&domain.User{ID: 1, TotalSales: decimal.Zero}, nil)
	s.mockOrderRepo.EXPECT().
		Create(gomock.Any(), repoargs.CreateOrder{SellerID: 1, TotalAmount: amount}).
		Return(&domain.Order{
			ID: 10, SellerID: 1, TotalAmount: amount, Status: domain.OrderStatusProcessing,
		}, nil)
	s.mockUserRepo.EXPECT().ReferrerID(gomock.Any(), int64(1)).Return(nil, nil)

	s.mockCommissionRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.UpsertCommission) (*repoargs.UpsertResult, error) {
			s.Equal(int64(10), args.OrderID)
			s.Equal(int16(0), args.Level)
			s.True(args.Amount.Equal(decimal.NewFromInt(30)), "amount %s", args.Amount)
			return &repoargs.UpsertResult{
				Commission:     &domain.Commission{ID: 1, OrderID: 10, RecipientID: 1, Amount: args.Amount},
				PreviousAmount: decimal.Zero,
			}, nil
		})
	s.mockUserRepo.EXPECT().
		AdjustPendingCommission(gomock.Any(), int64(1), gomock.Any()).
		Return(nil)

	order, commissions, err := s.orderService.Create(s.T().Context(), 1, amount)
	s.Require().NoError(err)
	s.Equal(int64(10), order.ID)
	s.Require().Len(commissions, 1)
}

func (s *OrderServiceTestSuite) TestUpdateAmountTerminalOrder() {
	s.expectRetryTx()
	s.mockOrderRepo.EXPECT().
		Find(gomock.Any(), int64(10)).
		Return(&domain.Order{ID: 10, SellerID: 1, Status: domain.OrderStatusCancelled}, nil)

	_, _, err := s.orderService.UpdateAmount(s.T().Context(), 10, decimal.NewFromInt(700))
	s.Require().ErrorIs(err, domain.ErrConflict)
}

func (s *OrderServiceTestSuite) TestHandleStatusChangeInvalidStatus() {
	_, err := s.orderService.HandleStatusChange(s.T().Context(), 10, "unknown")

	var valErr *domain.ValidationError
	s.Require().ErrorAs(err, &valErr)
}

// TestHandleStatusChangeIntermediate промежуточный статус лишь отражается в аудит-колонке.
func (s *OrderServiceTestSuite) TestHandleStatusChangeIntermediate() {
	order := &domain.Order{ID: 10, SellerID: 1, Status: domain.OrderStatusShipped}
	s.mockOrderRepo.EXPECT().
		UpdateStatus(gomock.Any(), int64(10), domain.OrderStatusShipped).
		Return(order, nil)
	s.mockCommissionRepo.EXPECT().
		SetOrderStatusAudit(gomock.Any(), int64(10), domain.OrderStatusShipped).
		Return(nil)

	got, err := s.orderService.HandleStatusChange(s.T().Context(), 10, domain.OrderStatusShipped)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusShipped, got.Status)
}

// TestHandleStatusChangeReplay повторное событие доставки: заказ уже delivered, pending
// записей нет — выход без ошибок и без мутаций балансов.
func (s *OrderServiceTestSuite) TestHandleStatusChangeReplay() {
	s.mockOrderRepo.EXPECT().
		UpdateStatus(gomock.Any(), int64(10), domain.OrderStatusDelivered).
		Return(nil, domain.ErrRecordNotFound)
	s.mockOrderRepo.EXPECT().
		Find(gomock.Any(), int64(10)).
		Return(&domain.Order{ID: 10, SellerID: 1, Status: domain.OrderStatusDelivered}, nil)
	s.mockCommissionRepo.EXPECT().
		PendingByOrder(gomock.Any(), int64(10)).
		Return(nil, nil)

	order, err := s.orderService.HandleStatusChange(s.T().Context(), 10, domain.OrderStatusDelivered)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusDelivered, order.Status)
}

// TestHandleStatusChangeClosedOrder попытка перевести закрытый заказ в другой статус.
func (s *OrderServiceTestSuite) TestHandleStatusChangeClosedOrder() {
	s.mockOrderRepo.EXPECT().
		UpdateStatus(gomock.Any(), int64(10), domain.OrderStatusCancelled).
		Return(nil, domain.ErrRecordNotFound)
	s.mockOrderRepo.EXPECT().
		Find(gomock.Any(), int64(10)).
		Return(&domain.Order{ID: 10, SellerID: 1, Status: domain.OrderStatusDelivered}, nil)

	_, err := s.orderService.HandleStatusChange(s.T().Context(), 10, domain.OrderStatusCancelled)
	s.Require().ErrorIs(err, domain.ErrConflict)
}

// TestHandleStatusChangeDelivered доставка кредитует pending комиссии заказа.
func (s *OrderServiceTestSuite) TestHandleStatusChangeDelivered() {
	s.expectRetryTx()

	order := &domain.Order{ID: 10, SellerID: 1, Status: domain.OrderStatusDelivered}
	s.mockOrderRepo.EXPECT().
		UpdateStatus(gomock.Any(), int64(10), domain.OrderStatusDelivered).
		Return(order, nil)

	pending := []domain.Commission{
		{
			ID: 1, OrderID: 10, RecipientID: 1, SellerID: 1, Level: 0,
			Amount: decimal.NewFromInt(30), ProductPrice: decimal.NewFromInt(500),
		},
	}
	s.mockCommissionRepo.EXPECT().PendingByOrder(gomock.Any(), int64(10)).Return(pending, nil)

	credited := pending[0]
	credited.Status = domain.CommissionStatusCredited
	s.mockCommissionRepo.EXPECT().
		Transition(gomock.Any(), int64(1),
			domain.CommissionStatusPending, domain.CommissionStatusCredited,
			domain.OrderStatusDelivered).
		Return(&credited, nil)
	s.mockUserRepo.EXPECT().
		CreditCommission(gomock.Any(), repoargs.CommissionCredit{
			UserID: 1, Amount: decimal.NewFromInt(30), Direct: true,
		}).Return(nil)
	s.mockUserRepo.EXPECT().
		FindForUpdate(gomock.Any(), int64(1)).
		Return(&domain.User{ID: 1, TotalSales: decimal.Zero}, nil)
	s.mockUserRepo.EXPECT().CreditSale(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.orderService.HandleStatusChange(s.T().Context(), 10, domain.OrderStatusDelivered)
	s.Require().NoError(err)
}
