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

type LedgerServiceTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockUOW            *uowmocks.MockUOW
	mockTX             *uowmocks.MockTX
	mockUserRepo       *mocks.MockUserRepository
	mockOrderRepo      *mocks.MockOrderRepository
	mockCommissionRepo *mocks.MockCommissionRepository
	ledger             *CommissionLedgerService
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) SetupTest() {
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
	s.ledger = ledger
}

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectRetryTx связывает вызовы DoRetry с мок-транзакцией.
func (s *LedgerServiceTestSuite) expectRetryTx() {
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

func (s *LedgerServiceTestSuite) TestComputeAndRecordTerminalOrder() {
	s.expectRetryTx()
	s.mockOrderRepo.EXPECT().
		Find(gomock.Any(), int64(10)).
		Return(&domain.Order{ID: 10, SellerID: 1, Status: domain.OrderStatusDelivered}, nil)

	_, err := s.ledger.ComputeAndRecordCommissions(s.T().Context(), 10)
	s.Require().ErrorIs(err, domain.ErrConflict)
}

// TestComputeAndRecordCommissions заказ на 1000 у селлера без продаж (6%) с одним предком:
// прямой черновик 60 и реферальный 15 (25% от базы), pending балансы сдвигаются на полную сумму.
func (s *LedgerServiceTestSuite) TestComputeAndRecordCommissions() {
	s.expectRetryTx()

	order := &domain.Order{
		ID:          10,
		SellerID:    1,
		TotalAmount: decimal.NewFromInt(1000),
		Status:      domain.OrderStatusProcessing,
	}
	s.mockOrderRepo.EXPECT().Find(gomock.Any(), int64(10)).Return(order, nil)
	s.mockUserRepo.EXPECT().
		FindForUpdate(gomock.Any(), int64(1)).
		Return(&domain.User{ID: 1, ReferredBy: int64Ptr(2), TotalSales: decimal.Zero}, nil)

	parents := map[int64]*int64{1: int64Ptr(2), 2: nil}
	s.mockUserRepo.EXPECT().
		ReferrerID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, userID int64) (*int64, error) {
			return parents[userID], nil
		}).AnyTimes()

	var nextID int64
	s.mockCommissionRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.UpsertCommission) (*repoargs.UpsertResult, error) {
			nextID++
			return &repoargs.UpsertResult{
				Commission: &domain.Commission{
					ID:          nextID,
					OrderID:     args.OrderID,
					RecipientID: args.RecipientID,
					SellerID:    args.SellerID,
					Type:        args.Type,
					Level:       args.Level,
					Amount:      args.Amount,
					Status:      domain.CommissionStatusPending,
				},
				PreviousAmount: decimal.Zero,
			}, nil
		}).Times(2)

	s.mockUserRepo.EXPECT().
		AdjustPendingCommission(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, delta decimal.Decimal) error {
			s.True(delta.Equal(decimal.NewFromInt(60)), "seller delta %s", delta)
			return nil
		})
	s.mockUserRepo.EXPECT().
		AdjustPendingCommission(gomock.Any(), int64(2), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, delta decimal.Decimal) error {
			s.True(delta.Equal(decimal.NewFromInt(15)), "referrer delta %s", delta)
			return nil
		})

	records, err := s.ledger.ComputeAndRecordCommissions(s.T().Context(), 10)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.True(records[0].Amount.Equal(decimal.NewFromInt(60)))
	s.True(records[1].Amount.Equal(decimal.NewFromInt(15)))
}

// TestRecomputeAdjustsByDelta перерасчет после смены суммы: апсерт вернул прошлую сумму 60,
// новая 120 — pending баланс сдвигается на дельту 60, а не на полную сумму.
func (s *LedgerServiceTestSuite) TestRecomputeAdjustsByDelta() {
	s.expectRetryTx()

	order := &domain.Order{
		ID:          10,
		SellerID:    1,
		TotalAmount: decimal.NewFromInt(2000),
		Status:      domain.OrderStatusProcessing,
	}
	s.mockOrderRepo.EXPECT().Find(gomock.Any(), int64(10)).Return(order, nil)
	s.mockUserRepo.EXPECT().
		FindForUpdate(gomock.Any(), int64(1)).
		Return(&domain.User{ID: 1, TotalSales: decimal.Zero}, nil)
	s.mockUserRepo.EXPECT().ReferrerID(gomock.Any(), int64(1)).Return(nil, nil)

	s.mockCommissionRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.UpsertCommission) (*repoargs.UpsertResult, error) {
			return &repoargs.UpsertResult{
				Commission: &domain.Commission{
					ID:          1,
					OrderID:     args.OrderID,
					RecipientID: args.RecipientID,
					Amount:      args.Amount,
					Status:      domain.CommissionStatusPending,
				},
				PreviousAmount: decimal.NewFromInt(60),
			}, nil
		})

	s.mockUserRepo.EXPECT().
		AdjustPendingCommission(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, delta decimal.Decimal) error {
			s.True(delta.Equal(decimal.NewFromInt(60)), "delta %s", delta)
			return nil
		})

	records, err := s.ledger.ComputeAndRecordCommissions(s.T().Context(), 10)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.True(records[0].Amount.Equal(decimal.NewFromInt(120)))
}

// TestApplyDelivery кредитование: перенос из pending, для уровня 0 дополнительно
// зачисляется продажа и пересчитывается ступень по новому накопителю.
func (s *LedgerServiceTestSuite) TestApplyDelivery() {
	s.expectRetryTx()

	pending := []domain.Commission{
		{
			ID: 1, OrderID: 10, RecipientID: 1, SellerID: 1,
			Level: 0, Amount: decimal.NewFromInt(60), ProductPrice: decimal.NewFromInt(1000),
			Status: domain.CommissionStatusPending,
		},
		{
			ID: 2, OrderID: 10, RecipientID: 2, SellerID: 1,
			Level: 1, Amount: decimal.NewFromInt(15), ProductPrice: decimal.NewFromInt(1000),
			Status: domain.CommissionStatusPending,
		},
	}
	s.mockCommissionRepo.EXPECT().PendingByOrder(gomock.Any(), int64(10)).Return(pending, nil)

	for i := range pending {
		commission := pending[i]
		credited := commission
		credited.Status = domain.CommissionStatusCredited
		s.mockCommissionRepo.EXPECT().
			Transition(gomock.Any(), commission.ID,
				domain.CommissionStatusPending, domain.CommissionStatusCredited,
				domain.OrderStatusDelivered).
			Return(&credited, nil)
	}

	s.mockUserRepo.EXPECT().
		CreditCommission(gomock.Any(), repoargs.CommissionCredit{
			UserID: 1, Amount: decimal.NewFromInt(60), Direct: true,
		}).Return(nil)
	s.mockUserRepo.EXPECT().
		CreditCommission(gomock.Any(), repoargs.CommissionCredit{
			UserID: 2, Amount: decimal.NewFromInt(15), Direct: false,
		}).Return(nil)

	// уровень 0: зачисление продажи, 0+1000 продаж -> ступень 8%
	s.mockUserRepo.EXPECT().
		FindForUpdate(gomock.Any(), int64(1)).
		Return(&domain.User{ID: 1, TotalSales: decimal.Zero}, nil)
	s.mockUserRepo.EXPECT().
		CreditSale(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.SaleCredit) error {
			s.Equal(int64(1), args.UserID)
			s.True(args.Amount.Equal(decimal.NewFromInt(1000)))
			s.True(args.NewSlabPercent.Equal(decimal.NewFromInt(8)))
			return nil
		})

	err := s.ledger.ApplyDelivery(s.T().Context(), 10)
	s.Require().NoError(err)
}

// TestApplyDeliveryReplay повторная доставка: CAS перехода не находит pending запись,
// балансы не трогаются.
func (s *LedgerServiceTestSuite) TestApplyDeliveryReplay() {
	s.expectRetryTx()

	pending := []domain.Commission{
		{ID: 1, OrderID: 10, RecipientID: 1, Level: 0, Amount: decimal.NewFromInt(60)},
	}
	s.mockCommissionRepo.EXPECT().PendingByOrder(gomock.Any(), int64(10)).Return(pending, nil)
	s.mockCommissionRepo.EXPECT().
		Transition(gomock.Any(), int64(1),
			domain.CommissionStatusPending, domain.CommissionStatusCredited,
			domain.OrderStatusDelivered).
		Return(nil, domain.ErrRecordNotFound)

	// CreditCommission и CreditSale не ожидаются вовсе: no-op
	err := s.ledger.ApplyDelivery(s.T().Context(), 10)
	s.Require().NoError(err)
}

// TestApplyCancellation аннулирование снимает сумму с pending баланса получателя.
func (s *LedgerServiceTestSuite) TestApplyCancellation() {
	s.expectRetryTx()

	pending := []domain.Commission{
		{ID: 2, OrderID: 10, RecipientID: 2, Level: 1, Amount: decimal.NewFromInt(15)},
	}
	s.mockCommissionRepo.EXPECT().PendingByOrder(gomock.Any(), int64(10)).Return(pending, nil)

	cancelled := pending[0]
	cancelled.Status = domain.CommissionStatusCancelled
	s.mockCommissionRepo.EXPECT().
		Transition(gomock.Any(), int64(2),
			domain.CommissionStatusPending, domain.CommissionStatusCancelled,
			domain.OrderStatusCancelled).
		Return(&cancelled, nil)
	s.mockUserRepo.EXPECT().
		AdjustPendingCommission(gomock.Any(), int64(2), decimal.NewFromInt(-15)).
		Return(nil)

	err := s.ledger.ApplyCancellation(s.T().Context(), 10)
	s.Require().NoError(err)
}

func (s *LedgerServiceTestSuite) TestSettleOrderNonTerminal() {
	order := &domain.Order{ID: 10, Status: domain.OrderStatusShipped}

	err := s.ledger.SettleOrder(s.T().Context(), order)

	var valErr *domain.ValidationError
	s.Require().ErrorAs(err, &valErr)
}

func (s *LedgerServiceTestSuite) TestStatsByUser() {
	s.mockUserRepo.EXPECT().
		Find(gomock.Any(), int64(1)).
		Return(&domain.User{
			ID:                  1,
			TotalSales:          decimal.NewFromInt(5000),
			CommissionSlab:      decimal.NewFromInt(10),
			PendingCommission:   decimal.NewFromInt(30),
			AvailableCommission: decimal.NewFromInt(120),
		}, nil)
	s.mockCommissionRepo.EXPECT().
		StatsByRecipient(gomock.Any(), int64(1)).
		Return(&repoargs.CommissionStats{
			PendingCount:  1,
			PendingTotal:  decimal.NewFromInt(30),
			CreditedCount: 4,
			CreditedTotal: decimal.NewFromInt(120),
		}, nil)

	stats, err := s.ledger.StatsByUser(s.T().Context(), 1)
	s.Require().NoError(err)
	s.Equal(int64(4), stats.Stats.CreditedCount)
	s.True(stats.AvailableCommission.Equal(decimal.NewFromInt(120)))
	s.True(stats.CommissionSlab.Equal(decimal.NewFromInt(10)))
}
