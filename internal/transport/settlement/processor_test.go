package settlement

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-commission/internal/domain"
	"github.com/fsdevblog/groph-commission/internal/transport/settlement/mocks"
)

type ProcessorTestSuite struct {
	suite.Suite
	processor   *Processor
	mockService *mocks.MockServicer
	ctrl        *gomock.Controller
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockServicer(s.ctrl)

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	s.processor = New(s.mockService, logger)
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

// TestProcess_NoOrders Тест на случай, когда нет заказов для проводки.
func (s *ProcessorTestSuite) TestProcess_NoOrders() {
	s.mockService.EXPECT().
		UnsettledOrders(gomock.Any(), s.processor.limitPerIteration).
		Return([]domain.Order{}, nil)

	err := s.processor.process(s.T().Context())

	s.ErrorIs(err, ErrNoOrders)
}

// TestProcess_SettlesEachOrder каждый недопроведенный заказ проводится ровно один раз.
func (s *ProcessorTestSuite) TestProcess_SettlesEachOrder() {
	orders := []domain.Order{
		{ID: 1, Status: domain.OrderStatusDelivered},
		{ID: 2, Status: domain.OrderStatusCancelled},
		{ID: 3, Status: domain.OrderStatusDelivered},
	}
	s.mockService.EXPECT().
		UnsettledOrders(gomock.Any(), s.processor.limitPerIteration).
		Return(orders, nil)

	// SettleOrder дергается из воркеров конкурентно, счетчик под мьютексом
	var mu sync.Mutex
	settled := make(map[int64]int)
	s.mockService.EXPECT().
		SettleOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *domain.Order) error {
			mu.Lock()
			defer mu.Unlock()
			settled[order.ID]++
			return nil
		}).Times(len(orders))

	err := s.processor.process(s.T().Context())
	s.Require().NoError(err)

	for _, order := range orders {
		s.Equal(1, settled[order.ID], "order %d", order.ID)
	}
}

// TestProcess_PartialFailure ошибка одного заказа не валит остальные, но итерация
// завершается с ошибкой.
func (s *ProcessorTestSuite) TestProcess_PartialFailure() {
	orders := []domain.Order{
		{ID: 1, Status: domain.OrderStatusDelivered},
		{ID: 2, Status: domain.OrderStatusDelivered},
	}
	s.mockService.EXPECT().
		UnsettledOrders(gomock.Any(), s.processor.limitPerIteration).
		Return(orders, nil)

	s.mockService.EXPECT().
		SettleOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *domain.Order) error {
			if order.ID == 1 {
				return errors.New("deadlock")
			}
			return nil
		}).Times(len(orders))

	err := s.processor.process(s.T().Context())
	s.Require().Error(err)
	s.NotErrorIs(err, ErrNoOrders)
}

// TestProcess_ProduceError ошибка выборки прокидывается наверх.
func (s *ProcessorTestSuite) TestProcess_ProduceError() {
	s.mockService.EXPECT().
		UnsettledOrders(gomock.Any(), s.processor.limitPerIteration).
		Return(nil, errors.New("db is down"))

	err := s.processor.process(s.T().Context())
	s.Require().Error(err)
}
