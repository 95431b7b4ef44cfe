package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-commission/internal/domain"
	"github.com/fsdevblog/groph-commission/internal/repository/repoargs"
	"github.com/fsdevblog/groph-commission/pkg/uow"
	"github.com/shopspring/decimal"
)

type OrderService struct {
	uow       uow.UOW
	orderRepo OrderRepository
	ledger    *CommissionLedgerService
}

func NewOrderService(u uow.UOW, ledger *CommissionLedgerService) (*OrderService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err
	}
	return &OrderService{
		uow:       u,
		orderRepo: orderRepo,
		ledger:    ledger,
	}, nil
}

// Create создает заказ и в том же транзакционном скоупе записывает черновики комиссий.
// Селлер блокируется до вставки заказа: расчет видит согласованный срез продаж.
func (o *OrderService) Create(ctx context.Context, sellerID int64, amount decimal.Decimal) (*domain.Order, []domain.Commission, error) {
	if !amount.IsPositive() {
		return nil, nil, domain.NewValidationError("totalAmount", "must be positive")
	}

	var order *domain.Order
	var commissions []domain.Commission

	txErr := o.uow.DoRetry(ctx, maxTxAttempts, isRetryableTxErr, func(c context.Context, tx uow.TX) error {
		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr //nolint:wrapcheck
		}
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}

		seller, sellerErr := userRepo.FindForUpdate(c, sellerID)
		if sellerErr != nil {
			return sellerErr //nolint:wrapcheck
		}

		var orderErr error
		order, orderErr = orderRepo.Create(c, repoargs.CreateOrder{
			SellerID:    sellerID,
			TotalAmount: amount,
		})
		if orderErr != nil {
			return orderErr //nolint:wrapcheck
		}

		var recordErr error
		commissions, recordErr = o.ledger.RecordDraftsTx(c, tx, order, seller)
		return recordErr
	})

	if txErr != nil {
		return nil, nil, fmt.Errorf("creating order for seller %d: %w", sellerID, txErr)
	}
	return order, commissions, nil
}

// UpdateAmount меняет сумму незакрытого заказа и пересчитывает его комиссии на месте.
// Перерасчет идемпотентен: тот же ключ (заказ, получатель, уровень) — та же запись.
func (o *OrderService) UpdateAmount(ctx context.Context, orderID int64, amount decimal.Decimal) (*domain.Order, []domain.Commission, error) {
	if !amount.IsPositive() {
		return nil, nil, domain.NewValidationError("totalAmount", "must be positive")
	}

	var order *domain.Order
	var commissions []domain.Commission

	txErr := o.uow.DoRetry(ctx, maxTxAttempts, isRetryableTxErr, func(c context.Context, tx uow.TX) error {
		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr //nolint:wrapcheck
		}
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}

		existing, existingErr := orderRepo.Find(c, orderID)
		if existingErr != nil {
			return existingErr //nolint:wrapcheck
		}
		if existing.Status.IsTerminal() {
			return fmt.Errorf("order %d is %s: %w", orderID, existing.Status, domain.ErrConflict)
		}

		seller, sellerErr := userRepo.FindForUpdate(c, existing.SellerID)
		if sellerErr != nil {
			return sellerErr //nolint:wrapcheck
		}

		var updateErr error
		order, updateErr = orderRepo.UpdateAmount(c, orderID, amount)
		if updateErr != nil {
			return updateErr //nolint:wrapcheck
		}

		var recordErr error
		commissions, recordErr = o.ledger.RecordDraftsTx(c, tx, order, seller)
		return recordErr
	})

	if txErr != nil {
		return nil, nil, fmt.Errorf("updating amount of order %d: %w", orderID, txErr)
	}
	return order, commissions, nil
}

// HandleStatusChange проводит смену статуса заказа и диспатчит леджерный переход:
// delivered кредитует комиссии, cancelled аннулирует, промежуточные статусы лишь
// отражаются в аудит-колонке. Повтор события для уже закрытого заказа в том же
// статусе — no-op; попытка перевести закрытый заказ в другой статус — ErrConflict.
func (o *OrderService) HandleStatusChange(ctx context.Context, orderID int64, newStatus domain.OrderStatusType) (*domain.Order, error) {
	if !newStatus.IsValid() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("unknown status `%s`", newStatus))
	}

	order, updateErr := o.orderRepo.UpdateStatus(ctx, orderID, newStatus)
	if updateErr != nil {
		existing, findErr := o.orderRepo.Find(ctx, orderID)
		if findErr != nil {
			return nil, fmt.Errorf("handling status change of order %d: %w", orderID, findErr)
		}
		if existing.Status != newStatus {
			return nil, fmt.Errorf("order %d is already %s: %w", orderID, existing.Status, domain.ErrConflict)
		}
		// повторное событие: заказ уже в запрошенном терминальном статусе,
		// леджерный переход ниже отработает как no-op
		order = existing
	}

	var ledgerErr error
	switch newStatus {
	case domain.OrderStatusDelivered:
		ledgerErr = o.ledger.ApplyDelivery(ctx, orderID)
	case domain.OrderStatusCancelled:
		ledgerErr = o.ledger.ApplyCancellation(ctx, orderID)
	default:
		ledgerErr = o.ledger.AuditOrderStatus(ctx, orderID, newStatus)
	}

	if ledgerErr != nil {
		// статус заказа уже проведен; непроведенные комиссии доиграет фоновый процессор
		return nil, fmt.Errorf("handling status change of order %d: %w", orderID, ledgerErr)
	}
	return order, nil
}

// Find возвращает заказ вместе с его комиссиями.
func (o *OrderService) Find(ctx context.Context, orderID int64) (*domain.Order, []domain.Commission, error) {
	order, orderErr := o.orderRepo.Find(ctx, orderID)
	if orderErr != nil {
		return nil, nil, orderErr //nolint:wrapcheck
	}
	commissions, commissionsErr := o.ledger.commissionRepo.GetByOrder(ctx, orderID)
	if commissionsErr != nil {
		return nil, nil, commissionsErr //nolint:wrapcheck
	}
	return order, commissions, nil
}
