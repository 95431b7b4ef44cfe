package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-commission/internal/domain"
	"github.com/fsdevblog/groph-commission/internal/repository/repoargs"
	"github.com/fsdevblog/groph-commission/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// CommissionLedgerService долговременный леджер комиссий: идемпотентная запись черновиков
// и переходы статусов с мутацией балансов. Переходы применяются не-более-одного-раза:
// CAS по статусу комиссии служит маркером идемпотентности, повторная доставка события
// превращается в no-op.
type CommissionLedgerService struct {
	uow            uow.UOW
	orderRepo      OrderRepository
	commissionRepo CommissionRepository
	userRepo       UserRepository
	graph          *ReferralGraphService
	calc           *CommissionCalculator
	slabs          domain.SlabTable
	l              *logrus.Entry
}

func NewCommissionLedgerService(
	u uow.UOW,
	graph *ReferralGraphService,
	calc *CommissionCalculator,
	slabs domain.SlabTable,
	l *logrus.Logger,
) (*CommissionLedgerService, error) {
	orderRepo, orderRepoErr := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if orderRepoErr != nil {
		return nil, orderRepoErr
	}
	commissionRepo, commissionRepoErr :=
		uow.GetRepositoryAs[CommissionRepository](u, uow.RepositoryName(repoargs.CommissionRepoName))
	if commissionRepoErr != nil {
		return nil, commissionRepoErr
	}
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}

	return &CommissionLedgerService{
		uow:            u,
		orderRepo:      orderRepo,
		commissionRepo: commissionRepo,
		userRepo:       userRepo,
		graph:          graph,
		calc:           calc,
		slabs:          slabs,
		l:              l.WithField("component", "ledger"),
	}, nil
}

// ComputeAndRecordCommissions рассчитывает и записывает комиссии по заказу. Вызывается
// при создании заказа и при изменении его суммы; повторный вызов для все еще pending
// заказа обновляет записи на месте, не плодя дубликатов. Для заказа в терминальном
// статусе возвращает ErrConflict.
func (s *CommissionLedgerService) ComputeAndRecordCommissions(ctx context.Context, orderID int64) ([]domain.Commission, error) {
	var committed []domain.Commission

	txErr := s.uow.DoRetry(ctx, maxTxAttempts, isRetryableTxErr, func(c context.Context, tx uow.TX) error {
		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr //nolint:wrapcheck
		}
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}

		order, orderErr := orderRepo.Find(c, orderID)
		if orderErr != nil {
			return orderErr //nolint:wrapcheck
		}
		if order.Status.IsTerminal() {
			return fmt.Errorf("order %d is %s: %w", orderID, order.Status, domain.ErrConflict)
		}

		// Сериализация по селлеру: срез продаж читается под блокировкой строки.
		seller, sellerErr := userRepo.FindForUpdate(c, order.SellerID)
		if sellerErr != nil {
			return sellerErr //nolint:wrapcheck
		}

		records, recordErr := s.RecordDraftsTx(c, tx, order, seller)
		if recordErr != nil {
			return recordErr
		}
		committed = records
		return nil
	})

	if txErr != nil {
		return nil, fmt.Errorf("computing commissions for order %d: %w", orderID, txErr)
	}
	return committed, nil
}

// RecordDraftsTx строит черновики и апсертит их в леджер внутри уже открытой транзакции.
// Селлер обязан быть заблокирован вызывающим (FindForUpdate). Цикл в реферальной цепочке
// здесь нефатален: прямая комиссия селлера проводится, реферальные за точкой цикла
// опускаются, предупреждение уходит в лог.
func (s *CommissionLedgerService) RecordDraftsTx(
	ctx context.Context,
	tx uow.TX,
	order *domain.Order,
	seller *domain.User,
) ([]domain.Commission, error) {
	chain, chainErr := s.graph.AncestorChain(ctx, seller.ID, domain.MaxReferralDepth)
	if chainErr != nil {
		var cycleErr *domain.CycleDetectedError
		if !errors.As(chainErr, &cycleErr) {
			return nil, chainErr
		}
		s.l.WithError(cycleErr).WithFields(logrus.Fields{
			"orderID":  order.ID,
			"sellerID": seller.ID,
		}).Warn("referral chain is corrupted, propagation truncated at cycle point")
	}

	drafts := s.calc.ComputeDrafts(order, domain.SellerSnapshot{
		UserID:         seller.ID,
		TotalSales:     seller.TotalSales,
		CommissionSlab: seller.CommissionSlab,
		ReferredBy:     seller.ReferredBy,
	}, chain)

	commissionRepo, commissionRepoErr :=
		uow.GetAs[CommissionRepository](tx, uow.RepositoryName(repoargs.CommissionRepoName))
	if commissionRepoErr != nil {
		return nil, commissionRepoErr //nolint:wrapcheck
	}
	userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}

	records := make([]domain.Commission, 0, len(drafts))
	for _, draft := range drafts {
		result, upsertErr := commissionRepo.Upsert(ctx, repoargs.UpsertCommission{
			OrderID:                draft.OrderID,
			RecipientID:            draft.RecipientID,
			SellerID:               draft.SellerID,
			Type:                   draft.Type,
			Level:                  draft.Level,
			ProductPrice:           draft.ProductPrice,
			SellerSlabPercentage:   draft.SellerSlabPercentage,
			SellerTotalSalesAtTime: draft.SellerTotalSalesAtTime,
			Amount:                 draft.Amount,
			OrderStatus:            draft.OrderStatus,
		})
		if upsertErr != nil {
			return nil, upsertErr //nolint:wrapcheck
		}

		// pending баланс получателя сдвигается на дельту к прошлой сумме
		delta := result.Commission.Amount.Sub(result.PreviousAmount)
		if !delta.IsZero() {
			if adjErr := userRepo.AdjustPendingCommission(ctx, draft.RecipientID, delta); adjErr != nil {
				return nil, adjErr //nolint:wrapcheck
			}
		}
		records = append(records, *result.Commission)
	}
	return records, nil
}

// ApplyDelivery кредитует все pending комиссии заказа. Каждая комиссия проводится в своей
// транзакции: переход статуса, перенос суммы из pending в available и (для уровня 0)
// зачисление продажи с пересчетом ступени — атомарно для конкретного получателя.
// Частичный сбой безопасен: повтор не продублирует уже проведенные записи.
func (s *CommissionLedgerService) ApplyDelivery(ctx context.Context, orderID int64) error {
	pending, pendingErr := s.commissionRepo.PendingByOrder(ctx, orderID)
	if pendingErr != nil {
		return fmt.Errorf("applying delivery for order %d: %w", orderID, pendingErr)
	}

	for i := range pending {
		commission := pending[i]
		if err := s.creditCommission(ctx, &commission); err != nil {
			return fmt.Errorf("applying delivery for order %d: %w", orderID, err)
		}
	}
	return nil
}

func (s *CommissionLedgerService) creditCommission(ctx context.Context, commission *domain.Commission) error {
	return s.uow.DoRetry(ctx, maxTxAttempts, isRetryableTxErr, func(c context.Context, tx uow.TX) error {
		commissionRepo, commissionRepoErr :=
			uow.GetAs[CommissionRepository](tx, uow.RepositoryName(repoargs.CommissionRepoName))
		if commissionRepoErr != nil {
			return commissionRepoErr //nolint:wrapcheck
		}
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}

		credited, transErr := commissionRepo.Transition(
			c, commission.ID,
			domain.CommissionStatusPending, domain.CommissionStatusCredited,
			domain.OrderStatusDelivered,
		)
		if transErr != nil {
			// запись уже проведена конкурентным или повторным событием — no-op
			if errors.Is(transErr, domain.ErrRecordNotFound) {
				return nil
			}
			return transErr //nolint:wrapcheck
		}

		creditErr := userRepo.CreditCommission(c, repoargs.CommissionCredit{
			UserID: credited.RecipientID,
			Amount: credited.Amount,
			Direct: credited.Level == 0,
		})
		if creditErr != nil {
			return creditErr //nolint:wrapcheck
		}

		if credited.Level != 0 {
			return nil
		}

		// Уровень 0: продажа зачисляется селлеру, ступень пересчитывается для будущих
		// заказов. Поля среза этой комиссии уже заморожены и не трогаются.
		seller, sellerErr := userRepo.FindForUpdate(c, credited.SellerID)
		if sellerErr != nil {
			return sellerErr //nolint:wrapcheck
		}
		newTotal := seller.TotalSales.Add(credited.ProductPrice)
		return userRepo.CreditSale(c, repoargs.SaleCredit{ //nolint:wrapcheck
			UserID:         credited.SellerID,
			Amount:         credited.ProductPrice,
			NewSlabPercent: s.slabs.Resolve(newTotal),
		})
	})
}

// ApplyCancellation аннулирует все pending комиссии заказа: статус cancelled, сумма
// снимается с pending баланса получателя. Уже закредитованные комиссии не трогаются —
// реверс проведенной комиссии лежит вне леджера.
func (s *CommissionLedgerService) ApplyCancellation(ctx context.Context, orderID int64) error {
	pending, pendingErr := s.commissionRepo.PendingByOrder(ctx, orderID)
	if pendingErr != nil {
		return fmt.Errorf("applying cancellation for order %d: %w", orderID, pendingErr)
	}

	for i := range pending {
		commission := pending[i]
		txErr := s.uow.DoRetry(ctx, maxTxAttempts, isRetryableTxErr, func(c context.Context, tx uow.TX) error {
			commissionRepo, commissionRepoErr :=
				uow.GetAs[CommissionRepository](tx, uow.RepositoryName(repoargs.CommissionRepoName))
			if commissionRepoErr != nil {
				return commissionRepoErr //nolint:wrapcheck
			}
			userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
			if userRepoErr != nil {
				return userRepoErr //nolint:wrapcheck
			}

			cancelled, transErr := commissionRepo.Transition(
				c, commission.ID,
				domain.CommissionStatusPending, domain.CommissionStatusCancelled,
				domain.OrderStatusCancelled,
			)
			if transErr != nil {
				if errors.Is(transErr, domain.ErrRecordNotFound) {
					return nil
				}
				return transErr //nolint:wrapcheck
			}

			return userRepo.AdjustPendingCommission( //nolint:wrapcheck
				c, cancelled.RecipientID, cancelled.Amount.Neg())
		})
		if txErr != nil {
			return fmt.Errorf("applying cancellation for order %d: %w", orderID, txErr)
		}
	}
	return nil
}

// AuditOrderStatus фиксирует промежуточный статус заказа в аудит-колонке незакрытых комиссий.
func (s *CommissionLedgerService) AuditOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatusType) error {
	if err := s.commissionRepo.SetOrderStatusAudit(ctx, orderID, status); err != nil {
		return fmt.Errorf("auditing order %d status: %w", orderID, err)
	}
	return nil
}

// SettleOrder доигрывает леджерный переход для заказа в терминальном статусе.
// Используется фоновым процессором.
func (s *CommissionLedgerService) SettleOrder(ctx context.Context, order *domain.Order) error {
	switch order.Status {
	case domain.OrderStatusDelivered:
		return s.ApplyDelivery(ctx, order.ID)
	case domain.OrderStatusCancelled:
		return s.ApplyCancellation(ctx, order.ID)
	default:
		return domain.NewValidationError("status", fmt.Sprintf("order %d is not terminal: %s", order.ID, order.Status))
	}
}

// UnsettledOrders возвращает заказы в терминальном статусе с непроведенными комиссиями.
func (s *CommissionLedgerService) UnsettledOrders(ctx context.Context, limit uint) ([]domain.Order, error) {
	orders, err := s.orderRepo.UnsettledTerminal(ctx, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

// List возвращает страницу комиссий и общее количество записей под фильтром.
func (s *CommissionLedgerService) List(ctx context.Context, filter repoargs.CommissionFilter) ([]domain.Commission, int64, error) {
	commissions, total, err := s.commissionRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err //nolint:wrapcheck
	}
	return commissions, total, nil
}

// UserCommissionStats агрегаты леджера получателя вместе с текущими балансами юзера.
type UserCommissionStats struct {
	Stats               repoargs.CommissionStats
	TotalSales          decimal.Decimal
	CommissionSlab      decimal.Decimal
	PendingCommission   decimal.Decimal
	AvailableCommission decimal.Decimal
}

func (s *CommissionLedgerService) StatsByUser(ctx context.Context, userID int64) (*UserCommissionStats, error) {
	user, userErr := s.userRepo.Find(ctx, userID)
	if userErr != nil {
		return nil, userErr //nolint:wrapcheck
	}
	stats, statsErr := s.commissionRepo.StatsByRecipient(ctx, userID)
	if statsErr != nil {
		return nil, statsErr //nolint:wrapcheck
	}
	return &UserCommissionStats{
		Stats:               *stats,
		TotalSales:          user.TotalSales,
		CommissionSlab:      user.CommissionSlab,
		PendingCommission:   user.PendingCommission,
		AvailableCommission: user.AvailableCommission,
	}, nil
}
