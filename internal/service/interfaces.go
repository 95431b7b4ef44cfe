package service

import (
	"context"

	"github.com/fsdevblog/groph-commission/internal/domain"
	"github.com/fsdevblog/groph-commission/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UserRepository interface {
	Create(ctx context.Context, args repoargs.CreateUser, slabPercent decimal.Decimal) (*domain.User, error)
	Find(ctx context.Context, id int64) (*domain.User, error)
	FindForUpdate(ctx context.Context, id int64) (*domain.User, error)
	SetReferrer(ctx context.Context, userID, referrerID int64) error
	ReferrerID(ctx context.Context, userID int64) (*int64, error)
	ChildrenIDs(ctx context.Context, parentIDs []int64) ([]int64, error)
	AdjustPendingCommission(ctx context.Context, userID int64, delta decimal.Decimal) error
	CreditCommission(ctx context.Context, args repoargs.CommissionCredit) error
	CreditSale(ctx context.Context, args repoargs.SaleCredit) error
}

type OrderRepository interface {
	Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error)
	Find(ctx context.Context, id int64) (*domain.Order, error)
	UpdateAmount(ctx context.Context, id int64, amount decimal.Decimal) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatusType) (*domain.Order, error)
	UnsettledTerminal(ctx context.Context, limit uint) ([]domain.Order, error)
	TeamStats(ctx context.Context, sellerIDs []int64) (*repoargs.TeamOrderStats, error)
}

type CommissionRepository interface {
	Upsert(ctx context.Context, args repoargs.UpsertCommission) (*repoargs.UpsertResult, error)
	Transition(
		ctx context.Context,
		id int64,
		from, to domain.CommissionStatusType,
		orderStatus domain.OrderStatusType,
	) (*domain.Commission, error)
	GetByOrder(ctx context.Context, orderID int64) ([]domain.Commission, error)
	PendingByOrder(ctx context.Context, orderID int64) ([]domain.Commission, error)
	SetOrderStatusAudit(ctx context.Context, orderID int64, status domain.OrderStatusType) error
	List(ctx context.Context, filter repoargs.CommissionFilter) ([]domain.Commission, int64, error)
	StatsByRecipient(ctx context.Context, recipientID int64) (*repoargs.CommissionStats, error)
	TeamCreditedSum(ctx context.Context, recipientID int64, sellerIDs []int64) (decimal.Decimal, error)
}
