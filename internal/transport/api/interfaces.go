package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-commission/internal/domain"
	"github.com/fsdevblog/groph-commission/internal/repository/repoargs"
	"github.com/fsdevblog/groph-commission/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Create(ctx context.Context, username string, referredBy *int64) (*domain.User, error)
	Find(ctx context.Context, id int64) (*domain.User, error)
}

type GraphServicer interface {
	RegisterReferral(ctx context.Context, userID, referrerID int64) error
}

type OrderServicer interface {
	Create(ctx context.Context, sellerID int64, amount decimal.Decimal) (*domain.Order, []domain.Commission, error)
	UpdateAmount(ctx context.Context, orderID int64, amount decimal.Decimal) (*domain.Order, []domain.Commission, error)
	HandleStatusChange(ctx context.Context, orderID int64, newStatus domain.OrderStatusType) (*domain.Order, error)
	Find(ctx context.Context, orderID int64) (*domain.Order, []domain.Commission, error)
}

type LedgerServicer interface {
	List(ctx context.Context, filter repoargs.CommissionFilter) ([]domain.Commission, int64, error)
	StatsByUser(ctx context.Context, userID int64) (*service.UserCommissionStats, error)
}

type TeamServicer interface {
	TeamEarnings(ctx context.Context, rootID int64) (*service.TeamEarnings, error)
}
