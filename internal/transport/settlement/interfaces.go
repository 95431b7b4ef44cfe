package settlement

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-commission/internal/domain"
)

// Servicer сервисный слой, через который процессор находит и проводит недопроведенные заказы.
type Servicer interface {
	UnsettledOrders(ctx context.Context, limit uint) ([]domain.Order, error)
	SettleOrder(ctx context.Context, order *domain.Order) error
}
