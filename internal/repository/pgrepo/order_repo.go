package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-commission/internal/domain"
	"github.com/fsdevblog/groph-commission/internal/repository/repoargs"
	"github.com/fsdevblog/groph-commission/pkg/uow"
	"github.com/shopspring/decimal"
)

const orderColumns = `id, created_at, updated_at, seller_id, total_amount, status`

type OrderRepository struct {
	db uow.DBTX
}

func NewOrderRepository(db uow.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func (o *OrderRepository) Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	row := o.db.QueryRow(ctx, `
		INSERT INTO orders (seller_id, total_amount, status)
		VALUES ($1, $2, $3)
		RETURNING `+orderColumns,
		args.SellerID, args.TotalAmount, domain.OrderStatusProcessing)

	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order for seller %d", args.SellerID)
	}
	return order, nil
}

func (o *OrderRepository) Find(ctx context.Context, id int64) (*domain.Order, error) {
	row := o.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "finding order with id %d", id)
	}
	return order, nil
}

// UpdateAmount меняет сумму еще не закрытого заказа. Для заказа в терминальном статусе
// строка не обновится и вернется ErrRecordNotFound — вызывающий разбирает причину.
func (o *OrderRepository) UpdateAmount(ctx context.Context, id int64, amount decimal.Decimal) (*domain.Order, error) {
	row := o.db.QueryRow(ctx, `
		UPDATE orders SET total_amount = $2, updated_at = now()
		WHERE id = $1 AND status NOT IN ($3, $4)
		RETURNING `+orderColumns,
		id, amount, domain.OrderStatusDelivered, domain.OrderStatusCancelled)

	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "updating amount of order %d", id)
	}
	return order, nil
}

// UpdateStatus переводит заказ в новый статус. Из терминального статуса перехода нет:
// строка не обновится и вернется ErrRecordNotFound.
func (o *OrderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatusType) (*domain.Order, error) {
	row := o.db.QueryRow(ctx, `
		UPDATE orders SET status = $2, updated_at = now()
		WHERE id = $1 AND status NOT IN ($3, $4)
		RETURNING `+orderColumns,
		id, status, domain.OrderStatusDelivered, domain.OrderStatusCancelled)

	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "updating status of order %d", id)
	}
	return order, nil
}

// UnsettledTerminal возвращает заказы в терминальном статусе, у которых остались
// pending комиссии. Такие появляются после сбоя между переводом заказа и проводкой
// леджера; фоновый процессор доигрывает их переходы.
func (o *OrderRepository) UnsettledTerminal(ctx context.Context, limit uint) ([]domain.Order, error) {
	safeLimit, safeLimitErr := safeConvertUintToInt32(limit)
	if safeLimitErr != nil {
		return nil, convertErr(safeLimitErr, "converting limit to int32")
	}

	rows, err := o.db.Query(ctx, `
		SELECT `+orderColumns+` FROM orders o
		WHERE o.status IN ($1, $2)
			AND EXISTS (SELECT 1 FROM commissions c WHERE c.order_id = o.id AND c.status = $3)
		ORDER BY o.updated_at
		LIMIT $4`,
		domain.OrderStatusDelivered, domain.OrderStatusCancelled, domain.CommissionStatusPending, safeLimit)
	if err != nil {
		return nil, convertErr(err, "getting unsettled terminal orders")
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning unsettled terminal orders")
		}
		orders = append(orders, *order)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting unsettled terminal orders")
	}
	return orders, nil
}

// TeamStats агрегаты по заказам перечисленных селлеров: количество заказов (без отмененных)
// и сумма доставленных продаж.
func (o *OrderRepository) TeamStats(ctx context.Context, sellerIDs []int64) (*repoargs.TeamOrderStats, error) {
	var stats repoargs.TeamOrderStats
	err := o.db.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE status <> $2),
			COALESCE(SUM(total_amount) FILTER (WHERE status = $3), 0)
		FROM orders WHERE seller_id = ANY($1)`,
		sellerIDs, domain.OrderStatusCancelled, domain.OrderStatusDelivered).
		Scan(&stats.OrdersCount, &stats.DeliveredSales)
	if err != nil {
		return nil, convertErr(err, "getting team order stats")
	}
	return &stats, nil
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID, &order.CreatedAt, &order.UpdatedAt,
		&order.SellerID, &order.TotalAmount, &order.Status,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
