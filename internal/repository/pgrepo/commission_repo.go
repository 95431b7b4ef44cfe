package pgrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-commission/internal/domain"
	"github.com/fsdevblog/groph-commission/internal/repository/repoargs"
	"github.com/fsdevblog/groph-commission/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const commissionColumns = `id, created_at, updated_at, order_id, recipient_id, seller_id, ctype, level,
	product_price, seller_slab_percentage, seller_total_sales_at_time, amount, status, order_status`

type CommissionRepository struct {
	db uow.DBTX
}

func NewCommissionRepository(db uow.DBTX) *CommissionRepository {
	return &CommissionRepository{db: db}
}

// Upsert идемпотентно записывает черновик комиссии по ключу (order_id, recipient_id, level).
// Если записи нет — вставляет; если есть и она pending — обновляет на месте; если она уже
// закредитована или отменена — возвращает ErrConflict, проведенные записи неизменяемы.
// Вызывается только внутри транзакции: существующая строка берется под блокировку.
func (c *CommissionRepository) Upsert(ctx context.Context, args repoargs.UpsertCommission) (*repoargs.UpsertResult, error) {
	var existingID int64
	var existingStatus domain.CommissionStatusType
	var existingAmount decimal.Decimal

	selectErr := c.db.QueryRow(ctx, `
		SELECT id, status, amount FROM commissions
		WHERE order_id = $1 AND recipient_id = $2 AND level = $3
		FOR UPDATE`,
		args.OrderID, args.RecipientID, args.Level).
		Scan(&existingID, &existingStatus, &existingAmount)

	if selectErr != nil && !errors.Is(selectErr, pgx.ErrNoRows) {
		return nil, convertErr(selectErr, "locking commission for order %d recipient %d level %d",
			args.OrderID, args.RecipientID, args.Level)
	}

	if errors.Is(selectErr, pgx.ErrNoRows) {
		row := c.db.QueryRow(ctx, `
			INSERT INTO commissions (order_id, recipient_id, seller_id, ctype, level, product_price,
				seller_slab_percentage, seller_total_sales_at_time, amount, status, order_status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING `+commissionColumns,
			args.OrderID, args.RecipientID, args.SellerID, args.Type, args.Level, args.ProductPrice,
			args.SellerSlabPercentage, args.SellerTotalSalesAtTime, args.Amount,
			domain.CommissionStatusPending, args.OrderStatus)

		commission, err := scanCommission(row)
		if err != nil {
			return nil, convertErr(err, "inserting commission for order %d recipient %d level %d",
				args.OrderID, args.RecipientID, args.Level)
		}
		return &repoargs.UpsertResult{Commission: commission, PreviousAmount: decimal.Zero}, nil
	}

	if existingStatus != domain.CommissionStatusPending {
		return nil, convertErr(
			fmt.Errorf("commission %d is %s: %w", existingID, existingStatus, domain.ErrConflict),
			"upserting commission for order %d recipient %d level %d",
			args.OrderID, args.RecipientID, args.Level)
	}

	row := c.db.QueryRow(ctx, `
		UPDATE commissions SET product_price = $2, seller_slab_percentage = $3,
			seller_total_sales_at_time = $4, amount = $5, order_status = $6, updated_at = now()
		WHERE id = $1
		RETURNING `+commissionColumns,
		existingID, args.ProductPrice, args.SellerSlabPercentage,
		args.SellerTotalSalesAtTime, args.Amount, args.OrderStatus)

	commission, err := scanCommission(row)
	if err != nil {
		return nil, convertErr(err, "updating commission %d", existingID)
	}
	return &repoargs.UpsertResult{Commission: commission, PreviousAmount: existingAmount}, nil
}

// Transition выполняет CAS переход статуса комиссии. Если запись уже не в статусе from,
// строка не обновится и вернется ErrRecordNotFound — для повторной доставки события это
// штатный случай, вызывающий трактует его как no-op.
func (c *CommissionRepository) Transition(
	ctx context.Context,
	id int64,
	from, to domain.CommissionStatusType,
	orderStatus domain.OrderStatusType,
) (*domain.Commission, error) {
	row := c.db.QueryRow(ctx, `
		UPDATE commissions SET status = $3, order_status = $4, updated_at = now()
		WHERE id = $1 AND status = $2
		RETURNING `+commissionColumns,
		id, from, to, orderStatus)

	commission, err := scanCommission(row)
	if err != nil {
		return nil, convertErr(err, "transitioning commission %d from %s to %s", id, from, to)
	}
	return commission, nil
}

func (c *CommissionRepository) GetByOrder(ctx context.Context, orderID int64) ([]domain.Commission, error) {
	rows, err := c.db.Query(ctx,
		`SELECT `+commissionColumns+` FROM commissions WHERE order_id = $1 ORDER BY level`, orderID)
	if err != nil {
		return nil, convertErr(err, "getting commissions of order %d", orderID)
	}
	return collectCommissions(rows, "getting commissions of order %d", orderID)
}

func (c *CommissionRepository) PendingByOrder(ctx context.Context, orderID int64) ([]domain.Commission, error) {
	rows, err := c.db.Query(ctx, `
		SELECT `+commissionColumns+` FROM commissions
		WHERE order_id = $1 AND status = $2 ORDER BY level`,
		orderID, domain.CommissionStatusPending)
	if err != nil {
		return nil, convertErr(err, "getting pending commissions of order %d", orderID)
	}
	return collectCommissions(rows, "getting pending commissions of order %d", orderID)
}

// SetOrderStatusAudit обновляет аудит-колонку order_status у незакрытых комиссий заказа.
// Используется для промежуточных статусов (ready_to_ship, shipped), которые не меняют
// состояние самой комиссии.
func (c *CommissionRepository) SetOrderStatusAudit(ctx context.Context, orderID int64, status domain.OrderStatusType) error {
	_, err := c.db.Exec(ctx, `
		UPDATE commissions SET order_status = $2, updated_at = now()
		WHERE order_id = $1 AND status = $3`,
		orderID, status, domain.CommissionStatusPending)
	if err != nil {
		return convertErr(err, "updating order status audit for order %d", orderID)
	}
	return nil
}

// List возвращает страницу комиссий по фильтру и общее количество записей под фильтром.
func (c *CommissionRepository) List(ctx context.Context, filter repoargs.CommissionFilter) ([]domain.Commission, int64, error) {
	where := ` WHERE 1=1`
	args := make([]any, 0, 3)

	if filter.RecipientID != nil {
		args = append(args, *filter.RecipientID)
		where += fmt.Sprintf(" AND recipient_id = $%d", len(args))
	}
	if filter.OrderID != nil {
		args = append(args, *filter.OrderID)
		where += fmt.Sprintf(" AND order_id = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	var total int64
	if err := c.db.QueryRow(ctx, `SELECT COUNT(*) FROM commissions`+where, args...).Scan(&total); err != nil {
		return nil, 0, convertErr(err, "counting commissions")
	}

	page := filter.Page
	if page == 0 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage == 0 {
		perPage = defaultPerPage
	}

	args = append(args, perPage, (page-1)*perPage)
	query := `SELECT ` + commissionColumns + ` FROM commissions` + where +
		fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := c.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, convertErr(err, "listing commissions")
	}
	commissions, collectErr := collectCommissions(rows, "listing commissions")
	if collectErr != nil {
		return nil, 0, collectErr
	}
	return commissions, total, nil
}

const defaultPerPage uint = 20

// StatsByRecipient агрегаты получателя: количество и суммы по статусам, плюс разбивка
// закредитованного по типу (direct/referral).
func (c *CommissionRepository) StatsByRecipient(ctx context.Context, recipientID int64) (*repoargs.CommissionStats, error) {
	var stats repoargs.CommissionStats
	err := c.db.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE status = $2),
			COALESCE(SUM(amount) FILTER (WHERE status = $2), 0),
			COUNT(*) FILTER (WHERE status = $3),
			COALESCE(SUM(amount) FILTER (WHERE status = $3), 0),
			COUNT(*) FILTER (WHERE status = $4),
			COALESCE(SUM(amount) FILTER (WHERE status = $4), 0),
			COALESCE(SUM(amount) FILTER (WHERE status = $3 AND ctype = $5), 0),
			COALESCE(SUM(amount) FILTER (WHERE status = $3 AND ctype = $6), 0)
		FROM commissions WHERE recipient_id = $1`,
		recipientID,
		domain.CommissionStatusPending, domain.CommissionStatusCredited, domain.CommissionStatusCancelled,
		domain.CommissionTypeDirect, domain.CommissionTypeReferral).
		Scan(
			&stats.PendingCount, &stats.PendingTotal,
			&stats.CreditedCount, &stats.CreditedTotal,
			&stats.CancelledCount, &stats.CancelledTotal,
			&stats.DirectCredited, &stats.ReferralCredited,
		)
	if err != nil {
		return nil, convertErr(err, "getting commission stats of user %d", recipientID)
	}
	return &stats, nil
}

// TeamCreditedSum сумма закредитованных комиссий, которые recipientID получил с продаж
// перечисленных селлеров.
func (c *CommissionRepository) TeamCreditedSum(ctx context.Context, recipientID int64, sellerIDs []int64) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := c.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM commissions
		WHERE recipient_id = $1 AND seller_id = ANY($2) AND status = $3`,
		recipientID, sellerIDs, domain.CommissionStatusCredited).
		Scan(&sum)
	if err != nil {
		return decimal.Zero, convertErr(err, "summing team commissions of user %d", recipientID)
	}
	return sum, nil
}

func collectCommissions(rows pgx.Rows, msgFormat string, msgArgs ...any) ([]domain.Commission, error) {
	defer rows.Close()

	var commissions []domain.Commission
	for rows.Next() {
		commission, scanErr := scanCommission(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, msgFormat, msgArgs...)
		}
		commissions = append(commissions, *commission)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, msgFormat, msgArgs...)
	}
	return commissions, nil
}

func scanCommission(row rowScanner) (*domain.Commission, error) {
	var commission domain.Commission
	err := row.Scan(
		&commission.ID, &commission.CreatedAt, &commission.UpdatedAt,
		&commission.OrderID, &commission.RecipientID, &commission.SellerID,
		&commission.Type, &commission.Level,
		&commission.ProductPrice, &commission.SellerSlabPercentage, &commission.SellerTotalSalesAtTime,
		&commission.Amount, &commission.Status, &commission.OrderStatus,
	)
	if err != nil {
		return nil, err
	}
	return &commission, nil
}
