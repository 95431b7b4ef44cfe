package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-commission/internal/domain"
	"github.com/fsdevblog/groph-commission/internal/repository/repoargs"
	"github.com/fsdevblog/groph-commission/pkg/uow"
	"github.com/shopspring/decimal"
)

const userColumns = `id, created_at, updated_at, username, referred_by, total_sales, commission_slab,
	direct_commission_earned, referral_commission_earned, pending_commission, available_commission`

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (u *UserRepository) Create(ctx context.Context, args repoargs.CreateUser, slabPercent decimal.Decimal) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		INSERT INTO users (username, referred_by, commission_slab)
		VALUES ($1, $2, $3)
		RETURNING `+userColumns,
		args.Username, args.ReferredBy, slabPercent)

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user `%s`", args.Username)
	}
	return user, nil
}

func (u *UserRepository) Find(ctx context.Context, id int64) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user with id %d", id)
	}
	return user, nil
}

// FindForUpdate читает юзера под блокировкой строки. Сериализует последовательность
// чтение среза -> расчет комиссий -> запись новых продаж по конкретному селлеру:
// два конкурентных заказа одного селлера не прочитают один и тот же total_sales.
func (u *UserRepository) FindForUpdate(ctx context.Context, id int64) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "locking user with id %d", id)
	}
	return user, nil
}

// SetReferrer проставляет реферальную связь. Связь может быть установлена лишь однажды:
// если referred_by уже заполнен, вернется ErrConflict.
func (u *UserRepository) SetReferrer(ctx context.Context, userID, referrerID int64) error {
	tag, err := u.db.Exec(ctx, `
		UPDATE users SET referred_by = $2, updated_at = now()
		WHERE id = $1 AND referred_by IS NULL`,
		userID, referrerID)
	if err != nil {
		return convertErr(err, "setting referrer %d for user %d", referrerID, userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(domain.ErrConflict, "setting referrer %d for user %d", referrerID, userID)
	}
	return nil
}

func (u *UserRepository) ReferrerID(ctx context.Context, userID int64) (*int64, error) {
	var referredBy *int64
	err := u.db.QueryRow(ctx, `SELECT referred_by FROM users WHERE id = $1`, userID).Scan(&referredBy)
	if err != nil {
		return nil, convertErr(err, "getting referrer of user %d", userID)
	}
	return referredBy, nil
}

// ChildrenIDs возвращает id юзеров, приглашенных кем-либо из parentIDs. Один уровень BFS
// при обходе поддерева.
func (u *UserRepository) ChildrenIDs(ctx context.Context, parentIDs []int64) ([]int64, error) {
	rows, err := u.db.Query(ctx, `SELECT id FROM users WHERE referred_by = ANY($1) ORDER BY id`, parentIDs)
	if err != nil {
		return nil, convertErr(err, "getting children of users %v", parentIDs)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, convertErr(scanErr, "scanning children of users %v", parentIDs)
		}
		ids = append(ids, id)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting children of users %v", parentIDs)
	}
	return ids, nil
}

// AdjustPendingCommission сдвигает pending баланс на delta (может быть отрицательной
// при перерасчете заказа в меньшую сторону). Арифметика выполняется в SQL,
// read-modify-write атомарен на уровне строки.
func (u *UserRepository) AdjustPendingCommission(ctx context.Context, userID int64, delta decimal.Decimal) error {
	tag, err := u.db.Exec(ctx, `
		UPDATE users SET pending_commission = pending_commission + $2, updated_at = now()
		WHERE id = $1`,
		userID, delta)
	if err != nil {
		return convertErr(err, "adjusting pending commission of user %d", userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(domain.ErrRecordNotFound, "adjusting pending commission of user %d", userID)
	}
	return nil
}

// CreditCommission переносит сумму из pending в available и увеличивает пожизненный счетчик.
func (u *UserRepository) CreditCommission(ctx context.Context, args repoargs.CommissionCredit) error {
	earnedColumn := "referral_commission_earned"
	if args.Direct {
		earnedColumn = "direct_commission_earned"
	}
	tag, err := u.db.Exec(ctx, `
		UPDATE users SET
			pending_commission = pending_commission - $2,
			available_commission = available_commission + $2,
			`+earnedColumn+` = `+earnedColumn+` + $2,
			updated_at = now()
		WHERE id = $1`,
		args.UserID, args.Amount)
	if err != nil {
		return convertErr(err, "crediting commission to user %d", args.UserID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(domain.ErrRecordNotFound, "crediting commission to user %d", args.UserID)
	}
	return nil
}

// CreditSale зачисляет продажу селлеру и фиксирует новую ставку для будущих заказов.
func (u *UserRepository) CreditSale(ctx context.Context, args repoargs.SaleCredit) error {
	tag, err := u.db.Exec(ctx, `
		UPDATE users SET
			total_sales = total_sales + $2,
			commission_slab = $3,
			updated_at = now()
		WHERE id = $1`,
		args.UserID, args.Amount, args.NewSlabPercent)
	if err != nil {
		return convertErr(err, "crediting sale to user %d", args.UserID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(domain.ErrRecordNotFound, "crediting sale to user %d", args.UserID)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Username, &user.ReferredBy,
		&user.TotalSales, &user.CommissionSlab,
		&user.DirectCommissionEarned, &user.ReferralCommissionEarned,
		&user.PendingCommission, &user.AvailableCommission,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
