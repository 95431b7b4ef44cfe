package repoargs

import "github.com/shopspring/decimal"

type CreateUser struct {
	Username   string
	ReferredBy *int64
}

// CommissionCredit атомарное кредитование получателя: amount переезжает из pending в available
// и добавляется к пожизненному счетчику (direct либо referral в зависимости от Direct).
type CommissionCredit struct {
	UserID int64
	Amount decimal.Decimal
	Direct bool
}

// SaleCredit зачисление продажи селлеру после доставки: total_sales += Amount,
// commission_slab = NewSlabPercent (ставка для будущих заказов).
type SaleCredit struct {
	UserID         int64
	Amount         decimal.Decimal
	NewSlabPercent decimal.Decimal
}
