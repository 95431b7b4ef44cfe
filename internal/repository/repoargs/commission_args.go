package repoargs

import (
	"github.com/fsdevblog/groph-commission/internal/domain"
	"github.com/shopspring/decimal"
)

// UpsertCommission аргументы идемпотентной записи черновика в леджер.
// Ключ (OrderID, RecipientID, Level) уникален.
type UpsertCommission struct {
	OrderID                int64
	RecipientID            int64
	SellerID               int64
	Type                   domain.CommissionType
	Level                  int16
	ProductPrice           decimal.Decimal
	SellerSlabPercentage   decimal.Decimal
	SellerTotalSalesAtTime decimal.Decimal
	Amount                 decimal.Decimal
	OrderStatus            domain.OrderStatusType
}

// UpsertResult помимо записи возвращает сумму, которая числилась в ней до апсерта.
// Дельта Amount-PreviousAmount нужна для корректировки pending баланса получателя.
type UpsertResult struct {
	Commission     *domain.Commission
	PreviousAmount decimal.Decimal
}

type CommissionFilter struct {
	RecipientID *int64
	OrderID     *int64
	Status      *domain.CommissionStatusType
	Page        uint
	PerPage     uint
}

// CommissionStats агрегаты по комиссиям получателя, разрез по статусу и типу.
type CommissionStats struct {
	PendingCount     int64
	PendingTotal     decimal.Decimal
	CreditedCount    int64
	CreditedTotal    decimal.Decimal
	CancelledCount   int64
	CancelledTotal   decimal.Decimal
	DirectCredited   decimal.Decimal
	ReferralCredited decimal.Decimal
}
