package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

type User struct {
	ID         int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Username   string
	ReferredBy *int64

	// TotalSales монотонно неубывающий накопитель продаж. Увеличивается только при доставке заказа.
	TotalSales decimal.Decimal
	// CommissionSlab текущая ставка комиссии в процентах. Пересчитывается после изменения TotalSales
	// и применяется только к будущим заказам.
	CommissionSlab decimal.Decimal

	DirectCommissionEarned   decimal.Decimal
	ReferralCommissionEarned decimal.Decimal
	PendingCommission        decimal.Decimal
	AvailableCommission      decimal.Decimal
}

type Order struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	SellerID    int64
	TotalAmount decimal.Decimal
	Status      OrderStatusType
}

// Commission запись в леджере комиссий. Поля среза (ProductPrice, SellerSlabPercentage,
// SellerTotalSalesAtTime) фиксируются в момент расчета и после кредитования не пересчитываются.
// Кортеж (OrderID, RecipientID, Level) уникален: перерасчет обновляет запись, а не дублирует её.
type Commission struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	OrderID     int64
	RecipientID int64
	SellerID    int64
	Type        CommissionType
	// Level 0 — собственная продажа селлера, 1..4 — предки в реферальной цепочке.
	Level                  int16
	ProductPrice           decimal.Decimal
	SellerSlabPercentage   decimal.Decimal
	SellerTotalSalesAtTime decimal.Decimal
	Amount                 decimal.Decimal
	Status                 CommissionStatusType
	// OrderStatus последний увиденный статус заказа, для аудита.
	OrderStatus OrderStatusType
}

// SellerSnapshot срез данных селлера, прочитанный под блокировкой строки перед расчетом комиссий.
type SellerSnapshot struct {
	UserID         int64
	TotalSales     decimal.Decimal
	CommissionSlab decimal.Decimal
	ReferredBy     *int64
}

// CommissionDraft результат работы калькулятора до записи в леджер.
type CommissionDraft struct {
	RecipientID            int64
	SellerID               int64
	OrderID                int64
	Type                   CommissionType
	Level                  int16
	ProductPrice           decimal.Decimal
	SellerSlabPercentage   decimal.Decimal
	SellerTotalSalesAtTime decimal.Decimal
	Amount                 decimal.Decimal
	OrderStatus            OrderStatusType
}
