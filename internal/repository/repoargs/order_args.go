package repoargs

import (
	"github.com/shopspring/decimal"
)

type CreateOrder struct {
	SellerID    int64
	TotalAmount decimal.Decimal
}

// TeamOrderStats агрегаты по заказам продавцов поддерева.
type TeamOrderStats struct {
	OrdersCount    int64
	DeliveredSales decimal.Decimal
}
