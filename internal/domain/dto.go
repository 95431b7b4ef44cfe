package domain

type OrderStatusType string

const (
	OrderStatusProcessing  OrderStatusType = "processing"
	OrderStatusReadyToShip OrderStatusType = "ready_to_ship"
	OrderStatusShipped     OrderStatusType = "shipped"
	OrderStatusDelivered   OrderStatusType = "delivered"
	OrderStatusCancelled   OrderStatusType = "cancelled"
)

// IsTerminal доставленный или отмененный заказ больше не меняет статус.
func (s OrderStatusType) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusReadyToShip, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type CommissionType string

const (
	CommissionTypeDirect   CommissionType = "direct"
	CommissionTypeReferral CommissionType = "referral"
)

type CommissionStatusType string

const (
	CommissionStatusPending   CommissionStatusType = "pending"
	CommissionStatusCredited  CommissionStatusType = "credited"
	CommissionStatusCancelled CommissionStatusType = "cancelled"
)
