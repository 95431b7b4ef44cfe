package service

import (
	"github.com/fsdevblog/groph-commission/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CommissionCalculator чистый расчет черновиков комиссий по заказу. Никаких побочных
// эффектов: срез селлера и реферальная цепочка приходят снаружи, результат — черновики
// с зафиксированными полями среза.
type CommissionCalculator struct {
	slabs    domain.SlabTable
	schedule domain.ReferralSchedule
}

func NewCommissionCalculator(slabs domain.SlabTable, schedule domain.ReferralSchedule) *CommissionCalculator {
	return &CommissionCalculator{
		slabs:    slabs,
		schedule: schedule,
	}
}

// ComputeDrafts строит черновики: один direct уровня 0 для селлера и по одному referral
// на каждого предка из chain (ближайший — уровень 1). Ставка разрешается по продажам
// селлера ДО этого заказа и замораживается в черновиках: последующая смена ступени
// селлера на уже рассчитанные комиссии не влияет.
//
// Цепочка может быть короче MaxReferralDepth (или пустой — тогда будет только direct
// черновик); длиннее схемы уровней она не обрабатывается.
func (c *CommissionCalculator) ComputeDrafts(
	order *domain.Order,
	seller domain.SellerSnapshot,
	chain []int64,
) []domain.CommissionDraft {
	rate := c.slabs.Resolve(seller.TotalSales)
	base := order.TotalAmount.Mul(rate).Div(hundred)

	drafts := make([]domain.CommissionDraft, 0, len(chain)+1)
	drafts = append(drafts, domain.CommissionDraft{
		RecipientID:            seller.UserID,
		SellerID:               seller.UserID,
		OrderID:                order.ID,
		Type:                   domain.CommissionTypeDirect,
		Level:                  0,
		ProductPrice:           order.TotalAmount,
		SellerSlabPercentage:   rate,
		SellerTotalSalesAtTime: seller.TotalSales,
		Amount:                 base,
		OrderStatus:            order.Status,
	})

	for i, ancestorID := range chain {
		level := i + 1
		if level > c.schedule.Levels() {
			break
		}
		multiplier := c.schedule.MultiplierPercent(level)
		drafts = append(drafts, domain.CommissionDraft{
			RecipientID:            ancestorID,
			SellerID:               seller.UserID,
			OrderID:                order.ID,
			Type:                   domain.CommissionTypeReferral,
			Level:                  int16(level), //nolint:gosec
			ProductPrice:           order.TotalAmount,
			SellerSlabPercentage:   rate,
			SellerTotalSalesAtTime: seller.TotalSales,
			Amount:                 base.Mul(multiplier).Div(hundred),
			OrderStatus:            order.Status,
		})
	}
	return drafts
}
