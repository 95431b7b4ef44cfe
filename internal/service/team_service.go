package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-commission/internal/repository/repoargs"
	"github.com/fsdevblog/groph-commission/pkg/uow"
	"github.com/shopspring/decimal"
)

// TeamEarnings агрегаты по команде: продажи и заказы всего поддерева плюс комиссии,
// которые корень заработал именно с продаж команды.
type TeamEarnings struct {
	TeamSize                int64
	TotalOrders             int64
	TotalSales              decimal.Decimal
	TotalCommissionFromTeam decimal.Decimal
}

// TeamAggregatorService роллапы по полному поддереву юзера. Только чтение, вне пути записи;
// блокировок нет — небольшое отставание от конкурентных проводок допустимо.
type TeamAggregatorService struct {
	graph          *ReferralGraphService
	orderRepo      OrderRepository
	commissionRepo CommissionRepository
}

func NewTeamAggregatorService(u uow.UOW, graph *ReferralGraphService) (*TeamAggregatorService, error) {
	orderRepo, orderRepoErr := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if orderRepoErr != nil {
		return nil, orderRepoErr
	}
	commissionRepo, commissionRepoErr :=
		uow.GetRepositoryAs[CommissionRepository](u, uow.RepositoryName(repoargs.CommissionRepoName))
	if commissionRepoErr != nil {
		return nil, commissionRepoErr
	}
	return &TeamAggregatorService{
		graph:          graph,
		orderRepo:      orderRepo,
		commissionRepo: commissionRepo,
	}, nil
}

// TeamEarnings собирает роллап по поддереву rootID. Сам корень в команду не входит:
// его собственные продажи и direct комиссии в роллап не попадают.
func (t *TeamAggregatorService) TeamEarnings(ctx context.Context, rootID int64) (*TeamEarnings, error) {
	subtree, subtreeErr := t.graph.FullSubtree(ctx, rootID)
	if subtreeErr != nil {
		return nil, fmt.Errorf("team earnings of user %d: %w", rootID, subtreeErr)
	}

	earnings := TeamEarnings{
		TeamSize:                int64(len(subtree)),
		TotalSales:              decimal.Zero,
		TotalCommissionFromTeam: decimal.Zero,
	}
	if len(subtree) == 0 {
		return &earnings, nil
	}

	orderStats, orderStatsErr := t.orderRepo.TeamStats(ctx, subtree)
	if orderStatsErr != nil {
		return nil, fmt.Errorf("team earnings of user %d: %w", rootID, orderStatsErr)
	}
	earnings.TotalOrders = orderStats.OrdersCount
	earnings.TotalSales = orderStats.DeliveredSales

	commissionSum, commissionSumErr := t.commissionRepo.TeamCreditedSum(ctx, rootID, subtree)
	if commissionSumErr != nil {
		return nil, fmt.Errorf("team earnings of user %d: %w", rootID, commissionSumErr)
	}
	earnings.TotalCommissionFromTeam = commissionSum

	return &earnings, nil
}
