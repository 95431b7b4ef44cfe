package service

import (
	"fmt"

	"github.com/fsdevblog/groph-commission/internal/domain"
	"github.com/fsdevblog/groph-commission/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	UserService   *UserService
	GraphService  *ReferralGraphService
	OrderService  *OrderService
	LedgerService *CommissionLedgerService
	TeamService   *TeamAggregatorService
}

func Factory(
	unitOfWork uow.UOW,
	slabs domain.SlabTable,
	schedule domain.ReferralSchedule,
	l *logrus.Logger,
) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, slabs)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	graphService, graphServiceErr := NewReferralGraphService(unitOfWork)
	if graphServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", graphServiceErr.Error())
	}

	calc := NewCommissionCalculator(slabs, schedule)

	ledgerService, ledgerServiceErr := NewCommissionLedgerService(unitOfWork, graphService, calc, slabs, l)
	if ledgerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", ledgerServiceErr.Error())
	}

	orderService, orderServiceErr := NewOrderService(unitOfWork, ledgerService)
	if orderServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", orderServiceErr.Error())
	}

	teamService, teamServiceErr := NewTeamAggregatorService(unitOfWork, graphService)
	if teamServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", teamServiceErr.Error())
	}

	return &AppServices{
		UserService:   userService,
		GraphService:  graphService,
		OrderService:  orderService,
		LedgerService: ledgerService,
		TeamService:   teamService,
	}, nil
}
