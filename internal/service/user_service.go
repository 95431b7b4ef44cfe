package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-commission/internal/domain"
	"github.com/fsdevblog/groph-commission/internal/repository/repoargs"
	"github.com/fsdevblog/groph-commission/pkg/uow"
	"github.com/shopspring/decimal"
)

type UserService struct {
	uow      uow.UOW
	userRepo UserRepository
	slabs    domain.SlabTable
}

func NewUserService(u uow.UOW, slabs domain.SlabTable) (*UserService, error) {
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err
	}
	return &UserService{
		uow:      u,
		userRepo: userRepo,
		slabs:    slabs,
	}, nil
}

// Create заводит юзера со стартовой ступенью комиссии (нулевые продажи). Реферер,
// если указан, обязан существовать; новая вершина цикл образовать не может.
func (s *UserService) Create(ctx context.Context, username string, referredBy *int64) (*domain.User, error) {
	if username == "" {
		return nil, domain.NewValidationError("username", "must not be blank")
	}

	var user *domain.User
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, repoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		if referredBy != nil {
			if _, refErr := userRepo.Find(c, *referredBy); refErr != nil {
				return refErr //nolint:wrapcheck
			}
		}

		var createErr error
		user, createErr = userRepo.Create(c, repoargs.CreateUser{
			Username:   username,
			ReferredBy: referredBy,
		}, s.slabs.Resolve(decimal.Zero))
		return createErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("creating user `%s`: %w", username, txErr)
	}
	return user, nil
}

func (s *UserService) Find(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.Find(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return user, nil
}
