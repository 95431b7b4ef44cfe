package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-commission/internal/domain"
	"github.com/fsdevblog/groph-commission/internal/repository/repoargs"
	"github.com/fsdevblog/groph-commission/pkg/uow"
)

// ReferralGraphService обход леса указателей referred_by. Граф номинально ацикличен
// (циклы отсекаются при создании связи), но обходы все равно защищены множеством
// посещенных id: одного счетчика глубины недостаточно при битых данных.
type ReferralGraphService struct {
	uow      uow.UOW
	userRepo UserRepository
}

func NewReferralGraphService(u uow.UOW) (*ReferralGraphService, error) {
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err
	}
	return &ReferralGraphService{
		uow:      u,
		userRepo: userRepo,
	}, nil
}

// AncestorChain возвращает id предков юзера, ближайший первым, не больше maxDepth штук.
// При обнаружении цикла возвращает пройденную часть цепочки вместе с CycleDetectedError:
// вызывающий сам решает, фатальна ошибка или нет.
func (g *ReferralGraphService) AncestorChain(ctx context.Context, userID int64, maxDepth int) ([]int64, error) {
	return ancestorWalk(ctx, g.userRepo, userID, maxDepth)
}

// FullSubtree возвращает id всех потомков rootID (без самого rootID), глубина не ограничена.
// Используется агрегатором команды; кап в 4 уровня касается только начисления комиссий.
func (g *ReferralGraphService) FullSubtree(ctx context.Context, rootID int64) ([]int64, error) {
	// проверка существования корня
	if _, err := g.userRepo.ReferrerID(ctx, rootID); err != nil {
		return nil, fmt.Errorf("full subtree of user %d: %w", rootID, err)
	}

	visited := map[int64]struct{}{rootID: {}}
	frontier := []int64{rootID}
	var subtree []int64

	for len(frontier) > 0 {
		children, childrenErr := g.userRepo.ChildrenIDs(ctx, frontier)
		if childrenErr != nil {
			return nil, fmt.Errorf("full subtree of user %d: %w", rootID, childrenErr)
		}

		frontier = frontier[:0]
		for _, child := range children {
			if _, seen := visited[child]; seen {
				// защита от цикла: потомок уже встречался выше по дереву
				continue
			}
			visited[child] = struct{}{}
			subtree = append(subtree, child)
			frontier = append(frontier, child)
		}
	}
	return subtree, nil
}

// RegisterReferral создает реферальную связь userID -> referrerID. Связь, замыкающая цикл,
// отклоняется с CycleDetectedError — здесь, на границе записи, эта ошибка фатальна.
// Повторная привязка уже приглашенного юзера отклоняется с ErrConflict.
func (g *ReferralGraphService) RegisterReferral(ctx context.Context, userID, referrerID int64) error {
	if userID == referrerID {
		return domain.NewValidationError("referrerId", "user can not refer themselves")
	}

	txErr := g.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, repoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		// Блокируем юзера: два конкурентных запроса привязки не проскочат оба.
		user, userErr := userRepo.FindForUpdate(c, userID)
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}
		if user.ReferredBy != nil {
			return fmt.Errorf("user %d already has a referrer: %w", userID, domain.ErrConflict)
		}

		if _, refErr := userRepo.Find(c, referrerID); refErr != nil {
			return refErr //nolint:wrapcheck
		}

		// Поднимаемся по предкам реферера без ограничения глубины: если среди них
		// окажется сам userID, связь замкнет цикл.
		visited := map[int64]struct{}{referrerID: {}}
		var chain []int64
		current := referrerID
		for {
			parent, parentErr := userRepo.ReferrerID(c, current)
			if parentErr != nil {
				return parentErr //nolint:wrapcheck
			}
			if parent == nil {
				break
			}
			if *parent == userID {
				return domain.NewCycleDetectedError(userID, append(chain, *parent))
			}
			if _, seen := visited[*parent]; seen {
				// граф уже битый, связь не создаем
				return domain.NewCycleDetectedError(*parent, chain)
			}
			visited[*parent] = struct{}{}
			chain = append(chain, *parent)
			current = *parent
		}

		return userRepo.SetReferrer(c, userID, referrerID)
	})

	if txErr != nil {
		return fmt.Errorf("registering referral %d -> %d: %w", userID, referrerID, txErr)
	}
	return nil
}

// ancestorWalk общий обход вверх по указателям referred_by. Работает и с пуловым,
// и с транзакционным репозиторием.
func ancestorWalk(ctx context.Context, userRepo UserRepository, userID int64, maxDepth int) ([]int64, error) {
	visited := map[int64]struct{}{userID: {}}
	chain := make([]int64, 0, maxDepth)
	current := userID

	for range maxDepth {
		parent, err := userRepo.ReferrerID(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("ancestor chain of user %d: %w", userID, err)
		}
		if parent == nil {
			break
		}
		if _, seen := visited[*parent]; seen {
			return chain, domain.NewCycleDetectedError(*parent, chain)
		}
		visited[*parent] = struct{}{}
		chain = append(chain, *parent)
		current = *parent
	}
	return chain, nil
}
