package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"questhub.backend/internal/domain/entities"
	domainerrors "questhub.backend/internal/domain/errors"
	"questhub.backend/internal/domain/repositories"
)

// QuestUsecase handles daily quest listing and completion
type QuestUsecase struct {
	ledger      *LedgerUsecase
	questRepo   repositories.QuestRepository
	balanceRepo repositories.BalanceRepository
	uow         repositories.UnitOfWork
}

// NewQuestUsecase creates a new quest usecase
func NewQuestUsecase(
	ledger *LedgerUsecase,
	questRepo repositories.QuestRepository,
	balanceRepo repositories.BalanceRepository,
	uow repositories.UnitOfWork,
) *QuestUsecase {
	return &QuestUsecase{
		ledger:      ledger,
		questRepo:   questRepo,
		balanceRepo: balanceRepo,
		uow:         uow,
	}
}

// ListQuests returns the user's current quest set. Going through the ledger
// first forces the lazy daily reset check.
func (u *QuestUsecase) ListQuests(ctx context.Context, userID uuid.UUID) ([]*entities.Quest, error) {
	if _, err := u.ledger.GetOrCreateBalance(ctx, userID); err != nil {
		return nil, err
	}
	return u.questRepo.GetByUserID(ctx, userID)
}

// CompleteQuest marks a quest completed and credits its generation-time
// reward to quest earnings. Requires a positive main balance; a quest that is
// missing, owned by someone else, or already completed reports not found.
func (u *QuestUsecase) CompleteQuest(ctx context.Context, userID, questID uuid.UUID) (*entities.Quest, error) {
	balance, err := u.ledger.GetOrCreateBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !balance.MainBalance.IsPositive() {
		return nil, domainerrors.ErrInvestmentRequired
	}

	quest, err := u.questRepo.GetByID(ctx, userID, questID)
	if err != nil {
		return nil, err
	}
	if quest.IsCompleted {
		return nil, domainerrors.ErrNotFound
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.questRepo.MarkCompleted(ctx, quest); err != nil {
			return err
		}
		balance.QuestEarnings = balance.QuestEarnings.Add(quest.RewardAmount)
		return u.balanceRepo.Update(ctx, balance)
	})
	if err != nil {
		return nil, err
	}

	return quest, nil
}

// Dashboard assembles the summary view: balance, quest progress and the next
// UTC midnight reset time computed at request time.
func (u *QuestUsecase) Dashboard(ctx context.Context, userID uuid.UUID) (*entities.DashboardStats, error) {
	balance, err := u.ledger.GetOrCreateBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	quests, err := u.questRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	completed := 0
	for _, q := range quests {
		if q.IsCompleted {
			completed++
		}
	}

	now := timeNow().UTC()
	nextReset := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)

	return &entities.DashboardStats{
		Balance:              balance,
		CompletedQuestsCount: completed,
		TotalQuestsCount:     len(quests),
		NextResetTime:        nextReset,
	}, nil
}
