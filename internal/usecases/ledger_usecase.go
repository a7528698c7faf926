package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"questhub.backend/internal/domain/entities"
	domainerrors "questhub.backend/internal/domain/errors"
	"questhub.backend/internal/domain/repositories"
)

var timeNow = time.Now

// LedgerUsecase owns every mutation of the three balance fields and the lazy
// daily quest reset. All other usecases reach balances through it.
type LedgerUsecase struct {
	balanceRepo repositories.BalanceRepository
	questRepo   repositories.QuestRepository
	txRepo      repositories.TransactionRepository
	uow         repositories.UnitOfWork
}

// NewLedgerUsecase creates a new ledger usecase
func NewLedgerUsecase(
	balanceRepo repositories.BalanceRepository,
	questRepo repositories.QuestRepository,
	txRepo repositories.TransactionRepository,
	uow repositories.UnitOfWork,
) *LedgerUsecase {
	return &LedgerUsecase{
		balanceRepo: balanceRepo,
		questRepo:   questRepo,
		txRepo:      txRepo,
		uow:         uow,
	}
}

// GetOrCreateBalance returns the user's balance row, creating a zeroed one
// with an initial quest set on first access. Every call also runs the daily
// reset check: when the stored lastDailyReset falls on a different UTC day
// than now, all quests are deleted and regenerated and the stamp refreshed.
// There is no scheduler; this polling-on-read is the only reset trigger.
func (u *LedgerUsecase) GetOrCreateBalance(ctx context.Context, userID uuid.UUID) (*entities.UserBalance, error) {
	balance, err := u.balanceRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}

		now := timeNow().UTC()
		balance = &entities.UserBalance{
			UserID:         userID,
			MainBalance:    decimal.Zero,
			LockedBonus:    decimal.Zero,
			QuestEarnings:  decimal.Zero,
			InvestmentTier: 0,
			LastDailyReset: now,
			Role:           entities.BalanceRoleUser,
		}
		err = u.uow.Do(ctx, func(ctx context.Context) error {
			if err := u.balanceRepo.Create(ctx, balance); err != nil {
				return err
			}
			return u.generateDailyQuests(ctx, balance)
		})
		if err != nil {
			return nil, err
		}
		return balance, nil
	}

	now := timeNow().UTC()
	if !sameUTCDay(balance.LastDailyReset, now) {
		err = u.uow.Do(ctx, func(ctx context.Context) error {
			if err := u.questRepo.DeleteByUserID(ctx, userID); err != nil {
				return err
			}
			if err := u.generateDailyQuests(ctx, balance); err != nil {
				return err
			}
			return u.balanceRepo.StampDailyReset(ctx, userID, now)
		})
		if err != nil {
			return nil, err
		}
		balance.LastDailyReset = now
	}

	return balance, nil
}

// ApplyDepositApproval credits an approved deposit. The first deposit ever to
// reach completed status carries a locked bonus of 40% of the amount; the
// caller must invoke this before marking the transaction completed so the
// first-deposit check does not count the transaction being approved.
func (u *LedgerUsecase) ApplyDepositApproval(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error {
	balance, err := u.balanceRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}
		// The user may never have touched a ledger endpoint. Create the
		// zeroed row here; the caller already holds the transaction.
		balance = &entities.UserBalance{
			UserID:         userID,
			MainBalance:    decimal.Zero,
			LockedBonus:    decimal.Zero,
			QuestEarnings:  decimal.Zero,
			InvestmentTier: 0,
			LastDailyReset: timeNow().UTC(),
			Role:           entities.BalanceRoleUser,
		}
		if err := u.balanceRepo.Create(ctx, balance); err != nil {
			return err
		}
		if err := u.generateDailyQuests(ctx, balance); err != nil {
			return err
		}
	}

	hasDeposit, err := u.txRepo.HasCompletedDeposit(ctx, userID)
	if err != nil {
		return err
	}

	bonus := decimal.Zero
	if !hasDeposit {
		bonus = amount.Mul(FirstDepositBonusRate)
	}

	balance.MainBalance = balance.MainBalance.Add(amount)
	balance.LockedBonus = balance.LockedBonus.Add(bonus)
	return u.balanceRepo.Update(ctx, balance)
}

// ApplyWithdrawalApproval debits an approved withdrawal, quest earnings
// first, remainder from the main balance. Funds were validated at request
// time; re-checked here so the non-negative invariant can never break.
func (u *LedgerUsecase) ApplyWithdrawalApproval(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error {
	balance, err := u.balanceRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if balance.Available().LessThan(amount) {
		return domainerrors.ErrInsufficientFunds
	}

	deduct := decimal.Min(balance.QuestEarnings, amount)
	balance.QuestEarnings = balance.QuestEarnings.Sub(deduct)
	balance.MainBalance = balance.MainBalance.Sub(amount.Sub(deduct))
	return u.balanceRepo.Update(ctx, balance)
}

// IsAuthorized is the capability check behind the admin gate: the user's
// balance row must carry the required role. Callable independently of the
// transport layer.
func (u *LedgerUsecase) IsAuthorized(ctx context.Context, userID uuid.UUID, role entities.BalanceRole) (bool, error) {
	balance, err := u.GetOrCreateBalance(ctx, userID)
	if err != nil {
		return false, err
	}
	return balance.Role == role, nil
}

// generateDailyQuests inserts one quest per type, reward fixed at 20% of the
// main balance at generation time.
func (u *LedgerUsecase) generateDailyQuests(ctx context.Context, balance *entities.UserBalance) error {
	reward := balance.MainBalance.Mul(QuestRewardRate)

	quests := make([]*entities.Quest, 0, len(entities.QuestTypes))
	for _, qt := range entities.QuestTypes {
		quests = append(quests, &entities.Quest{
			UserID:       balance.UserID,
			Type:         qt,
			Description:  questDescriptions[qt],
			RewardAmount: reward,
		})
	}
	return u.questRepo.CreateBatch(ctx, quests)
}

func sameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
