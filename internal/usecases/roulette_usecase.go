package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"questhub.backend/internal/domain/entities"
	domainerrors "questhub.backend/internal/domain/errors"
	"questhub.backend/internal/domain/repositories"
)

// RandSource yields uniform values in [0,1). *rand.Rand satisfies it; tests
// inject a seeded source so outcomes are reproducible.
type RandSource interface {
	Float64() float64
}

// RouletteUsecase resolves the bonus-unlock game. A single play consumes the
// entire locked bonus regardless of outcome.
type RouletteUsecase struct {
	ledger      *LedgerUsecase
	balanceRepo repositories.BalanceRepository
	rng         RandSource
}

// NewRouletteUsecase creates a new roulette usecase
func NewRouletteUsecase(ledger *LedgerUsecase, balanceRepo repositories.BalanceRepository, rng RandSource) *RouletteUsecase {
	return &RouletteUsecase{
		ledger:      ledger,
		balanceRepo: balanceRepo,
		rng:         rng,
	}
}

// Play wagers the whole locked bonus on a 50/50 outcome. On a win the bonus
// moves into the main balance; either way the locked bonus drops to zero.
func (u *RouletteUsecase) Play(ctx context.Context, userID uuid.UUID) (*entities.RouletteResult, error) {
	balance, err := u.ledger.GetOrCreateBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	locked := balance.LockedBonus
	if !locked.IsPositive() {
		return nil, domainerrors.ErrNoLockedBonus
	}

	won := u.rng.Float64() < 0.5

	amount := decimal.Zero
	if won {
		balance.MainBalance = balance.MainBalance.Add(locked)
		amount = locked
	}
	balance.LockedBonus = decimal.Zero

	if err := u.balanceRepo.Update(ctx, balance); err != nil {
		return nil, err
	}

	return &entities.RouletteResult{
		Won:        won,
		Amount:     amount,
		NewBalance: balance,
	}, nil
}
