package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"questhub.backend/internal/domain/entities"
)

// BalanceRepository defines ledger balance data operations
type BalanceRepository interface {
	Create(ctx context.Context, balance *entities.UserBalance) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.UserBalance, error)
	// Update persists the three balance amounts of an existing row.
	Update(ctx context.Context, balance *entities.UserBalance) error
	// StampDailyReset sets last_daily_reset without touching balances.
	StampDailyReset(ctx context.Context, userID uuid.UUID, at time.Time) error
}
