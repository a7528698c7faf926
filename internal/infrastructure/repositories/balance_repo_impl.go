package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"questhub.backend/internal/domain/entities"
	domainerrors "questhub.backend/internal/domain/errors"
	"questhub.backend/internal/infrastructure/models"
	"questhub.backend/pkg/utils"
)

// BalanceRepository implements ledger balance data operations
type BalanceRepository struct {
	db *gorm.DB
}

// NewBalanceRepository creates a new balance repository
func NewBalanceRepository(db *gorm.DB) *BalanceRepository {
	return &BalanceRepository{db: db}
}

// Create inserts a fresh balance row for a user
func (r *BalanceRepository) Create(ctx context.Context, balance *entities.UserBalance) error {
	if balance.ID == uuid.Nil {
		balance.ID = utils.NewRecordID()
	}
	m := &models.UserBalance{
		ID:             balance.ID,
		UserID:         balance.UserID,
		MainBalance:    balance.MainBalance,
		LockedBonus:    balance.LockedBonus,
		QuestEarnings:  balance.QuestEarnings,
		InvestmentTier: balance.InvestmentTier,
		LastDailyReset: balance.LastDailyReset,
		Role:           string(balance.Role),
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByUserID gets the balance row for a user
func (r *BalanceRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.UserBalance, error) {
	var m models.UserBalance
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return balanceToEntity(&m), nil
}

// Update persists the three balance amounts of an existing row
func (r *BalanceRepository) Update(ctx context.Context, balance *entities.UserBalance) error {
	updates := map[string]interface{}{
		"main_balance":   balance.MainBalance,
		"locked_bonus":   balance.LockedBonus,
		"quest_earnings": balance.QuestEarnings,
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.UserBalance{}).
		Where("user_id = ?", balance.UserID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// StampDailyReset sets last_daily_reset without touching balances
func (r *BalanceRepository) StampDailyReset(ctx context.Context, userID uuid.UUID, at time.Time) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.UserBalance{}).
		Where("user_id = ?", userID).
		Update("last_daily_reset", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func balanceToEntity(m *models.UserBalance) *entities.UserBalance {
	return &entities.UserBalance{
		ID:             m.ID,
		UserID:         m.UserID,
		MainBalance:    m.MainBalance,
		LockedBonus:    m.LockedBonus,
		QuestEarnings:  m.QuestEarnings,
		InvestmentTier: m.InvestmentTier,
		LastDailyReset: m.LastDailyReset,
		Role:           entities.BalanceRole(m.Role),
	}
}
