package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"questhub.backend/internal/domain/entities"
	domainerrors "questhub.backend/internal/domain/errors"
)

func TestBalanceRepository_CreateGetUpdate(t *testing.T) {
	db := newTestDB(t)
	createBalanceTable(t, db)
	repo := NewBalanceRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	b := &entities.UserBalance{
		UserID:         userID,
		MainBalance:    decimal.Zero,
		LockedBonus:    decimal.Zero,
		QuestEarnings:  decimal.Zero,
		LastDailyReset: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Role:           entities.BalanceRoleUser,
	}
	require.NoError(t, repo.Create(ctx, b))
	require.NotEqual(t, uuid.Nil, b.ID)

	got, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.True(t, got.MainBalance.IsZero())
	require.Equal(t, entities.BalanceRoleUser, got.Role)

	b.MainBalance = decimal.NewFromInt(100)
	b.LockedBonus = decimal.NewFromInt(40)
	b.QuestEarnings = decimal.RequireFromString("12.5")
	require.NoError(t, repo.Update(ctx, b))

	got, err = repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.True(t, got.MainBalance.Equal(decimal.NewFromInt(100)))
	require.True(t, got.LockedBonus.Equal(decimal.NewFromInt(40)))
	require.True(t, got.QuestEarnings.Equal(decimal.RequireFromString("12.5")))
}

func TestBalanceRepository_StampDailyReset(t *testing.T) {
	db := newTestDB(t)
	createBalanceTable(t, db)
	repo := NewBalanceRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	require.NoError(t, repo.Create(ctx, &entities.UserBalance{
		UserID:         userID,
		MainBalance:    decimal.NewFromInt(75),
		LockedBonus:    decimal.Zero,
		QuestEarnings:  decimal.Zero,
		LastDailyReset: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Role:           entities.BalanceRoleUser,
	}))

	at := time.Date(2026, 3, 2, 0, 0, 1, 0, time.UTC)
	require.NoError(t, repo.StampDailyReset(ctx, userID, at))

	got, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, at.Unix(), got.LastDailyReset.Unix())
	require.True(t, got.MainBalance.Equal(decimal.NewFromInt(75)), "stamp leaves balances alone")
}

func TestBalanceRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createBalanceTable(t, db)
	repo := NewBalanceRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	_, err := repo.GetByUserID(ctx, userID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Update(ctx, &entities.UserBalance{UserID: userID})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.StampDailyReset(ctx, userID, time.Now())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBalanceRepository_DBErrorBranches(t *testing.T) {
	db := newTestDB(t)
	// intentionally skip table creation
	repo := NewBalanceRepository(db)
	ctx := context.Background()

	_, err := repo.GetByUserID(ctx, uuid.New())
	require.Error(t, err)
	require.NotErrorIs(t, err, domainerrors.ErrNotFound)

	require.Error(t, repo.Update(ctx, &entities.UserBalance{UserID: uuid.New()}))
	require.Error(t, repo.StampDailyReset(ctx, uuid.New(), time.Now()))
}
