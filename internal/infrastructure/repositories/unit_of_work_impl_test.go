package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"questhub.backend/internal/domain/entities"
	domainerrors "questhub.backend/internal/domain/errors"
)

func TestUnitOfWork_CommitPersistsAllWrites(t *testing.T) {
	db := newTestDB(t)
	createBalanceTable(t, db)
	createQuestTable(t, db)
	balanceRepo := NewBalanceRepository(db)
	questRepo := NewQuestRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	userID := uuid.New()
	err := uow.Do(ctx, func(ctx context.Context) error {
		if err := balanceRepo.Create(ctx, &entities.UserBalance{
			UserID:        userID,
			MainBalance:   decimal.NewFromInt(10),
			LockedBonus:   decimal.Zero,
			QuestEarnings: decimal.Zero,
			Role:          entities.BalanceRoleUser,
		}); err != nil {
			return err
		}
		return questRepo.CreateBatch(ctx, []*entities.Quest{{
			UserID:       userID,
			Type:         entities.QuestTypeVideo,
			Description:  "watch the daily video",
			RewardAmount: decimal.NewFromInt(2),
		}})
	})
	require.NoError(t, err)

	b, err := balanceRepo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.True(t, b.MainBalance.Equal(decimal.NewFromInt(10)))

	quests, err := questRepo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, quests, 1)
}

func TestUnitOfWork_RollbackOnError(t *testing.T) {
	db := newTestDB(t)
	createBalanceTable(t, db)
	balanceRepo := NewBalanceRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	userID := uuid.New()
	boom := errors.New("boom")
	err := uow.Do(ctx, func(ctx context.Context) error {
		if err := balanceRepo.Create(ctx, &entities.UserBalance{
			UserID:        userID,
			MainBalance:   decimal.NewFromInt(10),
			LockedBonus:   decimal.Zero,
			QuestEarnings: decimal.Zero,
			Role:          entities.BalanceRoleUser,
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = balanceRepo.GetByUserID(ctx, userID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound, "rollback undoes the insert")
}

func TestUnitOfWork_ReadsSeeUncommittedWrites(t *testing.T) {
	db := newTestDB(t)
	createBalanceTable(t, db)
	balanceRepo := NewBalanceRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	userID := uuid.New()
	err := uow.Do(ctx, func(ctx context.Context) error {
		if err := balanceRepo.Create(ctx, &entities.UserBalance{
			UserID:        userID,
			MainBalance:   decimal.Zero,
			LockedBonus:   decimal.Zero,
			QuestEarnings: decimal.Zero,
			Role:          entities.BalanceRoleUser,
		}); err != nil {
			return err
		}
		// Same-transaction read sees the row before commit.
		b, err := balanceRepo.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		b.MainBalance = decimal.NewFromInt(5)
		return balanceRepo.Update(ctx, b)
	})
	require.NoError(t, err)

	b, err := balanceRepo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.True(t, b.MainBalance.Equal(decimal.NewFromInt(5)))
}

func TestGetDB_FallbackWithoutTransaction(t *testing.T) {
	db := newTestDB(t)
	require.Same(t, db, GetDB(context.Background(), db))
}
