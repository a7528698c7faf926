package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"questhub.backend/internal/domain/entities"
	domainerrors "questhub.backend/internal/domain/errors"
	"questhub.backend/internal/domain/repositories"
)

// TransactionUsecase handles deposit/withdrawal requests and the admin
// approval workflow. Approval models manual verification of an off-system
// payment rail; the administrator's decision is trusted as ground truth.
type TransactionUsecase struct {
	txRepo repositories.TransactionRepository
	ledger *LedgerUsecase
	uow    repositories.UnitOfWork
}

// NewTransactionUsecase creates a new transaction usecase
func NewTransactionUsecase(
	txRepo repositories.TransactionRepository,
	ledger *LedgerUsecase,
	uow repositories.UnitOfWork,
) *TransactionUsecase {
	return &TransactionUsecase{
		txRepo: txRepo,
		ledger: ledger,
		uow:    uow,
	}
}

// CreateDeposit records a pending deposit request
func (u *TransactionUsecase) CreateDeposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*entities.Transaction, error) {
	if amount.LessThan(MinDepositAmount) {
		return nil, domainerrors.NewError("minimum deposit amount is $20", domainerrors.ErrInvalidInput)
	}

	tx := &entities.Transaction{
		UserID: userID,
		Type:   entities.TransactionTypeDeposit,
		Amount: amount,
		Status: entities.TransactionStatusPending,
	}
	if err := u.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// CreateWithdrawal records a pending withdrawal request. Available funds
// (main balance plus quest earnings) are validated now; the ledger validates
// again at approval time.
func (u *TransactionUsecase) CreateWithdrawal(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*entities.Transaction, error) {
	if amount.LessThan(MinWithdrawalAmount) {
		return nil, domainerrors.NewError("minimum withdrawal amount is $50", domainerrors.ErrInvalidInput)
	}

	balance, err := u.ledger.GetOrCreateBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if balance.Available().LessThan(amount) {
		return nil, domainerrors.ErrInsufficientFunds
	}

	tx := &entities.Transaction{
		UserID: userID,
		Type:   entities.TransactionTypeWithdrawal,
		Amount: amount,
		Status: entities.TransactionStatusPending,
	}
	if err := u.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// History returns the user's transactions, newest first
func (u *TransactionUsecase) History(ctx context.Context, userID uuid.UUID) ([]*entities.Transaction, error) {
	return u.txRepo.GetByUserID(ctx, userID)
}

// ListPending returns all pending transactions with requester emails for the
// admin review queue
func (u *TransactionUsecase) ListPending(ctx context.Context) ([]*entities.PendingTransaction, error) {
	return u.txRepo.ListPending(ctx)
}

// errAlreadyResolved aborts the approval transaction when another request
// resolved the row first; the caller translates it to a no-op.
var errAlreadyResolved = errors.New("transaction already resolved")

// Approve resolves a pending transaction. Unknown ids report not found;
// transactions already in a terminal state are left untouched, making
// double-processing a no-op. The ledger mutation and the status change run in
// a single database transaction: the ledger apply runs before the status flip
// so the first-deposit check excludes this transaction, and the flip matches
// only rows still pending, so a lost race rolls the whole apply back instead
// of crediting twice.
func (u *TransactionUsecase) Approve(ctx context.Context, txID uuid.UUID, action entities.ApprovalAction) error {
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		tx, err := u.txRepo.GetByID(ctx, txID)
		if err != nil {
			return err
		}
		if tx.Status != entities.TransactionStatusPending {
			return errAlreadyResolved
		}

		if action == entities.ApprovalActionReject {
			return u.resolve(ctx, txID, entities.TransactionStatusFailed)
		}

		switch tx.Type {
		case entities.TransactionTypeDeposit:
			if err := u.ledger.ApplyDepositApproval(ctx, tx.UserID, tx.Amount); err != nil {
				return err
			}
		case entities.TransactionTypeWithdrawal:
			if err := u.ledger.ApplyWithdrawalApproval(ctx, tx.UserID, tx.Amount); err != nil {
				return err
			}
		}
		return u.resolve(ctx, txID, entities.TransactionStatusCompleted)
	})
	if errors.Is(err, errAlreadyResolved) {
		return nil
	}
	return err
}

// resolve flips the pending row to its terminal status. Zero rows matched
// means a concurrent request got there first.
func (u *TransactionUsecase) resolve(ctx context.Context, txID uuid.UUID, status entities.TransactionStatus) error {
	if err := u.txRepo.UpdateStatus(ctx, txID, status); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return errAlreadyResolved
		}
		return err
	}
	return nil
}
