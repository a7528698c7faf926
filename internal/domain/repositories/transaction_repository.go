package repositories

import (
	"context"

	"github.com/google/uuid"
	"questhub.backend/internal/domain/entities"
)

// TransactionRepository defines deposit/withdrawal request data operations
type TransactionRepository interface {
	Create(ctx context.Context, tx *entities.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Transaction, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Transaction, error)
	// ListPending joins pending transactions with the requesting user's email.
	ListPending(ctx context.Context) ([]*entities.PendingTransaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TransactionStatus) error
	// HasCompletedDeposit reports whether any deposit for the user has ever
	// reached completed status (first-deposit bonus check).
	HasCompletedDeposit(ctx context.Context, userID uuid.UUID) (bool, error)
}
