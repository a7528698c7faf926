package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents transaction type
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// TransactionStatus represents transaction status
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// ApprovalAction represents an administrator decision on a pending transaction
type ApprovalAction string

const (
	ApprovalActionApprove ApprovalAction = "approve"
	ApprovalActionReject  ApprovalAction = "reject"
)

// Transaction represents a deposit or withdrawal request. It is created as
// pending and moves exactly once to completed or failed via admin decision.
type Transaction struct {
	ID        uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID         `json:"userId"`
	Type      TransactionType   `json:"type"`
	Amount    decimal.Decimal   `json:"amount" gorm:"type:decimal(36,18)"`
	Status    TransactionStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// PendingTransaction is a transaction joined with the requesting user's email
// for the admin review queue.
type PendingTransaction struct {
	Transaction
	UserEmail string `json:"userEmail"`
}

// CreateTransactionInput represents input for deposit/withdrawal requests
type CreateTransactionInput struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// ApprovalInput represents the admin decision payload
type ApprovalInput struct {
	Action ApprovalAction `json:"action" binding:"required,oneof=approve reject"`
}
