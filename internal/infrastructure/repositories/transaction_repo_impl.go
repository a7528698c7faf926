package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"questhub.backend/internal/domain/entities"
	domainerrors "questhub.backend/internal/domain/errors"
	"questhub.backend/internal/infrastructure/models"
	"questhub.backend/pkg/utils"
)

// TransactionRepository implements deposit/withdrawal request data operations
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create inserts a new transaction request
func (r *TransactionRepository) Create(ctx context.Context, tx *entities.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = utils.NewRecordID()
	}
	m := &models.Transaction{
		ID:     tx.ID,
		UserID: tx.UserID,
		Type:   string(tx.Type),
		Amount: tx.Amount,
		Status: string(tx.Status),
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	tx.CreatedAt = m.CreatedAt
	tx.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a transaction by ID
func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Transaction, error) {
	var m models.Transaction
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return transactionToEntity(&m), nil
}

// GetByUserID returns a user's transactions, newest first
func (r *TransactionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Transaction, error) {
	var ms []models.Transaction
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	txs := make([]*entities.Transaction, 0, len(ms))
	for i := range ms {
		txs = append(txs, transactionToEntity(&ms[i]))
	}
	return txs, nil
}

// ListPending joins pending transactions with the requesting user's email
func (r *TransactionRepository) ListPending(ctx context.Context) ([]*entities.PendingTransaction, error) {
	type row struct {
		models.Transaction
		Email string
	}

	var rows []row
	err := GetDB(ctx, r.db).WithContext(ctx).
		Table("transactions").
		Select("transactions.*, users.email AS email").
		Joins("JOIN users ON users.id = transactions.user_id").
		Where("transactions.status = ?", string(entities.TransactionStatusPending)).
		Order("transactions.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	pending := make([]*entities.PendingTransaction, 0, len(rows))
	for i := range rows {
		pending = append(pending, &entities.PendingTransaction{
			Transaction: *transactionToEntity(&rows[i].Transaction),
			UserEmail:   rows[i].Email,
		})
	}
	return pending, nil
}

// UpdateStatus resolves a pending transaction. The status guard makes the
// pending-to-terminal transition happen at most once: rows already resolved
// match nothing and report not found, so concurrent approvals cannot both
// succeed.
func (r *TransactionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TransactionStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Transaction{}).
		Where("id = ? AND status = ?", id, string(entities.TransactionStatusPending)).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// HasCompletedDeposit reports whether any deposit for the user has ever
// reached completed status
func (r *TransactionRepository) HasCompletedDeposit(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Transaction{}).
		Where("user_id = ? AND type = ? AND status = ?",
			userID, string(entities.TransactionTypeDeposit), string(entities.TransactionStatusCompleted)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func transactionToEntity(m *models.Transaction) *entities.Transaction {
	return &entities.Transaction{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      entities.TransactionType(m.Type),
		Amount:    m.Amount,
		Status:    entities.TransactionStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
