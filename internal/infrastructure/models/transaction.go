package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	Type      string          `gorm:"type:varchar(50);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(36,18);not null"`
	Status    string          `gorm:"type:varchar(50);not null;default:'pending'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
