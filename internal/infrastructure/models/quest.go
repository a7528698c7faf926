package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Quest struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID       uuid.UUID       `gorm:"type:uuid;index;not null"`
	Type         string          `gorm:"type:varchar(50);not null"`
	Description  string          `gorm:"type:text;not null"`
	RewardAmount decimal.Decimal `gorm:"type:decimal(36,18);not null"`
	IsCompleted  bool            `gorm:"not null;default:false"`
	CompletedAt  *time.Time      `gorm:"type:timestamp"`
	CreatedAt    time.Time
}
