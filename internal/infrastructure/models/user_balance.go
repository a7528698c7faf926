package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UserBalance struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID         uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	MainBalance    decimal.Decimal `gorm:"type:decimal(36,18);not null;default:0"`
	LockedBonus    decimal.Decimal `gorm:"type:decimal(36,18);not null;default:0"`
	QuestEarnings  decimal.Decimal `gorm:"type:decimal(36,18);not null;default:0"`
	InvestmentTier int             `gorm:"not null;default:0"`
	LastDailyReset time.Time       `gorm:"type:timestamp"`
	Role           string          `gorm:"type:varchar(50);not null;default:'user'"`
}
