package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceRole represents the authorization role stored on a balance row
type BalanceRole string

const (
	BalanceRoleUser  BalanceRole = "user"
	BalanceRoleAdmin BalanceRole = "admin"
)

// UserBalance holds the three ledger balances for a user. All three amounts
// are non-negative at all times; every mutation goes through the ledger
// usecase which preserves that invariant.
type UserBalance struct {
	ID             uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID       `json:"userId"`
	MainBalance    decimal.Decimal `json:"mainBalance" gorm:"type:decimal(36,18)"`
	LockedBonus    decimal.Decimal `json:"lockedBonus" gorm:"type:decimal(36,18)"`
	QuestEarnings  decimal.Decimal `json:"questEarnings" gorm:"type:decimal(36,18)"`
	InvestmentTier int             `json:"investmentTier"`
	LastDailyReset time.Time       `json:"lastDailyReset"`
	Role           BalanceRole     `json:"role"`
}

// Available returns the amount withdrawable right now: main balance plus
// quest earnings. Locked bonus is excluded until unlocked via roulette.
func (b *UserBalance) Available() decimal.Decimal {
	return b.MainBalance.Add(b.QuestEarnings)
}

// DashboardStats represents the dashboard summary response
type DashboardStats struct {
	Balance              *UserBalance `json:"balance"`
	CompletedQuestsCount int          `json:"completedQuestsCount"`
	TotalQuestsCount     int          `json:"totalQuestsCount"`
	NextResetTime        time.Time    `json:"nextResetTime"`
}

// RouletteResult represents the outcome of a roulette play. Amount is the
// sum moved into the main balance, zero on a loss.
type RouletteResult struct {
	Won        bool            `json:"won"`
	Amount     decimal.Decimal `json:"amount"`
	NewBalance *UserBalance    `json:"newBalance"`
}
