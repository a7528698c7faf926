package usecases

import (
	"github.com/shopspring/decimal"
	"questhub.backend/internal/domain/entities"
)

var (
	// MinDepositAmount is the smallest deposit request accepted, in dollars.
	MinDepositAmount = decimal.NewFromInt(20)
	// MinWithdrawalAmount is the smallest withdrawal request accepted, in dollars.
	MinWithdrawalAmount = decimal.NewFromInt(50)
	// FirstDepositBonusRate is applied to a user's first completed deposit
	// and credited to the locked bonus.
	FirstDepositBonusRate = decimal.RequireFromString("0.40")
	// QuestRewardRate is the fraction of the main balance each daily quest
	// pays. The reward is fixed at generation time.
	QuestRewardRate = decimal.RequireFromString("0.20")
)

var questDescriptions = map[entities.QuestType]string{
	entities.QuestTypeVideo:    "Watch the daily training video",
	entities.QuestTypeQuiz:     "Answer the daily quiz",
	entities.QuestTypeLink:     "Visit the partner site",
	entities.QuestTypeReferral: "Share your referral link",
}
