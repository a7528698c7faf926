package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// QuestType represents the category of a daily quest
type QuestType string

const (
	QuestTypeVideo    QuestType = "video"
	QuestTypeQuiz     QuestType = "quiz"
	QuestTypeLink     QuestType = "link"
	QuestTypeReferral QuestType = "referral"
)

// QuestTypes lists the full daily set, one quest per type.
var QuestTypes = []QuestType{QuestTypeVideo, QuestTypeQuiz, QuestTypeLink, QuestTypeReferral}

// Quest represents one daily quest instance. RewardAmount is fixed when the
// quest is generated and is not recomputed at completion time.
type Quest struct {
	ID           uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID       `json:"userId"`
	Type         QuestType       `json:"type"`
	Description  string          `json:"description"`
	RewardAmount decimal.Decimal `json:"rewardAmount" gorm:"type:decimal(36,18)"`
	IsCompleted  bool            `json:"isCompleted"`
	CompletedAt  null.Time       `json:"completedAt,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}
