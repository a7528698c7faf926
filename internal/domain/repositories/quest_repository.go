package repositories

import (
	"context"

	"github.com/google/uuid"
	"questhub.backend/internal/domain/entities"
)

// QuestRepository defines daily quest data operations
type QuestRepository interface {
	CreateBatch(ctx context.Context, quests []*entities.Quest) error
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Quest, error)
	// GetByID returns the quest only when it belongs to the given user.
	GetByID(ctx context.Context, userID, questID uuid.UUID) (*entities.Quest, error)
	MarkCompleted(ctx context.Context, quest *entities.Quest) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
