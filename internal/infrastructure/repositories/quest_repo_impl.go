package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"questhub.backend/internal/domain/entities"
	domainerrors "questhub.backend/internal/domain/errors"
	"questhub.backend/internal/infrastructure/models"
	"questhub.backend/pkg/utils"
)

// QuestRepository implements daily quest data operations
type QuestRepository struct {
	db *gorm.DB
}

// NewQuestRepository creates a new quest repository
func NewQuestRepository(db *gorm.DB) *QuestRepository {
	return &QuestRepository{db: db}
}

// CreateBatch inserts a batch of quests (the daily set of four)
func (r *QuestRepository) CreateBatch(ctx context.Context, quests []*entities.Quest) error {
	if len(quests) == 0 {
		return nil
	}
	ms := make([]*models.Quest, 0, len(quests))
	for _, q := range quests {
		if q.ID == uuid.Nil {
			q.ID = utils.NewRecordID()
		}
		ms = append(ms, &models.Quest{
			ID:           q.ID,
			UserID:       q.UserID,
			Type:         string(q.Type),
			Description:  q.Description,
			RewardAmount: q.RewardAmount,
			IsCompleted:  q.IsCompleted,
			CreatedAt:    q.CreatedAt,
		})
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(ms).Error
}

// GetByUserID returns all quests for a user ordered by creation
func (r *QuestRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Quest, error) {
	var ms []models.Quest
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	quests := make([]*entities.Quest, 0, len(ms))
	for i := range ms {
		quests = append(quests, questToEntity(&ms[i]))
	}
	return quests, nil
}

// GetByID returns the quest only when it belongs to the given user
func (r *QuestRepository) GetByID(ctx context.Context, userID, questID uuid.UUID) (*entities.Quest, error) {
	var m models.Quest
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("id = ? AND user_id = ?", questID, userID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return questToEntity(&m), nil
}

// MarkCompleted flips a quest to completed and stamps completed_at. Rows
// already completed are not matched, so double completion reports not found.
func (r *QuestRepository) MarkCompleted(ctx context.Context, quest *entities.Quest) error {
	now := time.Now().UTC()
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Quest{}).
		Where("id = ? AND user_id = ? AND is_completed = ?", quest.ID, quest.UserID, false).
		Updates(map[string]interface{}{
			"is_completed": true,
			"completed_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	quest.IsCompleted = true
	quest.CompletedAt = null.TimeFrom(now)
	return nil
}

// DeleteByUserID removes every quest for a user (daily reset)
func (r *QuestRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Quest{}).Error
}

func questToEntity(m *models.Quest) *entities.Quest {
	return &entities.Quest{
		ID:           m.ID,
		UserID:       m.UserID,
		Type:         entities.QuestType(m.Type),
		Description:  m.Description,
		RewardAmount: m.RewardAmount,
		IsCompleted:  m.IsCompleted,
		CompletedAt:  null.TimeFromPtr(m.CompletedAt),
		CreatedAt:    m.CreatedAt,
	}
}
