package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "questhub.backend/internal/domain/errors"
	"questhub.backend/internal/interfaces/http/middleware"
	"questhub.backend/internal/interfaces/http/response"
	"questhub.backend/internal/usecases"
)

// QuestHandler handles dashboard and daily quest endpoints
type QuestHandler struct {
	questUsecase *usecases.QuestUsecase
}

// NewQuestHandler creates a new quest handler
func NewQuestHandler(questUsecase *usecases.QuestUsecase) *QuestHandler {
	return &QuestHandler{
		questUsecase: questUsecase,
	}
}

// Dashboard returns the balance summary and quest progress
// GET /api/dashboard
func (h *QuestHandler) Dashboard(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	stats, err := h.questUsecase.Dashboard(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// ListQuests returns the user's current daily quest set
// GET /api/quests
func (h *QuestHandler) ListQuests(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	quests, err := h.questUsecase.ListQuests(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, quests)
}

// CompleteQuest marks a quest completed and credits its reward
// POST /api/quests/:id/complete
func (h *QuestHandler) CompleteQuest(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	questID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid quest id"))
		return
	}

	quest, err := h.questUsecase.CompleteQuest(c.Request.Context(), userID, questID)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrInvestmentRequired):
			response.Error(c, domainerrors.PreconditionFailed("Make a deposit to start completing quests", err))
		case errors.Is(err, domainerrors.ErrNotFound):
			response.Error(c, domainerrors.NotFound("Quest not found"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, quest)
}
