package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "questhub.backend/internal/domain/errors"
	"questhub.backend/internal/interfaces/http/middleware"
	"questhub.backend/internal/interfaces/http/response"
	"questhub.backend/internal/usecases"
)

// RouletteHandler handles the bonus-unlock game endpoint
type RouletteHandler struct {
	rouletteUsecase *usecases.RouletteUsecase
}

// NewRouletteHandler creates a new roulette handler
func NewRouletteHandler(rouletteUsecase *usecases.RouletteUsecase) *RouletteHandler {
	return &RouletteHandler{
		rouletteUsecase: rouletteUsecase,
	}
}

// Play wagers the entire locked bonus on a 50/50 outcome
// POST /api/roulette/play
func (h *RouletteHandler) Play(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	result, err := h.rouletteUsecase.Play(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNoLockedBonus) {
			response.Error(c, domainerrors.PreconditionFailed("No locked bonus to play", err))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
