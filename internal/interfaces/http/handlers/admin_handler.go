package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"questhub.backend/internal/domain/entities"
	domainerrors "questhub.backend/internal/domain/errors"
	"questhub.backend/internal/interfaces/http/response"
	"questhub.backend/internal/usecases"
)

// AdminHandler handles the transaction moderation queue
type AdminHandler struct {
	txUsecase *usecases.TransactionUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(txUsecase *usecases.TransactionUsecase) *AdminHandler {
	return &AdminHandler{
		txUsecase: txUsecase,
	}
}

// ListPending returns all pending transactions with requester emails
// GET /api/admin/transactions/pending
func (h *AdminHandler) ListPending(c *gin.Context) {
	txs, err := h.txUsecase.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, txs)
}

// Approve resolves a pending transaction. Approving an already-processed
// transaction is a no-op and still reports success.
// POST /api/admin/transactions/:id/approve
func (h *AdminHandler) Approve(c *gin.Context) {
	txID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid transaction id"))
		return
	}

	var input entities.ApprovalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.txUsecase.Approve(c.Request.Context(), txID, input.Action); err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			response.Error(c, domainerrors.NotFound("Transaction not found"))
		case errors.Is(err, domainerrors.ErrInsufficientFunds):
			response.Error(c, domainerrors.PreconditionFailed("User has insufficient funds for this withdrawal", err))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
	})
}
