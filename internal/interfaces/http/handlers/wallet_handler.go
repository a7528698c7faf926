package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"questhub.backend/internal/domain/entities"
	domainerrors "questhub.backend/internal/domain/errors"
	"questhub.backend/internal/interfaces/http/middleware"
	"questhub.backend/internal/interfaces/http/response"
	"questhub.backend/internal/usecases"
	"questhub.backend/pkg/utils"
)

// WalletHandler handles deposit/withdrawal requests and history
type WalletHandler struct {
	txUsecase *usecases.TransactionUsecase
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(txUsecase *usecases.TransactionUsecase) *WalletHandler {
	return &WalletHandler{
		txUsecase: txUsecase,
	}
}

// Deposit records a pending deposit request
// POST /api/wallet/deposit
func (h *WalletHandler) Deposit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	tx, err := h.txUsecase.CreateDeposit(c.Request.Context(), userID, input.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, tx)
}

// Withdraw records a pending withdrawal request
// POST /api/wallet/withdraw
func (h *WalletHandler) Withdraw(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	tx, err := h.txUsecase.CreateWithdrawal(c.Request.Context(), userID, input.Amount)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInsufficientFunds) {
			response.Error(c, domainerrors.PreconditionFailed("Insufficient available funds", err))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, tx)
}

// History returns the user's transactions, newest first. Supports optional
// page/limit query params; without them the full history is returned.
// GET /api/wallet/history
func (h *WalletHandler) History(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	params := utils.GetPaginationParams(page, limit)

	txs, err := h.txUsecase.History(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if params.Limit > 0 {
		offset := params.CalculateOffset()
		if offset > len(txs) {
			offset = len(txs)
		}
		end := offset + params.Limit
		if end > len(txs) {
			end = len(txs)
		}
		txs = txs[offset:end]
	}

	response.Success(c, http.StatusOK, txs)
}
