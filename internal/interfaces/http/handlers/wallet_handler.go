package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
	domainerrors "github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/errors"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/interfaces/http/middleware"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/interfaces/http/response"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/usecases"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/utils"
)

type walletService interface {
	GetSnapshot(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error)
	GetLedger(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]*entities.LedgerEntry, *utils.PaginationMeta, error)
	RecordEarning(ctx context.Context, userID, orderID uuid.UUID, grossAmount float64, description string) (*entities.LedgerEntry, error)
	RecordRefundDeduction(ctx context.Context, userID, orderID uuid.UUID, amount float64, description string) (*entities.LedgerEntry, error)
}

// WalletHandler handles wallet and ledger endpoints
type WalletHandler struct {
	walletUsecase walletService
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUsecase *usecases.WalletUsecase) *WalletHandler {
	return &WalletHandler{walletUsecase: walletUsecase}
}

// GetWallet returns the caller's wallet balances
// GET /api/v1/wallet
func (h *WalletHandler) GetWallet(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	wallet, err := h.walletUsecase.GetSnapshot(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, wallet)
}

// GetLedger returns the caller's ledger entries newest-first
// GET /api/v1/wallet/ledger
func (h *WalletHandler) GetLedger(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	params := bindPagination(c)
	entries, meta, err := h.walletUsecase.GetLedger(c.Request.Context(), userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, entries, meta)
}

// RecordEarning credits a seller for a delivered order
// POST /api/v1/admin/wallets/:userId/earnings
func (h *WalletHandler) RecordEarning(c *gin.Context) {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.RecordEarningInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	orderID, err := uuid.Parse(input.OrderID)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid order id"))
		return
	}

	entry, err := h.walletUsecase.RecordEarning(c.Request.Context(), userID, orderID, input.GrossAmount, input.Description)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, entry)
}

// RecordRefundDeduction claws an earning back after an order refund
// POST /api/v1/admin/wallets/:userId/refund-deductions
func (h *WalletHandler) RecordRefundDeduction(c *gin.Context) {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.RefundDeductionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	orderID, err := uuid.Parse(input.OrderID)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid order id"))
		return
	}

	entry, err := h.walletUsecase.RecordRefundDeduction(c.Request.Context(), userID, orderID, input.Amount, input.Description)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, entry)
}
