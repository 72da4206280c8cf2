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

type payoutService interface {
	Request(ctx context.Context, userID uuid.UUID, input *entities.RequestPayoutInput) (*entities.PayoutRequest, error)
	ListByUser(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]*entities.PayoutRequest, *utils.PaginationMeta, error)
	ListByStatus(ctx context.Context, status entities.PayoutStatus, params utils.PaginationParams) ([]*entities.PayoutRequest, *utils.PaginationMeta, error)
	Process(ctx context.Context, payoutID, adminID uuid.UUID, input *entities.ProcessPayoutInput) (*entities.PayoutRequest, error)
	Reject(ctx context.Context, payoutID, adminID uuid.UUID, input *entities.RejectPayoutInput) (*entities.PayoutRequest, error)
}

// PayoutHandler handles payout endpoints
type PayoutHandler struct {
	payoutUsecase payoutService
}

// NewPayoutHandler creates a new payout handler
func NewPayoutHandler(payoutUsecase *usecases.PayoutUsecase) *PayoutHandler {
	return &PayoutHandler{payoutUsecase: payoutUsecase}
}

// Request submits a payout request
// POST /api/v1/payouts
func (h *PayoutHandler) Request(c *gin.Context) {
	var input entities.RequestPayoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	payout, err := h.payoutUsecase.Request(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, payout)
}

// ListMine returns the caller's payout requests
// GET /api/v1/payouts
func (h *PayoutHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	params := bindPagination(c)
	payouts, meta, err := h.payoutUsecase.ListByUser(c.Request.Context(), userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, payouts, meta)
}

// ListByStatus returns payout requests by status
// GET /api/v1/admin/payouts?status=pending
func (h *PayoutHandler) ListByStatus(c *gin.Context) {
	status := entities.PayoutStatus(c.DefaultQuery("status", string(entities.PayoutStatusPending)))

	params := bindPagination(c)
	payouts, meta, err := h.payoutUsecase.ListByStatus(c.Request.Context(), status, params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, payouts, meta)
}

// Process completes a pending payout
// POST /api/v1/admin/payouts/:id/process
func (h *PayoutHandler) Process(c *gin.Context) {
	payoutID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.ProcessPayoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	payout, err := h.payoutUsecase.Process(c.Request.Context(), payoutID, adminID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, payout)
}

// Reject declines a pending payout
// POST /api/v1/admin/payouts/:id/reject
func (h *PayoutHandler) Reject(c *gin.Context) {
	payoutID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.RejectPayoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	payout, err := h.payoutUsecase.Reject(c.Request.Context(), payoutID, adminID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, payout)
}
