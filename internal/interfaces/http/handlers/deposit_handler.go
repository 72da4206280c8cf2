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

type depositService interface {
	Create(ctx context.Context, userID uuid.UUID, role entities.UserRole, input *entities.CreateDepositInput) (*entities.DepositRequest, error)
	ListByUser(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]*entities.DepositRequest, *utils.PaginationMeta, error)
	ListByStatus(ctx context.Context, status entities.DepositStatus, params utils.PaginationParams) ([]*entities.DepositRequest, *utils.PaginationMeta, error)
	Approve(ctx context.Context, depositID, adminID uuid.UUID, notes string) (*entities.DepositRequest, error)
	Reject(ctx context.Context, depositID, adminID uuid.UUID, reason string) (*entities.DepositRequest, error)
	ListPaymentMethods(ctx context.Context, activeOnly bool) ([]*entities.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, input *entities.PaymentMethodInput) (*entities.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, id uuid.UUID, input *entities.PaymentMethodInput) (*entities.PaymentMethod, error)
}

// DepositHandler handles deposit and payment method endpoints
type DepositHandler struct {
	depositUsecase depositService
}

// NewDepositHandler creates a new deposit handler
func NewDepositHandler(depositUsecase *usecases.DepositUsecase) *DepositHandler {
	return &DepositHandler{depositUsecase: depositUsecase}
}

// Create submits a deposit request
// POST /api/v1/deposits
func (h *DepositHandler) Create(c *gin.Context) {
	var input entities.CreateDepositInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}
	role, _ := middleware.GetUserRole(c)

	deposit, err := h.depositUsecase.Create(c.Request.Context(), userID, entities.UserRole(role), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, deposit)
}

// ListMine returns the caller's deposit requests
// GET /api/v1/deposits
func (h *DepositHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	params := bindPagination(c)
	deposits, meta, err := h.depositUsecase.ListByUser(c.Request.Context(), userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, deposits, meta)
}

// ListPaymentMethods returns active deposit destinations
// GET /api/v1/deposits/payment-methods
func (h *DepositHandler) ListPaymentMethods(c *gin.Context) {
	methods, err := h.depositUsecase.ListPaymentMethods(c.Request.Context(), true)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, methods)
}

// ListByStatus returns deposit requests by status
// GET /api/v1/admin/deposits?status=pending
func (h *DepositHandler) ListByStatus(c *gin.Context) {
	status := entities.DepositStatus(c.DefaultQuery("status", string(entities.DepositStatusPending)))

	params := bindPagination(c)
	deposits, meta, err := h.depositUsecase.ListByStatus(c.Request.Context(), status, params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, deposits, meta)
}

type reviewDepositInput struct {
	AdminNotes string `json:"adminNotes"`
	Reason     string `json:"reason"`
}

// Approve credits the requester's wallet and approves the deposit
// POST /api/v1/admin/deposits/:id/approve
func (h *DepositHandler) Approve(c *gin.Context) {
	depositID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input reviewDepositInput
	_ = c.ShouldBindJSON(&input)

	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	deposit, err := h.depositUsecase.Approve(c.Request.Context(), depositID, adminID, input.AdminNotes)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, deposit)
}

// Reject declines a pending deposit
// POST /api/v1/admin/deposits/:id/reject
func (h *DepositHandler) Reject(c *gin.Context) {
	depositID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input reviewDepositInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Reason == "" {
		response.Error(c, domainerrors.BadRequest("Rejection reason is required"))
		return
	}

	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	deposit, err := h.depositUsecase.Reject(c.Request.Context(), depositID, adminID, input.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, deposit)
}

// CreatePaymentMethod adds a deposit destination
// POST /api/v1/admin/payment-methods
func (h *DepositHandler) CreatePaymentMethod(c *gin.Context) {
	var input entities.PaymentMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	method, err := h.depositUsecase.CreatePaymentMethod(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, method)
}

// UpdatePaymentMethod edits a deposit destination
// PUT /api/v1/admin/payment-methods/:id
func (h *DepositHandler) UpdatePaymentMethod(c *gin.Context) {
	methodID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.PaymentMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	method, err := h.depositUsecase.UpdatePaymentMethod(c.Request.Context(), methodID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, method)
}
