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

type billingService interface {
	GetOverview(ctx context.Context, userID uuid.UUID) (*usecases.SubscriptionOverview, error)
	GetDeductionHistory(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]*entities.SubscriptionDeductionLog, *utils.PaginationMeta, error)
	RequestPlanChange(ctx context.Context, userID uuid.UUID, input *entities.PlanChangeInput) (*entities.PlanChangeRequest, error)
	ListPendingPlanChanges(ctx context.Context, params utils.PaginationParams) ([]*entities.PlanChangeRequest, *utils.PaginationMeta, error)
	ResolvePlanChange(ctx context.Context, requestID, adminID uuid.UUID, approve bool, notes string) (*entities.PlanChangeRequest, error)
	DeductNow(ctx context.Context, userID uuid.UUID) (*entities.SellerSubscription, error)
}

// SubscriptionHandler handles seller billing endpoints
type SubscriptionHandler struct {
	billingUsecase billingService
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(billingUsecase *usecases.BillingUsecase) *SubscriptionHandler {
	return &SubscriptionHandler{billingUsecase: billingUsecase}
}

// GetOverview returns the caller's subscription state
// GET /api/v1/subscription
func (h *SubscriptionHandler) GetOverview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	overview, err := h.billingUsecase.GetOverview(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, overview)
}

// GetHistory returns the caller's billing audit log
// GET /api/v1/subscription/deductions
func (h *SubscriptionHandler) GetHistory(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	params := bindPagination(c)
	logs, meta, err := h.billingUsecase.GetDeductionHistory(c.Request.Context(), userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, logs, meta)
}

// RequestPlanChange submits a plan change for review
// POST /api/v1/subscription/plan-change
func (h *SubscriptionHandler) RequestPlanChange(c *gin.Context) {
	var input entities.PlanChangeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	req, err := h.billingUsecase.RequestPlanChange(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, req)
}

// ListPlanChanges returns pending plan change requests
// GET /api/v1/admin/plan-changes
func (h *SubscriptionHandler) ListPlanChanges(c *gin.Context) {
	params := bindPagination(c)
	reqs, meta, err := h.billingUsecase.ListPendingPlanChanges(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, reqs, meta)
}

type resolvePlanChangeInput struct {
	Approve    bool   `json:"approve"`
	AdminNotes string `json:"adminNotes"`
}

// ResolvePlanChange approves or rejects a plan change request
// POST /api/v1/admin/plan-changes/:id/resolve
func (h *SubscriptionHandler) ResolvePlanChange(c *gin.Context) {
	requestID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input resolvePlanChangeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	req, err := h.billingUsecase.ResolvePlanChange(c.Request.Context(), requestID, adminID, input.Approve, input.AdminNotes)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, req)
}

// DeductNow runs an immediate billing attempt for one seller
// POST /api/v1/admin/subscriptions/:userId/deduct
func (h *SubscriptionHandler) DeductNow(c *gin.Context) {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}

	sub, err := h.billingUsecase.DeductNow(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, sub)
}
