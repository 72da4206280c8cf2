package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
	domainerrors "github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/errors"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/interfaces/http/middleware"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/interfaces/http/response"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/usecases"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/utils"
)

type flashSaleService interface {
	CreateSale(ctx context.Context, input *entities.FlashSaleInput) (*entities.FlashSale, error)
	ListSales(ctx context.Context, activeOnly bool) ([]*entities.FlashSale, error)
	Nominate(ctx context.Context, userID, flashSaleID uuid.UUID, input *entities.CreateNominationInput) (*entities.FlashSaleNomination, error)
	ListNominationsByUser(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]*entities.FlashSaleNomination, *utils.PaginationMeta, error)
	ListNominationsByStatus(ctx context.Context, status entities.NominationStatus, params utils.PaginationParams) ([]*entities.FlashSaleNomination, *utils.PaginationMeta, error)
	ApproveNomination(ctx context.Context, nominationID, adminID uuid.UUID, input *entities.ReviewNominationInput) (*entities.FlashSaleNomination, error)
	RejectNomination(ctx context.Context, nominationID, adminID uuid.UUID, input *entities.ReviewNominationInput) (*entities.FlashSaleNomination, error)
	ListSaleProducts(ctx context.Context, flashSaleID uuid.UUID) ([]*entities.FlashSaleProduct, error)
	RecordSale(ctx context.Context, flashSaleID, productID uuid.UUID, input *entities.RecordSaleInput) (*entities.FlashSaleProduct, error)
}

// FlashSaleHandler handles flash sale endpoints
type FlashSaleHandler struct {
	flashSaleUsecase flashSaleService
}

// NewFlashSaleHandler creates a new flash sale handler
func NewFlashSaleHandler(flashSaleUsecase *usecases.FlashSaleUsecase) *FlashSaleHandler {
	return &FlashSaleHandler{flashSaleUsecase: flashSaleUsecase}
}

// ListSales returns flash sale events
// GET /api/v1/flash-sales?active=true
func (h *FlashSaleHandler) ListSales(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active", "false"))
	sales, err := h.flashSaleUsecase.ListSales(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, sales)
}

// CreateSale creates a flash sale event
// POST /api/v1/admin/flash-sales
func (h *FlashSaleHandler) CreateSale(c *gin.Context) {
	var input entities.FlashSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	sale, err := h.flashSaleUsecase.CreateSale(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, sale)
}

// Nominate submits a product for a flash sale
// POST /api/v1/flash-sales/:id/nominations
func (h *FlashSaleHandler) Nominate(c *gin.Context) {
	flashSaleID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.CreateNominationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	nomination, err := h.flashSaleUsecase.Nominate(c.Request.Context(), userID, flashSaleID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, nomination)
}

// ListMyNominations returns the caller's nominations
// GET /api/v1/flash-sales/nominations
func (h *FlashSaleHandler) ListMyNominations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	params := bindPagination(c)
	nominations, meta, err := h.flashSaleUsecase.ListNominationsByUser(c.Request.Context(), userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, nominations, meta)
}

// ListNominations returns nominations by status
// GET /api/v1/admin/nominations?status=pending
func (h *FlashSaleHandler) ListNominations(c *gin.Context) {
	status := entities.NominationStatus(c.DefaultQuery("status", string(entities.NominationStatusPending)))

	params := bindPagination(c)
	nominations, meta, err := h.flashSaleUsecase.ListNominationsByStatus(c.Request.Context(), status, params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, nominations, meta)
}

// ApproveNomination approves a nomination and deducts the listing fee
// POST /api/v1/admin/nominations/:id/approve
func (h *FlashSaleHandler) ApproveNomination(c *gin.Context) {
	nominationID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.ReviewNominationInput
	_ = c.ShouldBindJSON(&input)

	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	nomination, err := h.flashSaleUsecase.ApproveNomination(c.Request.Context(), nominationID, adminID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, nomination)
}

// RejectNomination declines a nomination
// POST /api/v1/admin/nominations/:id/reject
func (h *FlashSaleHandler) RejectNomination(c *gin.Context) {
	nominationID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.ReviewNominationInput
	_ = c.ShouldBindJSON(&input)

	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	nomination, err := h.flashSaleUsecase.RejectNomination(c.Request.Context(), nominationID, adminID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, nomination)
}

// ListSaleProducts returns a flash sale's live listings
// GET /api/v1/flash-sales/:id/products
func (h *FlashSaleHandler) ListSaleProducts(c *gin.Context) {
	flashSaleID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	products, err := h.flashSaleUsecase.ListSaleProducts(c.Request.Context(), flashSaleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, products)
}

// RecordSale counts a purchase against a flash-sale listing
// POST /api/v1/flash-sales/:id/products/:productId/sales
func (h *FlashSaleHandler) RecordSale(c *gin.Context) {
	flashSaleID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.RecordSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	listing, err := h.flashSaleUsecase.RecordSale(c.Request.Context(), flashSaleID, productID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, listing)
}
