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
)

type productService interface {
	Create(ctx context.Context, sellerID uuid.UUID, input *entities.ProductInput) (*entities.Product, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entities.Product, error)
}

// ProductHandler handles seller catalog endpoints
type ProductHandler struct {
	productUsecase productService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productUsecase *usecases.ProductUsecase) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase}
}

// Create adds a product to the caller's catalog
// POST /api/v1/products
func (h *ProductHandler) Create(c *gin.Context) {
	var input entities.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	product, err := h.productUsecase.Create(c.Request.Context(), sellerID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, product)
}

// ListMine returns the caller's products
// GET /api/v1/products
func (h *ProductHandler) ListMine(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	products, err := h.productUsecase.ListBySeller(c.Request.Context(), sellerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, products)
}
