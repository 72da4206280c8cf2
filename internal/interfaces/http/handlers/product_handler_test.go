package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
)

type productServiceStub struct {
	createFn func(ctx context.Context, sellerID uuid.UUID, input *entities.ProductInput) (*entities.Product, error)
	listFn   func(ctx context.Context, sellerID uuid.UUID) ([]*entities.Product, error)
}

func (s *productServiceStub) Create(ctx context.Context, sellerID uuid.UUID, input *entities.ProductInput) (*entities.Product, error) {
	return s.createFn(ctx, sellerID, input)
}
func (s *productServiceStub) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entities.Product, error) {
	return s.listFn(ctx, sellerID)
}

func TestProductHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sellerID := uuid.New()

	stub := &productServiceStub{
		createFn: func(_ context.Context, gotSellerID uuid.UUID, input *entities.ProductInput) (*entities.Product, error) {
			require.Equal(t, sellerID, gotSellerID)
			require.Equal(t, "Keyboard", input.Name)
			return &entities.Product{ID: uuid.New(), SellerID: gotSellerID, Name: input.Name, Price: input.Price}, nil
		},
	}
	h := &ProductHandler{productUsecase: stub}

	r := gin.New()
	r.POST("/products", authAs(sellerID), h.Create)

	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"name":"Keyboard","price":4500}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), "Keyboard")
}

func TestProductHandler_CreateRejectsZeroPrice(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &ProductHandler{productUsecase: &productServiceStub{}}

	r := gin.New()
	r.POST("/products", authAs(uuid.New()), h.Create)

	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"name":"Freebie","price":0}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandler_ListMine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sellerID := uuid.New()

	stub := &productServiceStub{
		listFn: func(_ context.Context, gotSellerID uuid.UUID) ([]*entities.Product, error) {
			require.Equal(t, sellerID, gotSellerID)
			return []*entities.Product{{ID: uuid.New(), SellerID: gotSellerID, Name: "Mouse", Price: 1200}}, nil
		},
	}
	h := &ProductHandler{productUsecase: stub}

	r := gin.New()
	r.GET("/products", authAs(sellerID), h.ListMine)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Mouse")
}
