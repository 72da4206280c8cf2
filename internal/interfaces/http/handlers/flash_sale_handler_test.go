package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
	domainerrors "github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/errors"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/utils"
)

type flashSaleServiceStub struct {
	createSaleFn   func(ctx context.Context, input *entities.FlashSaleInput) (*entities.FlashSale, error)
	listSalesFn    func(ctx context.Context, activeOnly bool) ([]*entities.FlashSale, error)
	nominateFn     func(ctx context.Context, userID, flashSaleID uuid.UUID, input *entities.CreateNominationInput) (*entities.FlashSaleNomination, error)
	listByUserFn   func(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]*entities.FlashSaleNomination, *utils.PaginationMeta, error)
	listByStatusFn func(ctx context.Context, status entities.NominationStatus, params utils.PaginationParams) ([]*entities.FlashSaleNomination, *utils.PaginationMeta, error)
	approveFn      func(ctx context.Context, nominationID, adminID uuid.UUID, input *entities.ReviewNominationInput) (*entities.FlashSaleNomination, error)
	rejectFn       func(ctx context.Context, nominationID, adminID uuid.UUID, input *entities.ReviewNominationInput) (*entities.FlashSaleNomination, error)
	listProductsFn func(ctx context.Context, flashSaleID uuid.UUID) ([]*entities.FlashSaleProduct, error)
	recordSaleFn   func(ctx context.Context, flashSaleID, productID uuid.UUID, input *entities.RecordSaleInput) (*entities.FlashSaleProduct, error)
}

func (s *flashSaleServiceStub) CreateSale(ctx context.Context, input *entities.FlashSaleInput) (*entities.FlashSale, error) {
	return s.createSaleFn(ctx, input)
}
func (s *flashSaleServiceStub) ListSales(ctx context.Context, activeOnly bool) ([]*entities.FlashSale, error) {
	return s.listSalesFn(ctx, activeOnly)
}
func (s *flashSaleServiceStub) Nominate(ctx context.Context, userID, flashSaleID uuid.UUID, input *entities.CreateNominationInput) (*entities.FlashSaleNomination, error) {
	return s.nominateFn(ctx, userID, flashSaleID, input)
}
func (s *flashSaleServiceStub) ListNominationsByUser(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]*entities.FlashSaleNomination, *utils.PaginationMeta, error) {
	return s.listByUserFn(ctx, userID, params)
}
func (s *flashSaleServiceStub) ListNominationsByStatus(ctx context.Context, status entities.NominationStatus, params utils.PaginationParams) ([]*entities.FlashSaleNomination, *utils.PaginationMeta, error) {
	return s.listByStatusFn(ctx, status, params)
}
func (s *flashSaleServiceStub) ApproveNomination(ctx context.Context, nominationID, adminID uuid.UUID, input *entities.ReviewNominationInput) (*entities.FlashSaleNomination, error) {
	return s.approveFn(ctx, nominationID, adminID, input)
}
func (s *flashSaleServiceStub) RejectNomination(ctx context.Context, nominationID, adminID uuid.UUID, input *entities.ReviewNominationInput) (*entities.FlashSaleNomination, error) {
	return s.rejectFn(ctx, nominationID, adminID, input)
}
func (s *flashSaleServiceStub) ListSaleProducts(ctx context.Context, flashSaleID uuid.UUID) ([]*entities.FlashSaleProduct, error) {
	return s.listProductsFn(ctx, flashSaleID)
}
func (s *flashSaleServiceStub) RecordSale(ctx context.Context, flashSaleID, productID uuid.UUID, input *entities.RecordSaleInput) (*entities.FlashSaleProduct, error) {
	return s.recordSaleFn(ctx, flashSaleID, productID, input)
}

func TestFlashSaleHandler_CreateSale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &flashSaleServiceStub{
		createSaleFn: func(_ context.Context, input *entities.FlashSaleInput) (*entities.FlashSale, error) {
			require.Equal(t, "Eid Sale", input.Title)
			return &entities.FlashSale{ID: uuid.New(), Title: input.Title, IsActive: true}, nil
		},
	}
	h := &FlashSaleHandler{flashSaleUsecase: stub}

	r := gin.New()
	r.POST("/admin/flash-sales", authAs(uuid.New()), h.CreateSale)

	body := `{"title":"Eid Sale","startsAt":"2026-09-01T00:00:00Z","endsAt":"2026-09-03T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/flash-sales", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), "Eid Sale")
}

func TestFlashSaleHandler_ListSalesActiveFlag(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &flashSaleServiceStub{
		listSalesFn: func(_ context.Context, activeOnly bool) ([]*entities.FlashSale, error) {
			require.True(t, activeOnly)
			return []*entities.FlashSale{{ID: uuid.New(), Title: "Live", StartsAt: time.Now(), EndsAt: time.Now().Add(time.Hour)}}, nil
		},
	}
	h := &FlashSaleHandler{flashSaleUsecase: stub}

	r := gin.New()
	r.GET("/flash-sales", h.ListSales)

	req := httptest.NewRequest(http.MethodGet, "/flash-sales?active=true", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Live")
}

func TestFlashSaleHandler_Nominate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()
	saleID := uuid.New()
	productID := uuid.New()

	stub := &flashSaleServiceStub{
		nominateFn: func(_ context.Context, gotUserID, gotSaleID uuid.UUID, input *entities.CreateNominationInput) (*entities.FlashSaleNomination, error) {
			require.Equal(t, userID, gotUserID)
			require.Equal(t, saleID, gotSaleID)
			require.Equal(t, 800.0, input.ProposedPrice)
			return &entities.FlashSaleNomination{ID: uuid.New(), Status: entities.NominationStatusPending}, nil
		},
	}
	h := &FlashSaleHandler{flashSaleUsecase: stub}

	r := gin.New()
	r.POST("/flash-sales/:id/nominations", authAs(userID), h.Nominate)

	body := `{"productId":"` + productID.String() + `","proposedPrice":800,"originalPrice":1000,"stockLimit":50,"totalFee":250}`
	req := httptest.NewRequest(http.MethodPost, "/flash-sales/"+saleID.String()+"/nominations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"status":"pending"`)
}

func TestFlashSaleHandler_NominateDiscountError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &flashSaleServiceStub{
		nominateFn: func(context.Context, uuid.UUID, uuid.UUID, *entities.CreateNominationInput) (*entities.FlashSaleNomination, error) {
			return nil, domainerrors.BadRequest("Flash sale discount must be at least 20%")
		},
	}
	h := &FlashSaleHandler{flashSaleUsecase: stub}

	r := gin.New()
	r.POST("/flash-sales/:id/nominations", authAs(uuid.New()), h.Nominate)

	body := `{"productId":"` + uuid.NewString() + `","proposedPrice":950,"originalPrice":1000,"stockLimit":50,"totalFee":250}`
	req := httptest.NewRequest(http.MethodPost, "/flash-sales/"+uuid.NewString()+"/nominations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Flash sale discount must be at least 20%")
}

func TestFlashSaleHandler_ApproveNomination(t *testing.T) {
	gin.SetMode(gin.TestMode)
	nominationID := uuid.New()
	adminID := uuid.New()

	stub := &flashSaleServiceStub{
		approveFn: func(_ context.Context, gotNominationID, gotAdminID uuid.UUID, input *entities.ReviewNominationInput) (*entities.FlashSaleNomination, error) {
			require.Equal(t, nominationID, gotNominationID)
			require.Equal(t, adminID, gotAdminID)
			require.Equal(t, "looks good", input.AdminNotes)
			return &entities.FlashSaleNomination{ID: gotNominationID, Status: entities.NominationStatusApproved, FeeDeducted: true}, nil
		},
	}
	h := &FlashSaleHandler{flashSaleUsecase: stub}

	r := gin.New()
	r.POST("/admin/nominations/:id/approve", authAs(adminID), h.ApproveNomination)

	req := httptest.NewRequest(http.MethodPost, "/admin/nominations/"+nominationID.String()+"/approve", strings.NewReader(`{"adminNotes":"looks good"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"feeDeducted":true`)
}

func TestFlashSaleHandler_RecordSale(t *testing.T) {
	gin.SetMode(gin.TestMode)
	saleID := uuid.New()
	productID := uuid.New()

	stub := &flashSaleServiceStub{
		recordSaleFn: func(_ context.Context, gotSaleID, gotProductID uuid.UUID, input *entities.RecordSaleInput) (*entities.FlashSaleProduct, error) {
			require.Equal(t, saleID, gotSaleID)
			require.Equal(t, productID, gotProductID)
			require.Equal(t, 2, input.Quantity)
			return &entities.FlashSaleProduct{FlashSaleID: gotSaleID, ProductID: gotProductID, SoldCount: 2}, nil
		},
	}
	h := &FlashSaleHandler{flashSaleUsecase: stub}

	r := gin.New()
	r.POST("/flash-sales/:id/products/:productId/sales", h.RecordSale)

	req := httptest.NewRequest(http.MethodPost, "/flash-sales/"+saleID.String()+"/products/"+productID.String()+"/sales", strings.NewReader(`{"quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"soldCount":2`)
}

func TestFlashSaleHandler_RecordSaleStockLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &flashSaleServiceStub{
		recordSaleFn: func(context.Context, uuid.UUID, uuid.UUID, *entities.RecordSaleInput) (*entities.FlashSaleProduct, error) {
			return nil, domainerrors.Conflict("Flash sale stock limit reached")
		},
	}
	h := &FlashSaleHandler{flashSaleUsecase: stub}

	r := gin.New()
	r.POST("/flash-sales/:id/products/:productId/sales", h.RecordSale)

	req := httptest.NewRequest(http.MethodPost, "/flash-sales/"+uuid.NewString()+"/products/"+uuid.NewString()+"/sales", strings.NewReader(`{"quantity":1}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "Flash sale stock limit reached")
}
