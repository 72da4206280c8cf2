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
	domainerrors "github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/errors"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/interfaces/http/middleware"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/utils"
)

type payoutServiceStub struct {
	requestFn      func(ctx context.Context, userID uuid.UUID, input *entities.RequestPayoutInput) (*entities.PayoutRequest, error)
	listByUserFn   func(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]*entities.PayoutRequest, *utils.PaginationMeta, error)
	listByStatusFn func(ctx context.Context, status entities.PayoutStatus, params utils.PaginationParams) ([]*entities.PayoutRequest, *utils.PaginationMeta, error)
	processFn      func(ctx context.Context, payoutID, adminID uuid.UUID, input *entities.ProcessPayoutInput) (*entities.PayoutRequest, error)
	rejectFn       func(ctx context.Context, payoutID, adminID uuid.UUID, input *entities.RejectPayoutInput) (*entities.PayoutRequest, error)
}

func (s *payoutServiceStub) Request(ctx context.Context, userID uuid.UUID, input *entities.RequestPayoutInput) (*entities.PayoutRequest, error) {
	return s.requestFn(ctx, userID, input)
}
func (s *payoutServiceStub) ListByUser(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]*entities.PayoutRequest, *utils.PaginationMeta, error) {
	return s.listByUserFn(ctx, userID, params)
}
func (s *payoutServiceStub) ListByStatus(ctx context.Context, status entities.PayoutStatus, params utils.PaginationParams) ([]*entities.PayoutRequest, *utils.PaginationMeta, error) {
	return s.listByStatusFn(ctx, status, params)
}
func (s *payoutServiceStub) Process(ctx context.Context, payoutID, adminID uuid.UUID, input *entities.ProcessPayoutInput) (*entities.PayoutRequest, error) {
	return s.processFn(ctx, payoutID, adminID, input)
}
func (s *payoutServiceStub) Reject(ctx context.Context, payoutID, adminID uuid.UUID, input *entities.RejectPayoutInput) (*entities.PayoutRequest, error) {
	return s.rejectFn(ctx, payoutID, adminID, input)
}

func authAs(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

func TestPayoutHandler_Request(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()

	stub := &payoutServiceStub{
		requestFn: func(_ context.Context, gotUserID uuid.UUID, input *entities.RequestPayoutInput) (*entities.PayoutRequest, error) {
			require.Equal(t, userID, gotUserID)
			require.Equal(t, 1500.0, input.Amount)
			return &entities.PayoutRequest{ID: uuid.New(), UserID: gotUserID, Amount: input.Amount, Status: entities.PayoutStatusPending}, nil
		},
	}
	h := &PayoutHandler{payoutUsecase: stub}

	r := gin.New()
	r.POST("/payouts", authAs(userID), h.Request)

	body := `{"amount":1500,"bankName":"HBL","accountTitle":"Ali","iban":"PK36HABB0000001123456702"}`
	req := httptest.NewRequest(http.MethodPost, "/payouts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"status":"pending"`)
}

func TestPayoutHandler_RequestValidationAndAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &PayoutHandler{payoutUsecase: &payoutServiceStub{}}

	r := gin.New()
	r.POST("/payouts", authAs(uuid.New()), h.Request)

	// Missing required fields never reach the usecase.
	req := httptest.NewRequest(http.MethodPost, "/payouts", strings.NewReader(`{"amount":1500}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// No auth context at all.
	bare := gin.New()
	bare.POST("/payouts", h.Request)
	body := `{"amount":1500,"bankName":"HBL","accountTitle":"Ali","iban":"PK36"}`
	req = httptest.NewRequest(http.MethodPost, "/payouts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	bare.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPayoutHandler_RequestUsecaseError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &payoutServiceStub{
		requestFn: func(context.Context, uuid.UUID, *entities.RequestPayoutInput) (*entities.PayoutRequest, error) {
			return nil, domainerrors.BadRequest("Minimum payout amount is Rs. 1,000")
		},
	}
	h := &PayoutHandler{payoutUsecase: stub}

	r := gin.New()
	r.POST("/payouts", authAs(uuid.New()), h.Request)

	body := `{"amount":900,"bankName":"HBL","accountTitle":"Ali","iban":"PK36"}`
	req := httptest.NewRequest(http.MethodPost, "/payouts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Minimum payout amount is Rs. 1,000")
}

func TestPayoutHandler_Process(t *testing.T) {
	gin.SetMode(gin.TestMode)
	payoutID := uuid.New()
	adminID := uuid.New()

	stub := &payoutServiceStub{
		processFn: func(_ context.Context, gotPayoutID, gotAdminID uuid.UUID, input *entities.ProcessPayoutInput) (*entities.PayoutRequest, error) {
			require.Equal(t, payoutID, gotPayoutID)
			require.Equal(t, adminID, gotAdminID)
			require.Equal(t, "TXN-001", input.TransactionReference)
			return &entities.PayoutRequest{ID: gotPayoutID, Status: entities.PayoutStatusCompleted}, nil
		},
	}
	h := &PayoutHandler{payoutUsecase: stub}

	r := gin.New()
	r.POST("/admin/payouts/:id/process", authAs(adminID), h.Process)

	req := httptest.NewRequest(http.MethodPost, "/admin/payouts/"+payoutID.String()+"/process", strings.NewReader(`{"transactionReference":"TXN-001"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"completed"`)
}

func TestPayoutHandler_ProcessInvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &PayoutHandler{payoutUsecase: &payoutServiceStub{}}

	r := gin.New()
	r.POST("/admin/payouts/:id/process", authAs(uuid.New()), h.Process)

	req := httptest.NewRequest(http.MethodPost, "/admin/payouts/not-a-uuid/process", strings.NewReader(`{"transactionReference":"TXN-001"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid id")
}

func TestPayoutHandler_ListMine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()

	stub := &payoutServiceStub{
		listByUserFn: func(_ context.Context, gotUserID uuid.UUID, params utils.PaginationParams) ([]*entities.PayoutRequest, *utils.PaginationMeta, error) {
			require.Equal(t, userID, gotUserID)
			require.Equal(t, 2, params.Page)
			require.Equal(t, 10, params.Limit)
			meta := utils.CalculateMeta(25, params.Page, params.Limit)
			return []*entities.PayoutRequest{{ID: uuid.New(), UserID: gotUserID}}, &meta, nil
		},
	}
	h := &PayoutHandler{payoutUsecase: stub}

	r := gin.New()
	r.GET("/payouts", authAs(userID), h.ListMine)

	req := httptest.NewRequest(http.MethodGet, "/payouts?page=2&limit=10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"totalPages":3`)
}

func TestPayoutHandler_ListByStatusDefaultsToPending(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &payoutServiceStub{
		listByStatusFn: func(_ context.Context, status entities.PayoutStatus, params utils.PaginationParams) ([]*entities.PayoutRequest, *utils.PaginationMeta, error) {
			require.Equal(t, entities.PayoutStatusPending, status)
			meta := utils.CalculateMeta(0, params.Page, params.Limit)
			return []*entities.PayoutRequest{}, &meta, nil
		},
	}
	h := &PayoutHandler{payoutUsecase: stub}

	r := gin.New()
	r.GET("/admin/payouts", authAs(uuid.New()), h.ListByStatus)

	req := httptest.NewRequest(http.MethodGet, "/admin/payouts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
