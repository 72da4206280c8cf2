package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
	domainerrors "github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/errors"
)

type settingsServiceStub struct {
	listFn   func(ctx context.Context) ([]*entities.PlatformSetting, error)
	updateFn func(ctx context.Context, key string, input *entities.SettingInput) error
}

func (s *settingsServiceStub) List(ctx context.Context) ([]*entities.PlatformSetting, error) {
	return s.listFn(ctx)
}
func (s *settingsServiceStub) Update(ctx context.Context, key string, input *entities.SettingInput) error {
	return s.updateFn(ctx, key, input)
}

func TestAdminSettingsHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &settingsServiceStub{
		listFn: func(context.Context) ([]*entities.PlatformSetting, error) {
			return []*entities.PlatformSetting{
				{Key: "daily_subscription_fee", Value: "25"},
				{Key: "manual_deposits_enabled", Value: "true"},
			}, nil
		},
	}
	h := &AdminSettingsHandler{settingsUsecase: stub}

	r := gin.New()
	r.GET("/admin/settings", h.List)

	req := httptest.NewRequest(http.MethodGet, "/admin/settings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "daily_subscription_fee")
}

func TestAdminSettingsHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &settingsServiceStub{
		updateFn: func(_ context.Context, key string, input *entities.SettingInput) error {
			require.Equal(t, "daily_subscription_fee", key)
			require.Equal(t, "30", input.Value)
			return nil
		},
	}
	h := &AdminSettingsHandler{settingsUsecase: stub}

	r := gin.New()
	r.PUT("/admin/settings/:key", h.Update)

	req := httptest.NewRequest(http.MethodPut, "/admin/settings/daily_subscription_fee", strings.NewReader(`{"value":"30"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"value":"30"`)
}

func TestAdminSettingsHandler_UpdateUnknownKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &settingsServiceStub{
		updateFn: func(context.Context, string, *entities.SettingInput) error {
			return domainerrors.NotFound("Unknown setting")
		},
	}
	h := &AdminSettingsHandler{settingsUsecase: stub}

	r := gin.New()
	r.PUT("/admin/settings/:key", h.Update)

	req := httptest.NewRequest(http.MethodPut, "/admin/settings/nope", strings.NewReader(`{"value":"1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Unknown setting")
}
