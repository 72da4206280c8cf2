package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
	domainerrors "github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/errors"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/interfaces/http/response"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/usecases"
)

type settingsService interface {
	List(ctx context.Context) ([]*entities.PlatformSetting, error)
	Update(ctx context.Context, key string, input *entities.SettingInput) error
}

// AdminSettingsHandler handles platform setting endpoints
type AdminSettingsHandler struct {
	settingsUsecase settingsService
}

// NewAdminSettingsHandler creates a new admin settings handler
func NewAdminSettingsHandler(settingsUsecase *usecases.SettingsUsecase) *AdminSettingsHandler {
	return &AdminSettingsHandler{settingsUsecase: settingsUsecase}
}

// List returns all platform settings
// GET /api/v1/admin/settings
func (h *AdminSettingsHandler) List(c *gin.Context) {
	settings, err := h.settingsUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, settings)
}

// Update sets a platform setting
// PUT /api/v1/admin/settings/:key
func (h *AdminSettingsHandler) Update(c *gin.Context) {
	var input entities.SettingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	key := c.Param("key")
	if err := h.settingsUsecase.Update(c.Request.Context(), key, &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"key": key, "value": input.Value})
}
