package usecases

import (
	"context"
	"strconv"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
	domainerrors "github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/errors"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/repositories"
)

var settingValidators = map[string]func(string) bool{
	entities.SettingDailySubscriptionFee:   isFloat,
	entities.SettingDefaultCommissionRate:  isFloat,
	entities.SettingManualDepositsEnabled:  isBool,
	entities.SettingCODOnlyMode:            isBool,
	entities.SettingFreeSubscriptionMonths: isInt,
}

// SettingsUsecase handles admin-editable platform settings
type SettingsUsecase struct {
	settingRepo repositories.SettingRepository
}

// NewSettingsUsecase creates a new settings usecase
func NewSettingsUsecase(settingRepo repositories.SettingRepository) *SettingsUsecase {
	return &SettingsUsecase{settingRepo: settingRepo}
}

// List returns all stored platform settings
func (u *SettingsUsecase) List(ctx context.Context) ([]*entities.PlatformSetting, error) {
	return u.settingRepo.List(ctx)
}

// Update sets a platform setting. Only known keys are accepted and values
// must parse as the key's type; a typo here must not silently disable
// billing or deposits.
func (u *SettingsUsecase) Update(ctx context.Context, key string, input *entities.SettingInput) error {
	validate, ok := settingValidators[key]
	if !ok {
		return domainerrors.NotFound("Unknown setting")
	}
	if !validate(input.Value) {
		return domainerrors.BadRequest("Invalid value for setting")
	}
	return u.settingRepo.Set(ctx, key, input.Value)
}

func isFloat(v string) bool {
	f, err := strconv.ParseFloat(v, 64)
	return err == nil && f >= 0
}

func isBool(v string) bool {
	_, err := strconv.ParseBool(v)
	return err == nil
}

func isInt(v string) bool {
	n, err := strconv.Atoi(v)
	return err == nil && n >= 0
}
