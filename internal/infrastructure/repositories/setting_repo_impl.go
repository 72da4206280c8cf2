package repositories

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
	domainerrors "github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/errors"
)

// SettingRepository implements platform setting operations
type SettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get returns the raw value for a key
func (r *SettingRepository) Get(ctx context.Context, key string) (string, error) {
	var setting entities.PlatformSetting
	err := GetDB(ctx, r.db).WithContext(ctx).First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", domainerrors.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// GetBool returns a boolean setting, falling back to def when unset or
// unparseable
func (r *SettingRepository) GetBool(ctx context.Context, key string, def bool) (bool, error) {
	raw, err := r.Get(ctx, key)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return def, nil
	}
	if err != nil {
		return def, err
	}
	val, parseErr := strconv.ParseBool(raw)
	if parseErr != nil {
		return def, nil
	}
	return val, nil
}

// GetFloat returns a float setting, falling back to def when unset or
// unparseable
func (r *SettingRepository) GetFloat(ctx context.Context, key string, def float64) (float64, error) {
	raw, err := r.Get(ctx, key)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return def, nil
	}
	if err != nil {
		return def, err
	}
	val, parseErr := strconv.ParseFloat(raw, 64)
	if parseErr != nil {
		return def, nil
	}
	return val, nil
}

// GetInt returns an integer setting, falling back to def when unset or
// unparseable
func (r *SettingRepository) GetInt(ctx context.Context, key string, def int) (int, error) {
	raw, err := r.Get(ctx, key)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return def, nil
	}
	if err != nil {
		return def, err
	}
	val, parseErr := strconv.Atoi(raw)
	if parseErr != nil {
		return def, nil
	}
	return val, nil
}

// Set upserts a setting value
func (r *SettingRepository) Set(ctx context.Context, key, value string) error {
	setting := entities.PlatformSetting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	return GetDB(ctx, r.db).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting).Error
}

// List returns all settings
func (r *SettingRepository) List(ctx context.Context) ([]*entities.PlatformSetting, error) {
	var settings []*entities.PlatformSetting
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("key ASC").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
