package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
	domainerrors "github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/errors"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/utils"
)

// FlashSaleRepository implements flash sale event operations
type FlashSaleRepository struct {
	db *gorm.DB
}

// NewFlashSaleRepository creates a new flash sale repository
func NewFlashSaleRepository(db *gorm.DB) *FlashSaleRepository {
	return &FlashSaleRepository{db: db}
}

// Create creates a flash sale
func (r *FlashSaleRepository) Create(ctx context.Context, sale *entities.FlashSale) error {
	if sale.ID == uuid.Nil {
		sale.ID = utils.GenerateUUIDv7()
	}
	sale.CreatedAt = time.Now()
	sale.UpdatedAt = sale.CreatedAt

	return GetDB(ctx, r.db).WithContext(ctx).Create(sale).Error
}

// GetByID gets a flash sale by ID
func (r *FlashSaleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.FlashSale, error) {
	var sale entities.FlashSale
	err := GetDB(ctx, r.db).WithContext(ctx).First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// List lists flash sales, optionally only active ones
func (r *FlashSaleRepository) List(ctx context.Context, activeOnly bool) ([]*entities.FlashSale, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)
	if activeOnly {
		db = db.Where("is_active = ?", true)
	}

	var sales []*entities.FlashSale
	if err := db.Order("starts_at DESC").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}
