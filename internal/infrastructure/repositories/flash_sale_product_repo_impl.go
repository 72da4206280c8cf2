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

// FlashSaleProductRepository implements live flash-sale listing operations
type FlashSaleProductRepository struct {
	db *gorm.DB
}

// NewFlashSaleProductRepository creates a new flash sale product repository
func NewFlashSaleProductRepository(db *gorm.DB) *FlashSaleProductRepository {
	return &FlashSaleProductRepository{db: db}
}

// Create creates a live flash-sale listing
func (r *FlashSaleProductRepository) Create(ctx context.Context, product *entities.FlashSaleProduct) error {
	if product.ID == uuid.Nil {
		product.ID = utils.GenerateUUIDv7()
	}
	product.SoldCount = 0
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt

	return GetDB(ctx, r.db).WithContext(ctx).Create(product).Error
}

// GetBySaleAndProduct gets a listing by sale and product
func (r *FlashSaleProductRepository) GetBySaleAndProduct(ctx context.Context, flashSaleID, productID uuid.UUID) (*entities.FlashSaleProduct, error) {
	var product entities.FlashSaleProduct
	err := GetDB(ctx, r.db).WithContext(ctx).
		First(&product, "flash_sale_id = ? AND product_id = ?", flashSaleID, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListBySale lists all listings for a flash sale
func (r *FlashSaleProductRepository) ListBySale(ctx context.Context, flashSaleID uuid.UUID) ([]*entities.FlashSaleProduct, error) {
	var products []*entities.FlashSaleProduct
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("flash_sale_id = ?", flashSaleID).
		Order("created_at ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// IncrementSold bumps the sold counter in a single statement. The WHERE
// guard bounds it by the stock limit so concurrent purchases can never
// oversell the listing.
func (r *FlashSaleProductRepository) IncrementSold(ctx context.Context, flashSaleID, productID uuid.UUID, quantity int) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&entities.FlashSaleProduct{}).
		Where("flash_sale_id = ? AND product_id = ? AND sold_count + ? <= stock_limit", flashSaleID, productID, quantity).
		Updates(map[string]interface{}{
			"sold_count": gorm.Expr("sold_count + ?", quantity),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrStockLimitReached
	}
	return nil
}
