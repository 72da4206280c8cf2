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

// ProductRepository implements the product operations the ledger flows need
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a product
func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	if product.ID == uuid.Nil {
		product.ID = utils.GenerateUUIDv7()
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt

	return GetDB(ctx, r.db).WithContext(ctx).Create(product).Error
}

// GetByID gets a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	var product entities.Product
	err := GetDB(ctx, r.db).WithContext(ctx).First(&product, "id = ? AND deleted_at IS NULL", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListBySeller lists a seller's products
func (r *ProductRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entities.Product, error) {
	var products []*entities.Product
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("seller_id = ? AND deleted_at IS NULL", sellerID).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// SetHiddenBySeller hides or unhides every product of a seller. Used when a
// subscription is suspended or reactivated.
func (r *ProductRepository) SetHiddenBySeller(ctx context.Context, sellerID uuid.UUID, hidden bool) error {
	return GetDB(ctx, r.db).WithContext(ctx).Model(&entities.Product{}).
		Where("seller_id = ? AND deleted_at IS NULL", sellerID).
		Updates(map[string]interface{}{
			"is_hidden":  hidden,
			"updated_at": time.Now(),
		}).Error
}
