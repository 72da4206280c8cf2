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

// PaymentMethodRepository implements payment method data operations
type PaymentMethodRepository struct {
	db *gorm.DB
}

// NewPaymentMethodRepository creates a new payment method repository
func NewPaymentMethodRepository(db *gorm.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{db: db}
}

// Create creates a payment method
func (r *PaymentMethodRepository) Create(ctx context.Context, method *entities.PaymentMethod) error {
	if method.ID == uuid.Nil {
		method.ID = utils.GenerateUUIDv7()
	}
	method.CreatedAt = time.Now()
	method.UpdatedAt = method.CreatedAt

	return GetDB(ctx, r.db).WithContext(ctx).Create(method).Error
}

// GetByID gets a payment method by ID
func (r *PaymentMethodRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PaymentMethod, error) {
	var method entities.PaymentMethod
	err := GetDB(ctx, r.db).WithContext(ctx).First(&method, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &method, nil
}

// List lists payment methods, optionally only active ones
func (r *PaymentMethodRepository) List(ctx context.Context, activeOnly bool) ([]*entities.PaymentMethod, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)
	if activeOnly {
		db = db.Where("is_active = ?", true)
	}

	var methods []*entities.PaymentMethod
	if err := db.Order("created_at ASC").Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

// Update updates a payment method
func (r *PaymentMethodRepository) Update(ctx context.Context, method *entities.PaymentMethod) error {
	method.UpdatedAt = time.Now()
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&entities.PaymentMethod{}).
		Where("id = ?", method.ID).
		Updates(map[string]interface{}{
			"name":           method.Name,
			"account_title":  method.AccountTitle,
			"account_number": method.AccountNumber,
			"instructions":   method.Instructions,
			"is_active":      method.IsActive,
			"updated_at":     method.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
