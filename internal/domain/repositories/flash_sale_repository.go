package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
)

// FlashSaleRepository defines flash sale event operations
type FlashSaleRepository interface {
	Create(ctx context.Context, sale *entities.FlashSale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.FlashSale, error)
	List(ctx context.Context, activeOnly bool) ([]*entities.FlashSale, error)
}

// NominationRepository defines flash-sale nomination operations
type NominationRepository interface {
	Create(ctx context.Context, nomination *entities.FlashSaleNomination) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.FlashSaleNomination, error)
	HasPendingForProduct(ctx context.Context, flashSaleID, productID uuid.UUID) (bool, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.FlashSaleNomination, int64, error)
	ListByStatus(ctx context.Context, status entities.NominationStatus, limit, offset int) ([]*entities.FlashSaleNomination, int64, error)
	MarkApproved(ctx context.Context, id uuid.UUID, adminID uuid.UUID, notes string, feeDeductedAt time.Time) error
	MarkRejected(ctx context.Context, id uuid.UUID, adminID uuid.UUID, notes string, at time.Time) error
}

// FlashSaleProductRepository defines live flash-sale listing operations
type FlashSaleProductRepository interface {
	Create(ctx context.Context, product *entities.FlashSaleProduct) error
	GetBySaleAndProduct(ctx context.Context, flashSaleID, productID uuid.UUID) (*entities.FlashSaleProduct, error)
	ListBySale(ctx context.Context, flashSaleID uuid.UUID) ([]*entities.FlashSaleProduct, error)
	// IncrementSold atomically bumps the sold counter; returns
	// ErrStockLimitReached when the increment would exceed the stock limit
	IncrementSold(ctx context.Context, flashSaleID, productID uuid.UUID, quantity int) error
}
