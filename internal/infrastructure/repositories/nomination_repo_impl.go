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

// NominationRepository implements flash-sale nomination operations
type NominationRepository struct {
	db *gorm.DB
}

// NewNominationRepository creates a new nomination repository
func NewNominationRepository(db *gorm.DB) *NominationRepository {
	return &NominationRepository{db: db}
}

// Create creates a nomination
func (r *NominationRepository) Create(ctx context.Context, nomination *entities.FlashSaleNomination) error {
	if nomination.ID == uuid.Nil {
		nomination.ID = utils.GenerateUUIDv7()
	}
	nomination.Status = entities.NominationStatusPending
	nomination.CreatedAt = time.Now()
	nomination.UpdatedAt = nomination.CreatedAt

	return GetDB(ctx, r.db).WithContext(ctx).Create(nomination).Error
}

// GetByID gets a nomination by ID
func (r *NominationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.FlashSaleNomination, error) {
	var nomination entities.FlashSaleNomination
	err := GetDB(ctx, r.db).WithContext(ctx).First(&nomination, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &nomination, nil
}

// HasPendingForProduct reports whether the product already has a pending
// nomination for the sale
func (r *NominationRepository) HasPendingForProduct(ctx context.Context, flashSaleID, productID uuid.UUID) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&entities.FlashSaleNomination{}).
		Where("flash_sale_id = ? AND product_id = ? AND status = ?", flashSaleID, productID, entities.NominationStatusPending).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByUserID lists a seller's nominations, newest first
func (r *NominationRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.FlashSaleNomination, int64, error) {
	return r.list(GetDB(ctx, r.db).WithContext(ctx).Model(&entities.FlashSaleNomination{}).Where("user_id = ?", userID), limit, offset)
}

// ListByStatus lists nominations in a given status, newest first
func (r *NominationRepository) ListByStatus(ctx context.Context, status entities.NominationStatus, limit, offset int) ([]*entities.FlashSaleNomination, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&entities.FlashSaleNomination{})
	if status != "" {
		db = db.Where("status = ?", status)
	}
	return r.list(db, limit, offset)
}

func (r *NominationRepository) list(db *gorm.DB, limit, offset int) ([]*entities.FlashSaleNomination, int64, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var nominations []*entities.FlashSaleNomination
	if err := query.Find(&nominations).Error; err != nil {
		return nil, 0, err
	}
	return nominations, total, nil
}

// MarkApproved approves a pending nomination and records the fee deduction
func (r *NominationRepository) MarkApproved(ctx context.Context, id uuid.UUID, adminID uuid.UUID, notes string, feeDeductedAt time.Time) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&entities.FlashSaleNomination{}).
		Where("id = ? AND status = ?", id, entities.NominationStatusPending).
		Updates(map[string]interface{}{
			"status":          entities.NominationStatusApproved,
			"admin_notes":     notes,
			"fee_deducted":    true,
			"fee_deducted_at": feeDeductedAt,
			"updated_at":      feeDeductedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// MarkRejected rejects a pending nomination
func (r *NominationRepository) MarkRejected(ctx context.Context, id uuid.UUID, adminID uuid.UUID, notes string, at time.Time) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&entities.FlashSaleNomination{}).
		Where("id = ? AND status = ?", id, entities.NominationStatusPending).
		Updates(map[string]interface{}{
			"status":      entities.NominationStatusRejected,
			"admin_notes": notes,
			"updated_at":  at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
