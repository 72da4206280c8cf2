package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
	domainerrors "github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/errors"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/utils"
)

// PayoutRepository implements payout request data operations
type PayoutRepository struct {
	db *gorm.DB
}

// NewPayoutRepository creates a new payout repository
func NewPayoutRepository(db *gorm.DB) *PayoutRepository {
	return &PayoutRepository{db: db}
}

// Create creates a new payout request
func (r *PayoutRepository) Create(ctx context.Context, payout *entities.PayoutRequest) error {
	if payout.ID == uuid.Nil {
		payout.ID = utils.GenerateUUIDv7()
	}
	payout.Status = entities.PayoutStatusPending
	payout.CreatedAt = time.Now()
	payout.UpdatedAt = payout.CreatedAt

	return GetDB(ctx, r.db).WithContext(ctx).Create(payout).Error
}

// GetByID gets a payout request by ID
func (r *PayoutRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PayoutRequest, error) {
	var payout entities.PayoutRequest
	err := GetDB(ctx, r.db).WithContext(ctx).First(&payout, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &payout, nil
}

// HasPending reports whether the user already has a pending payout request
func (r *PayoutRepository) HasPending(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&entities.PayoutRequest{}).
		Where("user_id = ? AND status = ?", userID, entities.PayoutStatusPending).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByUserID lists payout requests for a user, newest first
func (r *PayoutRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.PayoutRequest, int64, error) {
	return r.list(ctx, GetDB(ctx, r.db).WithContext(ctx).Model(&entities.PayoutRequest{}).Where("user_id = ?", userID), limit, offset)
}

// ListByStatus lists payout requests in a given status, newest first
func (r *PayoutRepository) ListByStatus(ctx context.Context, status entities.PayoutStatus, limit, offset int) ([]*entities.PayoutRequest, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&entities.PayoutRequest{})
	if status != "" {
		db = db.Where("status = ?", status)
	}
	return r.list(ctx, db, limit, offset)
}

func (r *PayoutRepository) list(_ context.Context, db *gorm.DB, limit, offset int) ([]*entities.PayoutRequest, int64, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var payouts []*entities.PayoutRequest
	if err := query.Find(&payouts).Error; err != nil {
		return nil, 0, err
	}
	return payouts, total, nil
}

// MarkCompleted completes a pending payout request
func (r *PayoutRepository) MarkCompleted(ctx context.Context, id uuid.UUID, txRef string, receiptURL null.String, adminID uuid.UUID, at time.Time) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&entities.PayoutRequest{}).
		Where("id = ? AND status = ?", id, entities.PayoutStatusPending).
		Updates(map[string]interface{}{
			"status":                entities.PayoutStatusCompleted,
			"transaction_reference": txRef,
			"receipt_url":           receiptURL,
			"processed_by":          adminID,
			"processed_at":          at,
			"updated_at":            at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// MarkRejected rejects a pending payout request with a reason
func (r *PayoutRepository) MarkRejected(ctx context.Context, id uuid.UUID, reason string, adminID uuid.UUID, at time.Time) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&entities.PayoutRequest{}).
		Where("id = ? AND status = ?", id, entities.PayoutStatusPending).
		Updates(map[string]interface{}{
			"status":       entities.PayoutStatusRejected,
			"admin_notes":  reason,
			"processed_by": adminID,
			"processed_at": at,
			"updated_at":   at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
