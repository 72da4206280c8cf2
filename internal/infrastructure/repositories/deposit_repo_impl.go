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

// DepositRepository implements deposit request data operations
type DepositRepository struct {
	db *gorm.DB
}

// NewDepositRepository creates a new deposit repository
func NewDepositRepository(db *gorm.DB) *DepositRepository {
	return &DepositRepository{db: db}
}

// Create creates a new deposit request
func (r *DepositRepository) Create(ctx context.Context, deposit *entities.DepositRequest) error {
	if deposit.ID == uuid.Nil {
		deposit.ID = utils.GenerateUUIDv7()
	}
	deposit.Status = entities.DepositStatusPending
	deposit.CreatedAt = time.Now()
	deposit.UpdatedAt = deposit.CreatedAt

	return GetDB(ctx, r.db).WithContext(ctx).Create(deposit).Error
}

// GetByID gets a deposit request by ID
func (r *DepositRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.DepositRequest, error) {
	var deposit entities.DepositRequest
	err := GetDB(ctx, r.db).WithContext(ctx).First(&deposit, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &deposit, nil
}

// ListByUserID lists a requester's deposit requests, newest first
func (r *DepositRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.DepositRequest, int64, error) {
	return r.list(GetDB(ctx, r.db).WithContext(ctx).Model(&entities.DepositRequest{}).Where("user_id = ?", userID), limit, offset)
}

// ListByStatus lists deposit requests in a given status, newest first
func (r *DepositRepository) ListByStatus(ctx context.Context, status entities.DepositStatus, limit, offset int) ([]*entities.DepositRequest, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&entities.DepositRequest{})
	if status != "" {
		db = db.Where("status = ?", status)
	}
	return r.list(db, limit, offset)
}

func (r *DepositRepository) list(db *gorm.DB, limit, offset int) ([]*entities.DepositRequest, int64, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var deposits []*entities.DepositRequest
	if err := query.Find(&deposits).Error; err != nil {
		return nil, 0, err
	}
	return deposits, total, nil
}

// MarkApproved approves a pending deposit request
func (r *DepositRepository) MarkApproved(ctx context.Context, id uuid.UUID, adminID uuid.UUID, notes string, at time.Time) error {
	return r.resolve(ctx, id, entities.DepositStatusApproved, adminID, notes, at)
}

// MarkRejected rejects a pending deposit request with a reason
func (r *DepositRepository) MarkRejected(ctx context.Context, id uuid.UUID, adminID uuid.UUID, reason string, at time.Time) error {
	return r.resolve(ctx, id, entities.DepositStatusRejected, adminID, reason, at)
}

func (r *DepositRepository) resolve(ctx context.Context, id uuid.UUID, status entities.DepositStatus, adminID uuid.UUID, notes string, at time.Time) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&entities.DepositRequest{}).
		Where("id = ? AND status = ?", id, entities.DepositStatusPending).
		Updates(map[string]interface{}{
			"status":       status,
			"admin_notes":  notes,
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
