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

// PlanChangeRepository implements plan change request operations
type PlanChangeRepository struct {
	db *gorm.DB
}

// NewPlanChangeRepository creates a new plan change repository
func NewPlanChangeRepository(db *gorm.DB) *PlanChangeRepository {
	return &PlanChangeRepository{db: db}
}

// Create creates a plan change request
func (r *PlanChangeRepository) Create(ctx context.Context, req *entities.PlanChangeRequest) error {
	if req.ID == uuid.Nil {
		req.ID = utils.GenerateUUIDv7()
	}
	req.Status = entities.PlanChangeStatusPending
	req.CreatedAt = time.Now()

	return GetDB(ctx, r.db).WithContext(ctx).Create(req).Error
}

// GetByID gets a plan change request by ID
func (r *PlanChangeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PlanChangeRequest, error) {
	var req entities.PlanChangeRequest
	err := GetDB(ctx, r.db).WithContext(ctx).First(&req, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// HasPending reports whether the user already has a pending plan change
func (r *PlanChangeRepository) HasPending(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&entities.PlanChangeRequest{}).
		Where("user_id = ? AND status = ?", userID, entities.PlanChangeStatusPending).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListPending lists pending plan change requests, oldest first
func (r *PlanChangeRepository) ListPending(ctx context.Context, limit, offset int) ([]*entities.PlanChangeRequest, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&entities.PlanChangeRequest{}).
		Where("status = ?", entities.PlanChangeStatusPending)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var reqs []*entities.PlanChangeRequest
	if err := query.Find(&reqs).Error; err != nil {
		return nil, 0, err
	}
	return reqs, total, nil
}

// Resolve moves a pending request to a terminal status
func (r *PlanChangeRepository) Resolve(ctx context.Context, id uuid.UUID, status entities.PlanChangeStatus, adminID uuid.UUID, notes string, at time.Time) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&entities.PlanChangeRequest{}).
		Where("id = ? AND status = ?", id, entities.PlanChangeStatusPending).
		Updates(map[string]interface{}{
			"status":       status,
			"admin_notes":  notes,
			"processed_by": adminID,
			"processed_at": at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
