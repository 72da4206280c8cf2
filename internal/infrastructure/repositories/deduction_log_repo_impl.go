package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/utils"
)

// DeductionLogRepository implements billing audit log operations
type DeductionLogRepository struct {
	db *gorm.DB
}

// NewDeductionLogRepository creates a new deduction log repository
func NewDeductionLogRepository(db *gorm.DB) *DeductionLogRepository {
	return &DeductionLogRepository{db: db}
}

// Create appends a deduction log entry
func (r *DeductionLogRepository) Create(ctx context.Context, log *entities.SubscriptionDeductionLog) error {
	if log.ID == uuid.Nil {
		log.ID = utils.GenerateUUIDv7()
	}
	log.CreatedAt = time.Now()

	return GetDB(ctx, r.db).WithContext(ctx).Create(log).Error
}

// ListByUserID returns deduction logs for a seller, newest first
func (r *DeductionLogRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.SubscriptionDeductionLog, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&entities.SubscriptionDeductionLog{}).Where("user_id = ?", userID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var logs []*entities.SubscriptionDeductionLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
