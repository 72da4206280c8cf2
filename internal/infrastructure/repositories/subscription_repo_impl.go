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

// SubscriptionRepository implements seller subscription data operations
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create creates a new subscription
func (r *SubscriptionRepository) Create(ctx context.Context, sub *entities.SellerSubscription) error {
	if sub.ID == uuid.Nil {
		sub.ID = utils.GenerateUUIDv7()
	}
	sub.CreatedAt = time.Now()
	sub.UpdatedAt = sub.CreatedAt

	return GetDB(ctx, r.db).WithContext(ctx).Create(sub).Error
}

// GetByUserID gets a seller's subscription
func (r *SubscriptionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.SellerSubscription, error) {
	var sub entities.SellerSubscription
	err := GetDB(ctx, r.db).WithContext(ctx).First(&sub, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// ListDue returns active subscriptions whose next deduction time has passed.
// Suspended sellers stay in the sweep so their pending fees keep being
// retried against wallet top-ups.
func (r *SubscriptionRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]*entities.SellerSubscription, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).
		Where("is_active = ? AND next_deduction_at IS NOT NULL AND next_deduction_at <= ?", true, now).
		Order("next_deduction_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var subs []*entities.SellerSubscription
	if err := query.Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// Update saves the full subscription record
func (r *SubscriptionRepository) Update(ctx context.Context, sub *entities.SellerSubscription) error {
	sub.UpdatedAt = time.Now()
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&entities.SellerSubscription{}).
		Where("id = ?", sub.ID).
		Select("*").Omit("id", "user_id", "created_at").
		Updates(sub)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdatePlan switches a seller's plan and reschedules the next deduction
func (r *SubscriptionRepository) UpdatePlan(ctx context.Context, userID uuid.UUID, plan entities.PlanType, nextDeductionAt time.Time) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&entities.SellerSubscription{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"plan_type":         plan,
			"next_deduction_at": nextDeductionAt,
			"updated_at":        time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
