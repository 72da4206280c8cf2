package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
)

// SubscriptionRepository defines seller subscription data operations
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *entities.SellerSubscription) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.SellerSubscription, error)
	// ListDue returns active subscriptions whose next deduction is due
	ListDue(ctx context.Context, now time.Time, limit int) ([]*entities.SellerSubscription, error)
	Update(ctx context.Context, sub *entities.SellerSubscription) error
	UpdatePlan(ctx context.Context, userID uuid.UUID, plan entities.PlanType, nextDeductionAt time.Time) error
}

// DeductionLogRepository defines billing audit log operations
type DeductionLogRepository interface {
	Create(ctx context.Context, log *entities.SubscriptionDeductionLog) error
	ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.SubscriptionDeductionLog, int64, error)
}

// PlanChangeRepository defines plan change request operations
type PlanChangeRepository interface {
	Create(ctx context.Context, req *entities.PlanChangeRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.PlanChangeRequest, error)
	HasPending(ctx context.Context, userID uuid.UUID) (bool, error)
	ListPending(ctx context.Context, limit, offset int) ([]*entities.PlanChangeRequest, int64, error)
	Resolve(ctx context.Context, id uuid.UUID, status entities.PlanChangeStatus, adminID uuid.UUID, notes string, at time.Time) error
}
