package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
)

// DepositRepository defines deposit request data operations
type DepositRepository interface {
	Create(ctx context.Context, deposit *entities.DepositRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.DepositRequest, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.DepositRequest, int64, error)
	ListByStatus(ctx context.Context, status entities.DepositStatus, limit, offset int) ([]*entities.DepositRequest, int64, error)
	MarkApproved(ctx context.Context, id uuid.UUID, adminID uuid.UUID, notes string, at time.Time) error
	MarkRejected(ctx context.Context, id uuid.UUID, adminID uuid.UUID, reason string, at time.Time) error
}

// PaymentMethodRepository defines payment method data operations
type PaymentMethodRepository interface {
	Create(ctx context.Context, method *entities.PaymentMethod) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.PaymentMethod, error)
	List(ctx context.Context, activeOnly bool) ([]*entities.PaymentMethod, error)
	Update(ctx context.Context, method *entities.PaymentMethod) error
}
