package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
)

// PayoutRepository defines payout request data operations
type PayoutRepository interface {
	Create(ctx context.Context, payout *entities.PayoutRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.PayoutRequest, error)
	HasPending(ctx context.Context, userID uuid.UUID) (bool, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.PayoutRequest, int64, error)
	ListByStatus(ctx context.Context, status entities.PayoutStatus, limit, offset int) ([]*entities.PayoutRequest, int64, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, txRef string, receiptURL null.String, adminID uuid.UUID, at time.Time) error
	MarkRejected(ctx context.Context, id uuid.UUID, reason string, adminID uuid.UUID, at time.Time) error
}
