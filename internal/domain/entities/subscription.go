package entities

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PlanType represents a subscription billing cadence
type PlanType string

const (
	PlanTypeDaily       PlanType = "daily"
	PlanTypeHalfMonthly PlanType = "half_monthly"
	PlanTypeMonthly     PlanType = "monthly"
)

// Days returns the number of daily fee units a billing cycle covers
func (p PlanType) Days() int {
	switch p {
	case PlanTypeHalfMonthly:
		return 15
	case PlanTypeMonthly:
		return 30
	default:
		return 1
	}
}

// Valid reports whether the plan type is known
func (p PlanType) Valid() bool {
	switch p {
	case PlanTypeDaily, PlanTypeHalfMonthly, PlanTypeMonthly:
		return true
	}
	return false
}

// SellerSubscription tracks a seller's recurring platform fee state
type SellerSubscription struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	UserID           uuid.UUID  `json:"userId" gorm:"type:uuid;uniqueIndex;not null"`
	PlanType         PlanType   `json:"planType" gorm:"type:varchar(20);not null"`
	CustomDailyFee   *float64   `json:"customDailyFee,omitempty" gorm:"type:decimal(12,2)"`
	LastDeductionAt  *time.Time `json:"lastDeductionAt,omitempty"`
	NextDeductionAt  *time.Time `json:"nextDeductionAt,omitempty" gorm:"index"`
	IsActive         bool       `json:"isActive" gorm:"default:true"`
	PaymentPending   bool       `json:"paymentPending" gorm:"default:false"`
	PendingAmount    float64    `json:"pendingAmount" gorm:"type:decimal(12,2);default:0"`
	TotalFeesPaid    float64    `json:"totalFeesPaid" gorm:"type:decimal(12,2);default:0"`
	FreeMonths       int        `json:"freeMonths" gorm:"default:0"`
	FreePeriodStart  *time.Time `json:"freePeriodStart,omitempty"`
	FreePeriodEnd    *time.Time `json:"freePeriodEnd,omitempty"`
	IsInFreePeriod   bool       `json:"isInFreePeriod" gorm:"default:false"`
	AccountSuspended bool       `json:"accountSuspended" gorm:"default:false"`
	SuspendedAt      *time.Time `json:"suspendedAt,omitempty"`
	ReactivatedAt    *time.Time `json:"reactivatedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// FreePeriodDaysLeft returns whole days remaining in the free period at the
// given instant. Zero when the free period is inactive or already over;
// exactly at FreePeriodEnd the result is 0.
func (s *SellerSubscription) FreePeriodDaysLeft(now time.Time) int {
	if !s.IsInFreePeriod || s.FreePeriodEnd == nil {
		return 0
	}
	remaining := s.FreePeriodEnd.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Hours() / 24))
}

// DeductionStatus represents the outcome of a billing attempt
type DeductionStatus string

const (
	DeductionStatusSuccess DeductionStatus = "success"
	DeductionStatusFailed  DeductionStatus = "failed"
	DeductionStatusPending DeductionStatus = "pending"
)

// SubscriptionDeductionLog is an append-only audit record, one per billing
// attempt
type SubscriptionDeductionLog struct {
	ID                  uuid.UUID       `json:"id" gorm:"type:uuid;primary_key"`
	SubscriptionID      uuid.UUID       `json:"subscriptionId" gorm:"type:uuid;not null;index"`
	UserID              uuid.UUID       `json:"userId" gorm:"type:uuid;not null;index"`
	Amount              float64         `json:"amount" gorm:"type:decimal(12,2)"`
	DeductionType       string          `json:"deductionType" gorm:"type:varchar(30)"`
	Status              DeductionStatus `json:"status" gorm:"type:varchar(20);not null"`
	FailureReason       null.String     `json:"failureReason,omitempty"`
	WalletBalanceBefore float64         `json:"walletBalanceBefore" gorm:"type:decimal(12,2)"`
	WalletBalanceAfter  float64         `json:"walletBalanceAfter" gorm:"type:decimal(12,2)"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// PlanChangeStatus represents the state of a plan change request
type PlanChangeStatus string

const (
	PlanChangeStatusPending  PlanChangeStatus = "pending"
	PlanChangeStatusApproved PlanChangeStatus = "approved"
	PlanChangeStatusRejected PlanChangeStatus = "rejected"
)

// PlanChangeRequest captures a seller's request to move to another plan.
// At most one pending request per seller.
type PlanChangeRequest struct {
	ID            uuid.UUID        `json:"id" gorm:"type:uuid;primary_key"`
	UserID        uuid.UUID        `json:"userId" gorm:"type:uuid;not null;index"`
	CurrentPlan   PlanType         `json:"currentPlan" gorm:"type:varchar(20);not null"`
	RequestedPlan PlanType         `json:"requestedPlan" gorm:"type:varchar(20);not null"`
	Status        PlanChangeStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	AdminNotes    null.String      `json:"adminNotes,omitempty"`
	ProcessedBy   *uuid.UUID       `json:"processedBy,omitempty" gorm:"type:uuid"`
	ProcessedAt   *time.Time       `json:"processedAt,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// PlanChangeInput represents input for requesting a plan change
type PlanChangeInput struct {
	RequestedPlan string `json:"requestedPlan" binding:"required,oneof=daily half_monthly monthly"`
}
