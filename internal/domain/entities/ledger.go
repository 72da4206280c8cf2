package entities

import (
	"time"

	"github.com/google/uuid"
)

// LedgerEntryType represents the kind of balance-affecting event
type LedgerEntryType string

const (
	LedgerEntryEarning             LedgerEntryType = "earning"
	LedgerEntryCommissionDeduction LedgerEntryType = "commission_deduction"
	LedgerEntryWithdrawal          LedgerEntryType = "withdrawal"
	LedgerEntryRefundDeduction     LedgerEntryType = "refund_deduction"
	LedgerEntryAdjustment          LedgerEntryType = "adjustment"
)

// LedgerEntry is an immutable record of a single balance-affecting event.
// Entries are append-only; the wallet balance equals the signed sum of its
// entries.
// RecordEarningInput credits a seller for a delivered order
type RecordEarningInput struct {
	OrderID     string  `json:"orderId" binding:"required,uuid"`
	GrossAmount float64 `json:"grossAmount" binding:"required,gt=0"`
	Description string  `json:"description"`
}

// RefundDeductionInput claws an earning back after an order refund
type RefundDeductionInput struct {
	OrderID     string  `json:"orderId" binding:"required,uuid"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
}

type LedgerEntry struct {
	ID                   uuid.UUID       `json:"id" gorm:"type:uuid;primary_key"`
	WalletID             uuid.UUID       `json:"walletId" gorm:"type:uuid;not null;index"`
	UserID               uuid.UUID       `json:"userId" gorm:"type:uuid;not null;index"`
	OrderID              *uuid.UUID      `json:"orderId,omitempty" gorm:"type:uuid"`
	Type                 LedgerEntryType `json:"type" gorm:"type:varchar(30);not null"`
	GrossAmount          float64         `json:"grossAmount" gorm:"type:decimal(12,2)"`
	CommissionAmount     float64         `json:"commissionAmount" gorm:"type:decimal(12,2)"`
	CommissionPercentage float64         `json:"commissionPercentage" gorm:"type:decimal(5,2)"`
	NetAmount            float64         `json:"netAmount" gorm:"type:decimal(12,2)"`
	Description          string          `json:"description"`
	CreatedAt            time.Time       `json:"createdAt"`
}
