package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PayoutStatus represents the state of a payout request
type PayoutStatus string

const (
	PayoutStatusPending   PayoutStatus = "pending"
	PayoutStatusApproved  PayoutStatus = "approved"
	PayoutStatusRejected  PayoutStatus = "rejected"
	PayoutStatusCompleted PayoutStatus = "completed"
)

// PayoutRequest is a seller-initiated withdrawal of wallet funds.
// Transitions are admin-driven: pending -> completed | rejected. The wallet
// is debited only when an admin processes the request, never at submit time.
type PayoutRequest struct {
	ID                   uuid.UUID    `json:"id" gorm:"type:uuid;primary_key"`
	UserID               uuid.UUID    `json:"userId" gorm:"type:uuid;not null;index"`
	WalletID             uuid.UUID    `json:"walletId" gorm:"type:uuid;not null"`
	Amount               float64      `json:"amount" gorm:"type:decimal(12,2);not null"`
	BankName             string       `json:"bankName" gorm:"not null"`
	AccountTitle         string       `json:"accountTitle" gorm:"not null"`
	IBAN                 string       `json:"iban" gorm:"not null"`
	Status               PayoutStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	TransactionReference null.String  `json:"transactionReference,omitempty"`
	AdminNotes           null.String  `json:"adminNotes,omitempty"`
	ProcessedBy          *uuid.UUID   `json:"processedBy,omitempty" gorm:"type:uuid"`
	ProcessedAt          *time.Time   `json:"processedAt,omitempty"`
	ReceiptURL           null.String  `json:"receiptUrl,omitempty"`
	CreatedAt            time.Time    `json:"createdAt"`
	UpdatedAt            time.Time    `json:"updatedAt"`
}

// RequestPayoutInput represents input for creating a payout request
type RequestPayoutInput struct {
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	BankName     string  `json:"bankName" binding:"required"`
	AccountTitle string  `json:"accountTitle" binding:"required"`
	IBAN         string  `json:"iban" binding:"required"`
}

// ProcessPayoutInput represents input for completing a payout
type ProcessPayoutInput struct {
	TransactionReference string `json:"transactionReference" binding:"required"`
	ReceiptURL           string `json:"receiptUrl"`
	AdminNotes           string `json:"adminNotes"`
}

// RejectPayoutInput represents input for rejecting a payout
type RejectPayoutInput struct {
	Reason string `json:"reason" binding:"required"`
}
