package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// RequesterType tags who submitted a deposit request
type RequesterType string

const (
	RequesterTypeCustomer RequesterType = "customer"
	RequesterTypeSeller   RequesterType = "seller"
)

// DepositStatus represents the state of a deposit request
type DepositStatus string

const (
	DepositStatusPending  DepositStatus = "pending"
	DepositStatusApproved DepositStatus = "approved"
	DepositStatusRejected DepositStatus = "rejected"
)

// DepositRequest is a manual top-up request backed by a payment proof
// screenshot. Approval is the only path that credits a wallet; rejection is
// terminal with a reason.
type DepositRequest struct {
	ID                   uuid.UUID     `json:"id" gorm:"type:uuid;primary_key"`
	UserID               uuid.UUID     `json:"userId" gorm:"type:uuid;not null;index"`
	RequesterType        RequesterType `json:"requesterType" gorm:"type:varchar(20);not null"`
	PaymentMethodID      uuid.UUID     `json:"paymentMethodId" gorm:"type:uuid;not null"`
	Amount               float64       `json:"amount" gorm:"type:decimal(12,2);not null"`
	ScreenshotURL        string        `json:"screenshotUrl" gorm:"not null"`
	TransactionReference null.String   `json:"transactionReference,omitempty"`
	Status               DepositStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	AdminNotes           null.String   `json:"adminNotes,omitempty"`
	ProcessedBy          *uuid.UUID    `json:"processedBy,omitempty" gorm:"type:uuid"`
	ProcessedAt          *time.Time    `json:"processedAt,omitempty"`
	CreatedAt            time.Time     `json:"createdAt"`
	UpdatedAt            time.Time     `json:"updatedAt"`
}

// PaymentMethod is a platform bank/mobile account deposits can be sent to
type PaymentMethod struct {
	ID            uuid.UUID   `json:"id" gorm:"type:uuid;primary_key"`
	Name          string      `json:"name" gorm:"not null"`
	AccountTitle  string      `json:"accountTitle" gorm:"not null"`
	AccountNumber string      `json:"accountNumber" gorm:"not null"`
	Instructions  null.String `json:"instructions,omitempty"`
	IsActive      bool        `json:"isActive" gorm:"default:true"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// CreateDepositInput represents input for submitting a deposit request
type CreateDepositInput struct {
	PaymentMethodID      string  `json:"paymentMethodId" binding:"required,uuid"`
	Amount               float64 `json:"amount" binding:"required,gt=0"`
	ScreenshotURL        string  `json:"screenshotUrl" binding:"required,url"`
	TransactionReference string  `json:"transactionReference"`
}

// PaymentMethodInput represents input for creating or updating a payment method
type PaymentMethodInput struct {
	Name          string `json:"name" binding:"required"`
	AccountTitle  string `json:"accountTitle" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
	Instructions  string `json:"instructions"`
	IsActive      *bool  `json:"isActive"`
}
