package entities

import (
	"time"

	"github.com/google/uuid"
)

// MinPayoutAmount is the minimum rupee amount a seller may withdraw
const MinPayoutAmount = 1000.0

// Wallet represents a per-user running balance. The balance is only ever
// mutated through guarded ledger operations, never by direct assignment.
type Wallet struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	UserID           uuid.UUID `json:"userId" gorm:"type:uuid;uniqueIndex;not null"`
	CurrentBalance   float64   `json:"currentBalance" gorm:"type:decimal(12,2);default:0"`
	TotalEarnings    float64   `json:"totalEarnings" gorm:"type:decimal(12,2);default:0"`
	TotalWithdrawn   float64   `json:"totalWithdrawn" gorm:"type:decimal(12,2);default:0"`
	PendingClearance float64   `json:"pendingClearance" gorm:"type:decimal(12,2);default:0"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// CanRequestPayout reports whether the balance meets the payout minimum.
// Advisory only; the authoritative check runs inside the payout transaction.
func (w *Wallet) CanRequestPayout() bool {
	return w.CurrentBalance >= MinPayoutAmount
}
