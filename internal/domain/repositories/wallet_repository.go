package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
)

// WalletRepository defines wallet data operations. Balance mutations are
// single guarded statements; callers never compute-then-write a balance.
type WalletRepository interface {
	Create(ctx context.Context, wallet *entities.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Wallet, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error)
	// Credit adds amount to the current balance
	Credit(ctx context.Context, walletID uuid.UUID, amount float64) error
	// CreditEarning adds amount to both the balance and total earnings
	CreditEarning(ctx context.Context, walletID uuid.UUID, amount float64) error
	// Debit subtracts amount; returns ErrInsufficientFunds when the balance
	// does not cover it
	Debit(ctx context.Context, walletID uuid.UUID, amount float64) error
	// DebitWithdrawal subtracts amount and adds it to total withdrawn;
	// returns ErrInsufficientFunds when the balance does not cover it
	DebitWithdrawal(ctx context.Context, walletID uuid.UUID, amount float64) error
}

// LedgerRepository defines append-only ledger operations
type LedgerRepository interface {
	Create(ctx context.Context, entry *entities.LedgerEntry) error
	// ListByUserID returns entries newest-first
	ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.LedgerEntry, int64, error)
}
