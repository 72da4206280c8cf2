package repositories

import (
	"context"
)

// UnitOfWork runs a function inside a single database transaction. Money
// movements (wallet debit + ledger append + status flip) go through this so
// partial writes never land.
type UnitOfWork interface {
	// Do commits when fn returns nil and rolls back otherwise. The ctx
	// passed to fn carries the transaction for repository calls.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
