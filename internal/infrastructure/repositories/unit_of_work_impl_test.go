package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
)

func TestUnitOfWork_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	createWalletTable(t, db)
	walletRepo := NewWalletRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	wallet := &entities.Wallet{UserID: uuid.New()}
	require.NoError(t, walletRepo.Create(ctx, wallet))

	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := walletRepo.Credit(txCtx, wallet.ID, 300); err != nil {
			return err
		}
		return walletRepo.Debit(txCtx, wallet.ID, 100)
	})
	require.NoError(t, err)

	got, err := walletRepo.GetByID(ctx, wallet.ID)
	require.NoError(t, err)
	require.Equal(t, 200.0, got.CurrentBalance)
}

func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	createWalletTable(t, db)
	walletRepo := NewWalletRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	wallet := &entities.Wallet{UserID: uuid.New()}
	require.NoError(t, walletRepo.Create(ctx, wallet))

	boom := errors.New("boom")
	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := walletRepo.Credit(txCtx, wallet.ID, 300); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// The credit inside the failed transaction must not be visible.
	got, err := walletRepo.GetByID(ctx, wallet.ID)
	require.NoError(t, err)
	require.Equal(t, 0.0, got.CurrentBalance)
}

func TestGetDB_FallsBackWithoutTransaction(t *testing.T) {
	db := newTestDB(t)

	require.Same(t, db, GetDB(context.Background(), db))

	txCtx := context.WithValue(context.Background(), txKey, db.Begin())
	tx := GetDB(txCtx, db)
	require.NotSame(t, db, tx)
	tx.Rollback()
}
