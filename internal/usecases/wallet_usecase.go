package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
	domainerrors "github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/errors"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/repositories"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/logger"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/utils"
)

// WalletUsecase handles wallet and ledger business logic
type WalletUsecase struct {
	walletRepo        repositories.WalletRepository
	ledgerRepo        repositories.LedgerRepository
	settingRepo       repositories.SettingRepository
	uow               repositories.UnitOfWork
	settler           FeeSettler
	defaultCommission float64
}

// NewWalletUsecase creates a new wallet usecase
func NewWalletUsecase(
	walletRepo repositories.WalletRepository,
	ledgerRepo repositories.LedgerRepository,
	settingRepo repositories.SettingRepository,
	uow repositories.UnitOfWork,
	settler FeeSettler,
	defaultCommission float64,
) *WalletUsecase {
	return &WalletUsecase{
		walletRepo:        walletRepo,
		ledgerRepo:        ledgerRepo,
		settingRepo:       settingRepo,
		uow:               uow,
		settler:           settler,
		defaultCommission: defaultCommission,
	}
}

// GetOrCreate returns the user's wallet, creating a zero-balance one on
// first access
func (u *WalletUsecase) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	wallet, err := u.walletRepo.GetByUserID(ctx, userID)
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	wallet = &entities.Wallet{
		ID:     utils.GenerateUUIDv7(),
		UserID: userID,
	}
	if err := u.walletRepo.Create(ctx, wallet); err != nil {
		// Lost a create race; the existing row wins
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return u.walletRepo.GetByUserID(ctx, userID)
		}
		return nil, err
	}
	return wallet, nil
}

// GetSnapshot returns the wallet balances for a user
func (u *WalletUsecase) GetSnapshot(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	return u.GetOrCreate(ctx, userID)
}

// GetLedger returns the user's ledger entries newest-first
func (u *WalletUsecase) GetLedger(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]*entities.LedgerEntry, *utils.PaginationMeta, error) {
	offset := params.CalculateOffset()
	entries, total, err := u.ledgerRepo.ListByUserID(ctx, userID, params.Limit, offset)
	if err != nil {
		return nil, nil, err
	}
	meta := utils.CalculateMeta(total, params.Page, params.Limit)
	return entries, &meta, nil
}

// RecordEarning credits the seller's wallet with the net amount of an order
// and appends the matching ledger entry. The commission rate comes from the
// platform settings. After the credit commits, any outstanding subscription
// fees are settled best effort; a settlement failure never fails the earning.
func (u *WalletUsecase) RecordEarning(ctx context.Context, userID uuid.UUID, orderID uuid.UUID, grossAmount float64, description string) (*entities.LedgerEntry, error) {
	if grossAmount <= 0 {
		return nil, domainerrors.BadRequest("Earning amount must be positive")
	}

	commissionRate, err := u.settingRepo.GetFloat(ctx, entities.SettingDefaultCommissionRate, u.defaultCommission)
	if err != nil {
		return nil, err
	}

	gross := utils.RoundMoney(grossAmount)
	commission := utils.RoundMoney(gross * commissionRate / 100)
	net := utils.RoundMoney(gross - commission)

	wallet, err := u.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := &entities.LedgerEntry{
		ID:                   utils.GenerateUUIDv7(),
		WalletID:             wallet.ID,
		UserID:               userID,
		OrderID:              &orderID,
		Type:                 entities.LedgerEntryEarning,
		GrossAmount:          gross,
		CommissionAmount:     commission,
		CommissionPercentage: commissionRate,
		NetAmount:            net,
		Description:          description,
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.walletRepo.CreditEarning(ctx, wallet.ID, net); err != nil {
			return err
		}
		return u.ledgerRepo.Create(ctx, entry)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record earning: %w", err)
	}

	if err := u.settler.SettleOutstanding(ctx, userID); err != nil {
		logger.Error(ctx, "fee settlement after earning failed",
			zap.String("user_id", userID.String()), zap.Error(err))
	}
	return entry, nil
}

// RecordRefundDeduction claws back a previously credited earning after a
// refund. The deduction may push the balance negative, so it does not use
// the guarded debit.
func (u *WalletUsecase) RecordRefundDeduction(ctx context.Context, userID uuid.UUID, orderID uuid.UUID, amount float64, description string) (*entities.LedgerEntry, error) {
	if amount <= 0 {
		return nil, domainerrors.BadRequest("Refund amount must be positive")
	}

	wallet, err := u.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	net := utils.RoundMoney(amount)
	entry := &entities.LedgerEntry{
		ID:          utils.GenerateUUIDv7(),
		WalletID:    wallet.ID,
		UserID:      userID,
		OrderID:     &orderID,
		Type:        entities.LedgerEntryRefundDeduction,
		GrossAmount: net,
		NetAmount:   -net,
		Description: description,
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.walletRepo.Credit(ctx, wallet.ID, -net); err != nil {
			return err
		}
		return u.ledgerRepo.Create(ctx, entry)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record refund deduction: %w", err)
	}
	return entry, nil
}
