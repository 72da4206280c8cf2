package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
	domainerrors "github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/errors"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/repositories"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/metrics"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/utils"
)

// PayoutUsecase handles payout request business logic
type PayoutUsecase struct {
	payoutRepo repositories.PayoutRepository
	walletRepo repositories.WalletRepository
	ledgerRepo repositories.LedgerRepository
	uow        repositories.UnitOfWork
}

// NewPayoutUsecase creates a new payout usecase
func NewPayoutUsecase(
	payoutRepo repositories.PayoutRepository,
	walletRepo repositories.WalletRepository,
	ledgerRepo repositories.LedgerRepository,
	uow repositories.UnitOfWork,
) *PayoutUsecase {
	return &PayoutUsecase{
		payoutRepo: payoutRepo,
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
		uow:        uow,
	}
}

// Request creates a pending payout request. The wallet is not debited here;
// funds leave the balance only when an admin processes the request.
func (u *PayoutUsecase) Request(ctx context.Context, userID uuid.UUID, input *entities.RequestPayoutInput) (*entities.PayoutRequest, error) {
	amount := utils.RoundMoney(input.Amount)
	if amount < entities.MinPayoutAmount {
		return nil, domainerrors.BadRequest("Minimum payout amount is Rs. 1,000")
	}

	wallet, err := u.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.BadRequest("Insufficient balance")
		}
		return nil, err
	}

	payout := &entities.PayoutRequest{
		ID:           utils.GenerateUUIDv7(),
		UserID:       userID,
		WalletID:     wallet.ID,
		Amount:       amount,
		BankName:     input.BankName,
		AccountTitle: input.AccountTitle,
		IBAN:         input.IBAN,
		Status:       entities.PayoutStatusPending,
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		pending, err := u.payoutRepo.HasPending(ctx, userID)
		if err != nil {
			return err
		}
		if pending {
			return domainerrors.Conflict("You already have a pending payout request")
		}

		wallet, err := u.walletRepo.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if wallet.CurrentBalance < amount {
			return domainerrors.BadRequest("Insufficient balance")
		}

		return u.payoutRepo.Create(ctx, payout)
	})
	if err != nil {
		return nil, err
	}
	return payout, nil
}

// ListByUser returns a user's payout requests newest-first
func (u *PayoutUsecase) ListByUser(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]*entities.PayoutRequest, *utils.PaginationMeta, error) {
	offset := params.CalculateOffset()
	payouts, total, err := u.payoutRepo.ListByUserID(ctx, userID, params.Limit, offset)
	if err != nil {
		return nil, nil, err
	}
	meta := utils.CalculateMeta(total, params.Page, params.Limit)
	return payouts, &meta, nil
}

// ListByStatus returns payout requests in a given status (admin)
func (u *PayoutUsecase) ListByStatus(ctx context.Context, status entities.PayoutStatus, params utils.PaginationParams) ([]*entities.PayoutRequest, *utils.PaginationMeta, error) {
	offset := params.CalculateOffset()
	payouts, total, err := u.payoutRepo.ListByStatus(ctx, status, params.Limit, offset)
	if err != nil {
		return nil, nil, err
	}
	meta := utils.CalculateMeta(total, params.Page, params.Limit)
	return payouts, &meta, nil
}

// Process completes a pending payout: the wallet is debited, a withdrawal
// ledger entry is appended and the request is marked completed, all in one
// transaction. A balance that no longer covers the amount fails the whole
// operation.
func (u *PayoutUsecase) Process(ctx context.Context, payoutID, adminID uuid.UUID, input *entities.ProcessPayoutInput) (*entities.PayoutRequest, error) {
	payout, err := u.payoutRepo.GetByID(ctx, payoutID)
	if err != nil {
		return nil, err
	}
	if payout.Status != entities.PayoutStatusPending {
		return nil, domainerrors.Conflict("Payout request has already been processed")
	}

	now := time.Now().UTC()
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.walletRepo.DebitWithdrawal(ctx, payout.WalletID, payout.Amount); err != nil {
			if errors.Is(err, domainerrors.ErrInsufficientFunds) {
				return domainerrors.BadRequest("Insufficient balance")
			}
			return err
		}

		entry := &entities.LedgerEntry{
			ID:          utils.GenerateUUIDv7(),
			WalletID:    payout.WalletID,
			UserID:      payout.UserID,
			Type:        entities.LedgerEntryWithdrawal,
			GrossAmount: payout.Amount,
			NetAmount:   -payout.Amount,
			Description: fmt.Sprintf("Payout to %s (%s)", payout.BankName, payout.IBAN),
		}
		if err := u.ledgerRepo.Create(ctx, entry); err != nil {
			return err
		}

		var receiptURL null.String
		if input.ReceiptURL != "" {
			receiptURL.SetValid(input.ReceiptURL)
		}
		return u.payoutRepo.MarkCompleted(ctx, payout.ID, input.TransactionReference, receiptURL, adminID, now)
	})
	if err != nil {
		return nil, err
	}

	metrics.PayoutsProcessed.Inc()
	return u.payoutRepo.GetByID(ctx, payoutID)
}

// Reject declines a pending payout with a reason. No funds move.
func (u *PayoutUsecase) Reject(ctx context.Context, payoutID, adminID uuid.UUID, input *entities.RejectPayoutInput) (*entities.PayoutRequest, error) {
	payout, err := u.payoutRepo.GetByID(ctx, payoutID)
	if err != nil {
		return nil, err
	}
	if payout.Status != entities.PayoutStatusPending {
		return nil, domainerrors.Conflict("Payout request has already been processed")
	}

	if err := u.payoutRepo.MarkRejected(ctx, payout.ID, input.Reason, adminID, time.Now().UTC()); err != nil {
		return nil, err
	}
	return u.payoutRepo.GetByID(ctx, payoutID)
}
