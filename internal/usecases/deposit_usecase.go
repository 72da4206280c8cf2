package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
	domainerrors "github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/errors"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/repositories"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/logger"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/metrics"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/utils"
)

// DepositMailer sends deposit lifecycle notifications
type DepositMailer interface {
	SendDepositApproved(ctx context.Context, to, name string, amount float64) error
}

// FeeSettler clears outstanding subscription fees after a wallet credit
type FeeSettler interface {
	SettleOutstanding(ctx context.Context, userID uuid.UUID) error
}

// DepositUsecase handles manual deposit requests and payment methods
type DepositUsecase struct {
	depositRepo       repositories.DepositRepository
	paymentMethodRepo repositories.PaymentMethodRepository
	walletRepo        repositories.WalletRepository
	ledgerRepo        repositories.LedgerRepository
	userRepo          repositories.UserRepository
	settingRepo       repositories.SettingRepository
	uow               repositories.UnitOfWork
	mailer            DepositMailer
	settler           FeeSettler
}

// NewDepositUsecase creates a new deposit usecase
func NewDepositUsecase(
	depositRepo repositories.DepositRepository,
	paymentMethodRepo repositories.PaymentMethodRepository,
	walletRepo repositories.WalletRepository,
	ledgerRepo repositories.LedgerRepository,
	userRepo repositories.UserRepository,
	settingRepo repositories.SettingRepository,
	uow repositories.UnitOfWork,
	mailer DepositMailer,
	settler FeeSettler,
) *DepositUsecase {
	return &DepositUsecase{
		depositRepo:       depositRepo,
		paymentMethodRepo: paymentMethodRepo,
		walletRepo:        walletRepo,
		ledgerRepo:        ledgerRepo,
		userRepo:          userRepo,
		settingRepo:       settingRepo,
		uow:               uow,
		mailer:            mailer,
		settler:           settler,
	}
}

// Create submits a deposit request backed by a payment screenshot. The
// server-side gate on the manual deposits setting is authoritative; hiding
// the button in a client is not enough. COD-only mode forces the gate shut
// even while the deposit toggle is on.
func (u *DepositUsecase) Create(ctx context.Context, userID uuid.UUID, role entities.UserRole, input *entities.CreateDepositInput) (*entities.DepositRequest, error) {
	enabled, err := u.settingRepo.GetBool(ctx, entities.SettingManualDepositsEnabled, true)
	if err != nil {
		return nil, err
	}
	if enabled {
		codOnly, err := u.settingRepo.GetBool(ctx, entities.SettingCODOnlyMode, false)
		if err != nil {
			return nil, err
		}
		enabled = !codOnly
	}
	if !enabled {
		return nil, domainerrors.Forbidden("Manual deposits are currently disabled")
	}

	methodID, err := uuid.Parse(input.PaymentMethodID)
	if err != nil {
		return nil, domainerrors.BadRequest("Invalid payment method")
	}
	method, err := u.paymentMethodRepo.GetByID(ctx, methodID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.BadRequest("Invalid payment method")
		}
		return nil, err
	}
	if !method.IsActive {
		return nil, domainerrors.BadRequest("Payment method is not accepting deposits")
	}

	requesterType := entities.RequesterTypeCustomer
	if role == entities.UserRoleSeller {
		requesterType = entities.RequesterTypeSeller
	}

	deposit := &entities.DepositRequest{
		ID:              utils.GenerateUUIDv7(),
		UserID:          userID,
		RequesterType:   requesterType,
		PaymentMethodID: method.ID,
		Amount:          utils.RoundMoney(input.Amount),
		ScreenshotURL:   input.ScreenshotURL,
		Status:          entities.DepositStatusPending,
	}
	if input.TransactionReference != "" {
		deposit.TransactionReference.SetValid(input.TransactionReference)
	}

	if err := u.depositRepo.Create(ctx, deposit); err != nil {
		return nil, err
	}
	return deposit, nil
}

// ListByUser returns a user's deposit requests newest-first
func (u *DepositUsecase) ListByUser(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]*entities.DepositRequest, *utils.PaginationMeta, error) {
	offset := params.CalculateOffset()
	deposits, total, err := u.depositRepo.ListByUserID(ctx, userID, params.Limit, offset)
	if err != nil {
		return nil, nil, err
	}
	meta := utils.CalculateMeta(total, params.Page, params.Limit)
	return deposits, &meta, nil
}

// ListByStatus returns deposit requests in a given status (admin)
func (u *DepositUsecase) ListByStatus(ctx context.Context, status entities.DepositStatus, params utils.PaginationParams) ([]*entities.DepositRequest, *utils.PaginationMeta, error) {
	offset := params.CalculateOffset()
	deposits, total, err := u.depositRepo.ListByStatus(ctx, status, params.Limit, offset)
	if err != nil {
		return nil, nil, err
	}
	meta := utils.CalculateMeta(total, params.Page, params.Limit)
	return deposits, &meta, nil
}

// Approve credits the requester's wallet, appends the ledger entry and marks
// the request approved in one transaction. The notification email and any
// outstanding fee settlement run after commit and never roll it back.
func (u *DepositUsecase) Approve(ctx context.Context, depositID, adminID uuid.UUID, notes string) (*entities.DepositRequest, error) {
	deposit, err := u.depositRepo.GetByID(ctx, depositID)
	if err != nil {
		return nil, err
	}
	if deposit.Status != entities.DepositStatusPending {
		return nil, domainerrors.Conflict("Deposit request has already been processed")
	}

	wallet, err := u.getOrCreateWallet(ctx, deposit.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.walletRepo.Credit(ctx, wallet.ID, deposit.Amount); err != nil {
			return err
		}
		entry := &entities.LedgerEntry{
			ID:          utils.GenerateUUIDv7(),
			WalletID:    wallet.ID,
			UserID:      deposit.UserID,
			Type:        entities.LedgerEntryAdjustment,
			GrossAmount: deposit.Amount,
			NetAmount:   deposit.Amount,
			Description: "Manual deposit approved",
		}
		if err := u.ledgerRepo.Create(ctx, entry); err != nil {
			return err
		}
		return u.depositRepo.MarkApproved(ctx, deposit.ID, adminID, notes, now)
	})
	if err != nil {
		return nil, err
	}
	metrics.DepositsApproved.Inc()

	if user, err := u.userRepo.GetByID(ctx, deposit.UserID); err == nil {
		if err := u.mailer.SendDepositApproved(ctx, user.Email, user.Name, deposit.Amount); err != nil {
			logger.Warn(ctx, "deposit approval email failed",
				zap.String("deposit_id", deposit.ID.String()), zap.Error(err))
		}
	}

	if deposit.RequesterType == entities.RequesterTypeSeller {
		if err := u.settler.SettleOutstanding(ctx, deposit.UserID); err != nil {
			logger.Error(ctx, "fee settlement after deposit failed",
				zap.String("user_id", deposit.UserID.String()), zap.Error(err))
		}
	}

	return u.depositRepo.GetByID(ctx, depositID)
}

// Reject declines a pending deposit with a reason. No funds move.
func (u *DepositUsecase) Reject(ctx context.Context, depositID, adminID uuid.UUID, reason string) (*entities.DepositRequest, error) {
	deposit, err := u.depositRepo.GetByID(ctx, depositID)
	if err != nil {
		return nil, err
	}
	if deposit.Status != entities.DepositStatusPending {
		return nil, domainerrors.Conflict("Deposit request has already been processed")
	}

	if err := u.depositRepo.MarkRejected(ctx, deposit.ID, adminID, reason, time.Now().UTC()); err != nil {
		return nil, err
	}
	return u.depositRepo.GetByID(ctx, depositID)
}

// ListPaymentMethods returns payment methods, optionally active ones only
func (u *DepositUsecase) ListPaymentMethods(ctx context.Context, activeOnly bool) ([]*entities.PaymentMethod, error) {
	return u.paymentMethodRepo.List(ctx, activeOnly)
}

// CreatePaymentMethod adds a platform deposit destination (admin)
func (u *DepositUsecase) CreatePaymentMethod(ctx context.Context, input *entities.PaymentMethodInput) (*entities.PaymentMethod, error) {
	method := &entities.PaymentMethod{
		ID:            utils.GenerateUUIDv7(),
		Name:          input.Name,
		AccountTitle:  input.AccountTitle,
		AccountNumber: input.AccountNumber,
		IsActive:      true,
	}
	if input.Instructions != "" {
		method.Instructions = null.StringFrom(input.Instructions)
	}
	if input.IsActive != nil {
		method.IsActive = *input.IsActive
	}
	if err := u.paymentMethodRepo.Create(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

// UpdatePaymentMethod edits a deposit destination (admin)
func (u *DepositUsecase) UpdatePaymentMethod(ctx context.Context, id uuid.UUID, input *entities.PaymentMethodInput) (*entities.PaymentMethod, error) {
	method, err := u.paymentMethodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	method.Name = input.Name
	method.AccountTitle = input.AccountTitle
	method.AccountNumber = input.AccountNumber
	if input.Instructions != "" {
		method.Instructions = null.StringFrom(input.Instructions)
	} else {
		method.Instructions = null.String{}
	}
	if input.IsActive != nil {
		method.IsActive = *input.IsActive
	}
	if err := u.paymentMethodRepo.Update(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

func (u *DepositUsecase) getOrCreateWallet(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	wallet, err := u.walletRepo.GetByUserID(ctx, userID)
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	wallet = &entities.Wallet{ID: utils.GenerateUUIDv7(), UserID: userID}
	if err := u.walletRepo.Create(ctx, wallet); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return u.walletRepo.GetByUserID(ctx, userID)
		}
		return nil, err
	}
	return wallet, nil
}
