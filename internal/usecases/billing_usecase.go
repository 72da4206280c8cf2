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
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/logger"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/metrics"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/utils"
	"go.uber.org/zap"
)

// SubscriptionOverview is the seller-facing view of their billing state
type SubscriptionOverview struct {
	Subscription       *entities.SellerSubscription `json:"subscription"`
	EffectiveFee       float64                      `json:"effectiveFee"`
	FreePeriodDaysLeft int                          `json:"freePeriodDaysLeft"`
}

// BillingUsecase handles seller subscription billing
type BillingUsecase struct {
	subscriptionRepo  repositories.SubscriptionRepository
	deductionLogRepo  repositories.DeductionLogRepository
	planChangeRepo    repositories.PlanChangeRepository
	walletRepo        repositories.WalletRepository
	ledgerRepo        repositories.LedgerRepository
	productRepo       repositories.ProductRepository
	settingRepo       repositories.SettingRepository
	uow               repositories.UnitOfWork
	defaultDailyFee   float64
	defaultFreeMonths int
}

// NewBillingUsecase creates a new billing usecase
func NewBillingUsecase(
	subscriptionRepo repositories.SubscriptionRepository,
	deductionLogRepo repositories.DeductionLogRepository,
	planChangeRepo repositories.PlanChangeRepository,
	walletRepo repositories.WalletRepository,
	ledgerRepo repositories.LedgerRepository,
	productRepo repositories.ProductRepository,
	settingRepo repositories.SettingRepository,
	uow repositories.UnitOfWork,
	defaultDailyFee float64,
	defaultFreeMonths int,
) *BillingUsecase {
	return &BillingUsecase{
		subscriptionRepo:  subscriptionRepo,
		deductionLogRepo:  deductionLogRepo,
		planChangeRepo:    planChangeRepo,
		walletRepo:        walletRepo,
		ledgerRepo:        ledgerRepo,
		productRepo:       productRepo,
		settingRepo:       settingRepo,
		uow:               uow,
		defaultDailyFee:   defaultDailyFee,
		defaultFreeMonths: defaultFreeMonths,
	}
}

// EnsureSubscription creates the seller's subscription on first need. New
// sellers start on the daily plan inside their free period; billing begins
// when the free period ends.
func (u *BillingUsecase) EnsureSubscription(ctx context.Context, userID uuid.UUID) (*entities.SellerSubscription, error) {
	sub, err := u.subscriptionRepo.GetByUserID(ctx, userID)
	if err == nil {
		return sub, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	freeMonths, err := u.settingRepo.GetInt(ctx, entities.SettingFreeSubscriptionMonths, u.defaultFreeMonths)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sub = &entities.SellerSubscription{
		ID:         utils.GenerateUUIDv7(),
		UserID:     userID,
		PlanType:   entities.PlanTypeDaily,
		IsActive:   true,
		FreeMonths: freeMonths,
	}
	if freeMonths > 0 {
		end := now.AddDate(0, freeMonths, 0)
		sub.IsInFreePeriod = true
		sub.FreePeriodStart = &now
		sub.FreePeriodEnd = &end
		sub.NextDeductionAt = &end
	} else {
		next := now.AddDate(0, 0, sub.PlanType.Days())
		sub.NextDeductionAt = &next
	}

	if err := u.subscriptionRepo.Create(ctx, sub); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return u.subscriptionRepo.GetByUserID(ctx, userID)
		}
		return nil, err
	}
	return sub, nil
}

// EffectiveFee returns the fee one billing cycle costs for a subscription:
// the per-seller custom daily fee when set, otherwise the platform daily
// fee, multiplied by the plan's cycle length in days.
func (u *BillingUsecase) EffectiveFee(ctx context.Context, sub *entities.SellerSubscription) (float64, error) {
	dailyFee, err := u.settingRepo.GetFloat(ctx, entities.SettingDailySubscriptionFee, u.defaultDailyFee)
	if err != nil {
		return 0, err
	}
	if sub.CustomDailyFee != nil {
		dailyFee = *sub.CustomDailyFee
	}
	return utils.RoundMoney(dailyFee * float64(sub.PlanType.Days())), nil
}

// GetOverview returns the seller's subscription with the derived fee and
// free period countdown
func (u *BillingUsecase) GetOverview(ctx context.Context, userID uuid.UUID) (*SubscriptionOverview, error) {
	sub, err := u.EnsureSubscription(ctx, userID)
	if err != nil {
		return nil, err
	}
	fee, err := u.EffectiveFee(ctx, sub)
	if err != nil {
		return nil, err
	}
	return &SubscriptionOverview{
		Subscription:       sub,
		EffectiveFee:       fee,
		FreePeriodDaysLeft: sub.FreePeriodDaysLeft(time.Now().UTC()),
	}, nil
}

// GetDeductionHistory returns the seller's billing audit log newest-first
func (u *BillingUsecase) GetDeductionHistory(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]*entities.SubscriptionDeductionLog, *utils.PaginationMeta, error) {
	offset := params.CalculateOffset()
	logs, total, err := u.deductionLogRepo.ListByUserID(ctx, userID, params.Limit, offset)
	if err != nil {
		return nil, nil, err
	}
	meta := utils.CalculateMeta(total, params.Page, params.Limit)
	return logs, &meta, nil
}

// RequestPlanChange submits a plan change for admin review. At most one
// pending request per seller.
func (u *BillingUsecase) RequestPlanChange(ctx context.Context, userID uuid.UUID, input *entities.PlanChangeInput) (*entities.PlanChangeRequest, error) {
	requested := entities.PlanType(input.RequestedPlan)
	if !requested.Valid() {
		return nil, domainerrors.BadRequest("Unknown plan type")
	}

	sub, err := u.EnsureSubscription(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sub.PlanType == requested {
		return nil, domainerrors.BadRequest("You are already on this plan")
	}

	req := &entities.PlanChangeRequest{
		ID:            utils.GenerateUUIDv7(),
		UserID:        userID,
		CurrentPlan:   sub.PlanType,
		RequestedPlan: requested,
		Status:        entities.PlanChangeStatusPending,
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		pending, err := u.planChangeRepo.HasPending(ctx, userID)
		if err != nil {
			return err
		}
		if pending {
			return domainerrors.Conflict("You already have a pending plan change request")
		}
		return u.planChangeRepo.Create(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// ListPendingPlanChanges returns plan change requests awaiting review (admin)
func (u *BillingUsecase) ListPendingPlanChanges(ctx context.Context, params utils.PaginationParams) ([]*entities.PlanChangeRequest, *utils.PaginationMeta, error) {
	offset := params.CalculateOffset()
	reqs, total, err := u.planChangeRepo.ListPending(ctx, params.Limit, offset)
	if err != nil {
		return nil, nil, err
	}
	meta := utils.CalculateMeta(total, params.Page, params.Limit)
	return reqs, &meta, nil
}

// ResolvePlanChange approves or rejects a pending plan change. Approval
// switches the plan immediately; the already scheduled next deduction keeps
// its date and the new cycle length applies from then on.
func (u *BillingUsecase) ResolvePlanChange(ctx context.Context, requestID, adminID uuid.UUID, approve bool, notes string) (*entities.PlanChangeRequest, error) {
	req, err := u.planChangeRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != entities.PlanChangeStatusPending {
		return nil, domainerrors.Conflict("Plan change request has already been processed")
	}

	status := entities.PlanChangeStatusRejected
	now := time.Now().UTC()
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if approve {
			status = entities.PlanChangeStatusApproved
			sub, err := u.subscriptionRepo.GetByUserID(ctx, req.UserID)
			if err != nil {
				return err
			}
			next := now.AddDate(0, 0, req.RequestedPlan.Days())
			if sub.NextDeductionAt != nil && sub.NextDeductionAt.After(now) {
				next = *sub.NextDeductionAt
			}
			if err := u.subscriptionRepo.UpdatePlan(ctx, req.UserID, req.RequestedPlan, next); err != nil {
				return err
			}
		}
		return u.planChangeRepo.Resolve(ctx, req.ID, status, adminID, notes, now)
	})
	if err != nil {
		return nil, err
	}
	return u.planChangeRepo.GetByID(ctx, requestID)
}

// ProcessDeduction runs one billing attempt against a subscription. The fee
// plus any carried-over pending amount is debited in one guarded statement;
// a second consecutive failure suspends the account and hides the seller's
// products. Each outcome commits the ledger entry, the subscription row and
// the audit log in a single transaction, so the schedule can never drift
// from the money movement.
func (u *BillingUsecase) ProcessDeduction(ctx context.Context, sub *entities.SellerSubscription, now time.Time) error {
	if !sub.IsActive {
		return nil
	}

	// Free period still running: push the schedule to its end, charge nothing
	if sub.IsInFreePeriod && sub.FreePeriodEnd != nil && now.Before(*sub.FreePeriodEnd) {
		sub.NextDeductionAt = sub.FreePeriodEnd
		return u.subscriptionRepo.Update(ctx, sub)
	}
	if sub.IsInFreePeriod {
		sub.IsInFreePeriod = false
	}

	fee, err := u.EffectiveFee(ctx, sub)
	if err != nil {
		return err
	}
	amountDue := utils.RoundMoney(fee + sub.PendingAmount)
	if amountDue <= 0 {
		next := now.AddDate(0, 0, sub.PlanType.Days())
		sub.NextDeductionAt = &next
		return u.subscriptionRepo.Update(ctx, sub)
	}

	wallet, err := u.walletRepo.GetByUserID(ctx, sub.UserID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}
	balanceBefore := 0.0
	if wallet != nil {
		balanceBefore = wallet.CurrentBalance
	}

	next := now.AddDate(0, 0, sub.PlanType.Days())
	deductionErr := domainerrors.ErrInsufficientFunds
	if wallet != nil {
		deductionErr = u.uow.Do(ctx, func(ctx context.Context) error {
			if err := u.walletRepo.Debit(ctx, wallet.ID, amountDue); err != nil {
				return err
			}
			entry := &entities.LedgerEntry{
				ID:          utils.GenerateUUIDv7(),
				WalletID:    wallet.ID,
				UserID:      sub.UserID,
				Type:        entities.LedgerEntryAdjustment,
				GrossAmount: amountDue,
				NetAmount:   -amountDue,
				Description: fmt.Sprintf("Subscription fee (%s plan)", sub.PlanType),
			}
			if err := u.ledgerRepo.Create(ctx, entry); err != nil {
				return err
			}

			sub.LastDeductionAt = &now
			sub.NextDeductionAt = &next
			sub.PaymentPending = false
			sub.PendingAmount = 0
			sub.TotalFeesPaid = utils.RoundMoney(sub.TotalFeesPaid + amountDue)
			if sub.AccountSuspended {
				if err := u.reactivate(ctx, sub, now); err != nil {
					return err
				}
			}
			if err := u.subscriptionRepo.Update(ctx, sub); err != nil {
				return err
			}
			return u.deductionLogRepo.Create(ctx, &entities.SubscriptionDeductionLog{
				ID:                  utils.GenerateUUIDv7(),
				SubscriptionID:      sub.ID,
				UserID:              sub.UserID,
				Amount:              amountDue,
				DeductionType:       "subscription_fee",
				Status:              entities.DeductionStatusSuccess,
				WalletBalanceBefore: balanceBefore,
				WalletBalanceAfter:  utils.RoundMoney(balanceBefore - amountDue),
			})
		})
	}
	if deductionErr == nil {
		metrics.SubscriptionDeductions.WithLabelValues(string(entities.DeductionStatusSuccess)).Inc()
		return nil
	}
	if !errors.Is(deductionErr, domainerrors.ErrInsufficientFunds) {
		return deductionErr
	}

	// Missed payment: the reschedule, suspension and audit log commit together
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if sub.PaymentPending && !sub.AccountSuspended {
			// Second consecutive miss: suspend and hide the storefront
			sub.AccountSuspended = true
			sub.SuspendedAt = &now
			if err := u.productRepo.SetHiddenBySeller(ctx, sub.UserID, true); err != nil {
				return err
			}
		}
		sub.PaymentPending = true
		sub.PendingAmount = amountDue
		sub.NextDeductionAt = &next
		if err := u.subscriptionRepo.Update(ctx, sub); err != nil {
			return err
		}
		return u.deductionLogRepo.Create(ctx, &entities.SubscriptionDeductionLog{
			ID:                  utils.GenerateUUIDv7(),
			SubscriptionID:      sub.ID,
			UserID:              sub.UserID,
			Amount:              amountDue,
			DeductionType:       "subscription_fee",
			Status:              entities.DeductionStatusFailed,
			FailureReason:       null.StringFrom("insufficient wallet balance"),
			WalletBalanceBefore: balanceBefore,
			WalletBalanceAfter:  balanceBefore,
		})
	})
	if err != nil {
		return err
	}
	metrics.SubscriptionDeductions.WithLabelValues(string(entities.DeductionStatusFailed)).Inc()
	return nil
}

// ProcessDue bills every subscription whose next deduction has come due.
// Returns the number of subscriptions attempted.
func (u *BillingUsecase) ProcessDue(ctx context.Context, now time.Time, batchSize int) (int, error) {
	subs, err := u.subscriptionRepo.ListDue(ctx, now, batchSize)
	if err != nil {
		return 0, err
	}
	for _, sub := range subs {
		if err := u.ProcessDeduction(ctx, sub, now); err != nil {
			logger.Error(ctx, "subscription deduction failed",
				zap.String("user_id", sub.UserID.String()), zap.Error(err))
		}
	}
	return len(subs), nil
}

// DeductNow runs an immediate billing attempt for one seller (admin)
func (u *BillingUsecase) DeductNow(ctx context.Context, userID uuid.UUID) (*entities.SellerSubscription, error) {
	sub, err := u.subscriptionRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := u.ProcessDeduction(ctx, sub, time.Now().UTC()); err != nil {
		return nil, err
	}
	return u.subscriptionRepo.GetByUserID(ctx, userID)
}

// SettleOutstanding clears a seller's pending subscription fees after their
// wallet was credited. A successful settlement lifts the suspension and
// unhides the products.
func (u *BillingUsecase) SettleOutstanding(ctx context.Context, userID uuid.UUID) error {
	sub, err := u.subscriptionRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil
		}
		return err
	}
	if !sub.PaymentPending || sub.PendingAmount <= 0 {
		return nil
	}

	wallet, err := u.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	balanceBefore := wallet.CurrentBalance
	amount := sub.PendingAmount
	now := time.Now().UTC()

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.walletRepo.Debit(ctx, wallet.ID, amount); err != nil {
			return err
		}
		entry := &entities.LedgerEntry{
			ID:          utils.GenerateUUIDv7(),
			WalletID:    wallet.ID,
			UserID:      userID,
			Type:        entities.LedgerEntryAdjustment,
			GrossAmount: amount,
			NetAmount:   -amount,
			Description: "Outstanding subscription fee settlement",
		}
		if err := u.ledgerRepo.Create(ctx, entry); err != nil {
			return err
		}

		sub.PaymentPending = false
		sub.PendingAmount = 0
		sub.TotalFeesPaid = utils.RoundMoney(sub.TotalFeesPaid + amount)
		sub.LastDeductionAt = &now
		if sub.AccountSuspended {
			if err := u.reactivate(ctx, sub, now); err != nil {
				return err
			}
		}
		if err := u.subscriptionRepo.Update(ctx, sub); err != nil {
			return err
		}
		return u.deductionLogRepo.Create(ctx, &entities.SubscriptionDeductionLog{
			ID:                  utils.GenerateUUIDv7(),
			SubscriptionID:      sub.ID,
			UserID:              userID,
			Amount:              amount,
			DeductionType:       "settlement",
			Status:              entities.DeductionStatusSuccess,
			WalletBalanceBefore: balanceBefore,
			WalletBalanceAfter:  utils.RoundMoney(balanceBefore - amount),
		})
	})
	if errors.Is(err, domainerrors.ErrInsufficientFunds) {
		// Credit did not cover the arrears; next sweep tries again
		return nil
	}
	if err != nil {
		return err
	}
	metrics.SubscriptionDeductions.WithLabelValues(string(entities.DeductionStatusSuccess)).Inc()
	return nil
}

func (u *BillingUsecase) reactivate(ctx context.Context, sub *entities.SellerSubscription, now time.Time) error {
	sub.AccountSuspended = false
	sub.SuspendedAt = nil
	sub.ReactivatedAt = &now
	return u.productRepo.SetHiddenBySeller(ctx, sub.UserID, false)
}
