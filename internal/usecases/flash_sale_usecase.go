package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
	domainerrors "github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/errors"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/repositories"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/metrics"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/utils"
)

// FlashSaleUsecase handles flash sale events, nominations and live listings
type FlashSaleUsecase struct {
	flashSaleRepo    repositories.FlashSaleRepository
	nominationRepo   repositories.NominationRepository
	saleProductRepo  repositories.FlashSaleProductRepository
	productRepo      repositories.ProductRepository
	subscriptionRepo repositories.SubscriptionRepository
	walletRepo       repositories.WalletRepository
	ledgerRepo       repositories.LedgerRepository
	uow              repositories.UnitOfWork
}

// NewFlashSaleUsecase creates a new flash sale usecase
func NewFlashSaleUsecase(
	flashSaleRepo repositories.FlashSaleRepository,
	nominationRepo repositories.NominationRepository,
	saleProductRepo repositories.FlashSaleProductRepository,
	productRepo repositories.ProductRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	walletRepo repositories.WalletRepository,
	ledgerRepo repositories.LedgerRepository,
	uow repositories.UnitOfWork,
) *FlashSaleUsecase {
	return &FlashSaleUsecase{
		flashSaleRepo:    flashSaleRepo,
		nominationRepo:   nominationRepo,
		saleProductRepo:  saleProductRepo,
		productRepo:      productRepo,
		subscriptionRepo: subscriptionRepo,
		walletRepo:       walletRepo,
		ledgerRepo:       ledgerRepo,
		uow:              uow,
	}
}

// CreateSale creates a flash sale event (admin)
func (u *FlashSaleUsecase) CreateSale(ctx context.Context, input *entities.FlashSaleInput) (*entities.FlashSale, error) {
	if !input.EndsAt.After(input.StartsAt) {
		return nil, domainerrors.BadRequest("Flash sale must end after it starts")
	}
	sale := &entities.FlashSale{
		ID:       utils.GenerateUUIDv7(),
		Title:    input.Title,
		StartsAt: input.StartsAt,
		EndsAt:   input.EndsAt,
		IsActive: true,
	}
	if err := u.flashSaleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// ListSales returns flash sale events, optionally active ones only
func (u *FlashSaleUsecase) ListSales(ctx context.Context, activeOnly bool) ([]*entities.FlashSale, error) {
	return u.flashSaleRepo.List(ctx, activeOnly)
}

// Nominate submits a seller's product for a flash sale. The listing fee is
// only checked against the balance here; it is deducted when an admin
// approves the nomination.
func (u *FlashSaleUsecase) Nominate(ctx context.Context, userID, flashSaleID uuid.UUID, input *entities.CreateNominationInput) (*entities.FlashSaleNomination, error) {
	sale, err := u.flashSaleRepo.GetByID(ctx, flashSaleID)
	if err != nil {
		return nil, err
	}
	if !sale.IsActive || time.Now().UTC().After(sale.EndsAt) {
		return nil, domainerrors.BadRequest("Flash sale is not accepting nominations")
	}

	productID, err := uuid.Parse(input.ProductID)
	if err != nil {
		return nil, domainerrors.BadRequest("Invalid product")
	}
	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.SellerID != userID {
		return nil, domainerrors.Forbidden("You can only nominate your own products")
	}

	sub, err := u.subscriptionRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if sub != nil && sub.AccountSuspended {
		return nil, domainerrors.Forbidden("Your account is suspended due to unpaid subscription fees")
	}

	proposed := utils.RoundMoney(input.ProposedPrice)
	original := utils.RoundMoney(input.OriginalPrice)
	if proposed > original*(1-entities.MinFlashSaleDiscount) {
		return nil, domainerrors.BadRequest("Flash sale discount must be at least 20%")
	}

	wallet, err := u.walletRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	fee := utils.RoundMoney(input.TotalFee)
	if wallet == nil || wallet.CurrentBalance < fee {
		return nil, domainerrors.BadRequest("Insufficient wallet balance for flash sale fee")
	}

	nomination := &entities.FlashSaleNomination{
		ID:            utils.GenerateUUIDv7(),
		UserID:        userID,
		ProductID:     productID,
		FlashSaleID:   flashSaleID,
		ProposedPrice: proposed,
		OriginalPrice: original,
		StockLimit:    input.StockLimit,
		TimeSlot:      input.TimeSlot,
		Status:        entities.NominationStatusPending,
		TotalFee:      fee,
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		pending, err := u.nominationRepo.HasPendingForProduct(ctx, flashSaleID, productID)
		if err != nil {
			return err
		}
		if pending {
			return domainerrors.Conflict("This product already has a pending nomination for this flash sale")
		}
		return u.nominationRepo.Create(ctx, nomination)
	})
	if err != nil {
		return nil, err
	}
	return nomination, nil
}

// ListNominationsByUser returns a seller's nominations newest-first
func (u *FlashSaleUsecase) ListNominationsByUser(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]*entities.FlashSaleNomination, *utils.PaginationMeta, error) {
	offset := params.CalculateOffset()
	nominations, total, err := u.nominationRepo.ListByUserID(ctx, userID, params.Limit, offset)
	if err != nil {
		return nil, nil, err
	}
	meta := utils.CalculateMeta(total, params.Page, params.Limit)
	return nominations, &meta, nil
}

// ListNominationsByStatus returns nominations in a given status (admin)
func (u *FlashSaleUsecase) ListNominationsByStatus(ctx context.Context, status entities.NominationStatus, params utils.PaginationParams) ([]*entities.FlashSaleNomination, *utils.PaginationMeta, error) {
	offset := params.CalculateOffset()
	nominations, total, err := u.nominationRepo.ListByStatus(ctx, status, params.Limit, offset)
	if err != nil {
		return nil, nil, err
	}
	meta := utils.CalculateMeta(total, params.Page, params.Limit)
	return nominations, &meta, nil
}

// ApproveNomination deducts the listing fee, appends the ledger entry, marks
// the nomination approved and creates the live flash-sale listing, all in
// one transaction. A balance that no longer covers the fee fails the whole
// approval and the nomination stays pending.
func (u *FlashSaleUsecase) ApproveNomination(ctx context.Context, nominationID, adminID uuid.UUID, input *entities.ReviewNominationInput) (*entities.FlashSaleNomination, error) {
	nomination, err := u.nominationRepo.GetByID(ctx, nominationID)
	if err != nil {
		return nil, err
	}
	if nomination.Status != entities.NominationStatusPending {
		return nil, domainerrors.Conflict("Nomination has already been processed")
	}

	wallet, err := u.walletRepo.GetByUserID(ctx, nomination.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.walletRepo.Debit(ctx, wallet.ID, nomination.TotalFee); err != nil {
			if errors.Is(err, domainerrors.ErrInsufficientFunds) {
				return domainerrors.BadRequest("Insufficient wallet balance for flash sale fee")
			}
			return err
		}

		entry := &entities.LedgerEntry{
			ID:          utils.GenerateUUIDv7(),
			WalletID:    wallet.ID,
			UserID:      nomination.UserID,
			Type:        entities.LedgerEntryAdjustment,
			GrossAmount: nomination.TotalFee,
			NetAmount:   -nomination.TotalFee,
			Description: fmt.Sprintf("Flash sale listing fee (%d units)", nomination.StockLimit),
		}
		if err := u.ledgerRepo.Create(ctx, entry); err != nil {
			return err
		}

		if err := u.nominationRepo.MarkApproved(ctx, nomination.ID, adminID, input.AdminNotes, now); err != nil {
			return err
		}

		listing := &entities.FlashSaleProduct{
			ID:          utils.GenerateUUIDv7(),
			FlashSaleID: nomination.FlashSaleID,
			ProductID:   nomination.ProductID,
			SellerID:    nomination.UserID,
			Price:       nomination.ProposedPrice,
			StockLimit:  nomination.StockLimit,
		}
		return u.saleProductRepo.Create(ctx, listing)
	})
	if err != nil {
		return nil, err
	}
	return u.nominationRepo.GetByID(ctx, nominationID)
}

// RejectNomination declines a pending nomination. No fee is charged.
func (u *FlashSaleUsecase) RejectNomination(ctx context.Context, nominationID, adminID uuid.UUID, input *entities.ReviewNominationInput) (*entities.FlashSaleNomination, error) {
	nomination, err := u.nominationRepo.GetByID(ctx, nominationID)
	if err != nil {
		return nil, err
	}
	if nomination.Status != entities.NominationStatusPending {
		return nil, domainerrors.Conflict("Nomination has already been processed")
	}

	if err := u.nominationRepo.MarkRejected(ctx, nomination.ID, adminID, input.AdminNotes, time.Now().UTC()); err != nil {
		return nil, err
	}
	return u.nominationRepo.GetByID(ctx, nominationID)
}

// ListSaleProducts returns the live listings of a flash sale
func (u *FlashSaleUsecase) ListSaleProducts(ctx context.Context, flashSaleID uuid.UUID) ([]*entities.FlashSaleProduct, error) {
	return u.saleProductRepo.ListBySale(ctx, flashSaleID)
}

// RecordSale counts a purchase against a flash-sale listing. The increment
// is a single guarded statement so concurrent purchases can never oversell
// the stock limit.
func (u *FlashSaleUsecase) RecordSale(ctx context.Context, flashSaleID, productID uuid.UUID, input *entities.RecordSaleInput) (*entities.FlashSaleProduct, error) {
	err := u.saleProductRepo.IncrementSold(ctx, flashSaleID, productID, input.Quantity)
	if err != nil {
		if errors.Is(err, domainerrors.ErrStockLimitReached) {
			return nil, domainerrors.Conflict("Flash sale stock limit reached")
		}
		return nil, err
	}
	metrics.FlashSaleUnits.Add(float64(input.Quantity))
	return u.saleProductRepo.GetBySaleAndProduct(ctx, flashSaleID, productID)
}
