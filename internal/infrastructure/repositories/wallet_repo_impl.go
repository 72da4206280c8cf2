package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
	domainerrors "github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/errors"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/utils"
)

// WalletRepository implements wallet data operations
type WalletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// Create creates a new wallet
func (r *WalletRepository) Create(ctx context.Context, wallet *entities.Wallet) error {
	if wallet.ID == uuid.Nil {
		wallet.ID = utils.GenerateUUIDv7()
	}
	wallet.CreatedAt = time.Now()
	wallet.UpdatedAt = wallet.CreatedAt

	return GetDB(ctx, r.db).WithContext(ctx).Create(wallet).Error
}

// GetByID gets a wallet by ID
func (r *WalletRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Wallet, error) {
	var wallet entities.Wallet
	err := GetDB(ctx, r.db).WithContext(ctx).First(&wallet, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// GetByUserID gets the wallet owned by a user
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	var wallet entities.Wallet
	err := GetDB(ctx, r.db).WithContext(ctx).First(&wallet, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// Credit adds amount to the current balance
func (r *WalletRepository) Credit(ctx context.Context, walletID uuid.UUID, amount float64) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&entities.Wallet{}).
		Where("id = ?", walletID).
		Updates(map[string]interface{}{
			"current_balance": gorm.Expr("current_balance + ?", amount),
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CreditEarning adds amount to both the balance and total earnings
func (r *WalletRepository) CreditEarning(ctx context.Context, walletID uuid.UUID, amount float64) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&entities.Wallet{}).
		Where("id = ?", walletID).
		Updates(map[string]interface{}{
			"current_balance": gorm.Expr("current_balance + ?", amount),
			"total_earnings":  gorm.Expr("total_earnings + ?", amount),
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Debit subtracts amount from the balance. The WHERE guard makes the
// sufficiency check and the subtraction one atomic statement.
func (r *WalletRepository) Debit(ctx context.Context, walletID uuid.UUID, amount float64) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&entities.Wallet{}).
		Where("id = ? AND current_balance >= ?", walletID, amount).
		Updates(map[string]interface{}{
			"current_balance": gorm.Expr("current_balance - ?", amount),
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInsufficientFunds
	}
	return nil
}

// DebitWithdrawal subtracts amount from the balance and adds it to total
// withdrawn, guarded the same way as Debit
func (r *WalletRepository) DebitWithdrawal(ctx context.Context, walletID uuid.UUID, amount float64) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&entities.Wallet{}).
		Where("id = ? AND current_balance >= ?", walletID, amount).
		Updates(map[string]interface{}{
			"current_balance": gorm.Expr("current_balance - ?", amount),
			"total_withdrawn": gorm.Expr("total_withdrawn + ?", amount),
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInsufficientFunds
	}
	return nil
}
