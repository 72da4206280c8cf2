package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
	domainerrors "github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/errors"
)

func assertAppError(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, message, appErr.Message)
}

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock WalletRepository
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) Create(ctx context.Context, wallet *entities.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Wallet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Wallet), args.Error(1)
}

func (m *MockWalletRepository) Credit(ctx context.Context, walletID uuid.UUID, amount float64) error {
	args := m.Called(ctx, walletID, amount)
	return args.Error(0)
}

func (m *MockWalletRepository) CreditEarning(ctx context.Context, walletID uuid.UUID, amount float64) error {
	args := m.Called(ctx, walletID, amount)
	return args.Error(0)
}

func (m *MockWalletRepository) Debit(ctx context.Context, walletID uuid.UUID, amount float64) error {
	args := m.Called(ctx, walletID, amount)
	return args.Error(0)
}

func (m *MockWalletRepository) DebitWithdrawal(ctx context.Context, walletID uuid.UUID, amount float64) error {
	args := m.Called(ctx, walletID, amount)
	return args.Error(0)
}

// Mock LedgerRepository
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) Create(ctx context.Context, entry *entities.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.LedgerEntry, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.LedgerEntry), args.Get(1).(int64), args.Error(2)
}

// Mock PayoutRepository
type MockPayoutRepository struct {
	mock.Mock
}

func (m *MockPayoutRepository) Create(ctx context.Context, payout *entities.PayoutRequest) error {
	args := m.Called(ctx, payout)
	return args.Error(0)
}

func (m *MockPayoutRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PayoutRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PayoutRequest), args.Error(1)
}

func (m *MockPayoutRepository) HasPending(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPayoutRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.PayoutRequest, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.PayoutRequest), args.Get(1).(int64), args.Error(2)
}

func (m *MockPayoutRepository) ListByStatus(ctx context.Context, status entities.PayoutStatus, limit, offset int) ([]*entities.PayoutRequest, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.PayoutRequest), args.Get(1).(int64), args.Error(2)
}

func (m *MockPayoutRepository) MarkCompleted(ctx context.Context, id uuid.UUID, txRef string, receiptURL null.String, adminID uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, txRef, receiptURL, adminID, at)
	return args.Error(0)
}

func (m *MockPayoutRepository) MarkRejected(ctx context.Context, id uuid.UUID, reason string, adminID uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, reason, adminID, at)
	return args.Error(0)
}

// Mock SubscriptionRepository
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, sub *entities.SellerSubscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.SellerSubscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SellerSubscription), args.Error(1)
}

func (m *MockSubscriptionRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]*entities.SellerSubscription, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.SellerSubscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Update(ctx context.Context, sub *entities.SellerSubscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) UpdatePlan(ctx context.Context, userID uuid.UUID, plan entities.PlanType, nextDeductionAt time.Time) error {
	args := m.Called(ctx, userID, plan, nextDeductionAt)
	return args.Error(0)
}

// Mock DeductionLogRepository
type MockDeductionLogRepository struct {
	mock.Mock
}

func (m *MockDeductionLogRepository) Create(ctx context.Context, log *entities.SubscriptionDeductionLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockDeductionLogRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.SubscriptionDeductionLog, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.SubscriptionDeductionLog), args.Get(1).(int64), args.Error(2)
}

// Mock PlanChangeRepository
type MockPlanChangeRepository struct {
	mock.Mock
}

func (m *MockPlanChangeRepository) Create(ctx context.Context, req *entities.PlanChangeRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockPlanChangeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PlanChangeRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PlanChangeRequest), args.Error(1)
}

func (m *MockPlanChangeRepository) HasPending(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlanChangeRepository) ListPending(ctx context.Context, limit, offset int) ([]*entities.PlanChangeRequest, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.PlanChangeRequest), args.Get(1).(int64), args.Error(2)
}

func (m *MockPlanChangeRepository) Resolve(ctx context.Context, id uuid.UUID, status entities.PlanChangeStatus, adminID uuid.UUID, notes string, at time.Time) error {
	args := m.Called(ctx, id, status, adminID, notes, at)
	return args.Error(0)
}

// Mock DepositRepository
type MockDepositRepository struct {
	mock.Mock
}

func (m *MockDepositRepository) Create(ctx context.Context, deposit *entities.DepositRequest) error {
	args := m.Called(ctx, deposit)
	return args.Error(0)
}

func (m *MockDepositRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.DepositRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DepositRequest), args.Error(1)
}

func (m *MockDepositRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.DepositRequest, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.DepositRequest), args.Get(1).(int64), args.Error(2)
}

func (m *MockDepositRepository) ListByStatus(ctx context.Context, status entities.DepositStatus, limit, offset int) ([]*entities.DepositRequest, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.DepositRequest), args.Get(1).(int64), args.Error(2)
}

func (m *MockDepositRepository) MarkApproved(ctx context.Context, id uuid.UUID, adminID uuid.UUID, notes string, at time.Time) error {
	args := m.Called(ctx, id, adminID, notes, at)
	return args.Error(0)
}

func (m *MockDepositRepository) MarkRejected(ctx context.Context, id uuid.UUID, adminID uuid.UUID, reason string, at time.Time) error {
	args := m.Called(ctx, id, adminID, reason, at)
	return args.Error(0)
}

// Mock PaymentMethodRepository
type MockPaymentMethodRepository struct {
	mock.Mock
}

func (m *MockPaymentMethodRepository) Create(ctx context.Context, method *entities.PaymentMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PaymentMethod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) List(ctx context.Context, activeOnly bool) ([]*entities.PaymentMethod, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) Update(ctx context.Context, method *entities.PaymentMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

// Mock FlashSaleRepository
type MockFlashSaleRepository struct {
	mock.Mock
}

func (m *MockFlashSaleRepository) Create(ctx context.Context, sale *entities.FlashSale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockFlashSaleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.FlashSale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FlashSale), args.Error(1)
}

func (m *MockFlashSaleRepository) List(ctx context.Context, activeOnly bool) ([]*entities.FlashSale, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FlashSale), args.Error(1)
}

// Mock NominationRepository
type MockNominationRepository struct {
	mock.Mock
}

func (m *MockNominationRepository) Create(ctx context.Context, nomination *entities.FlashSaleNomination) error {
	args := m.Called(ctx, nomination)
	return args.Error(0)
}

func (m *MockNominationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.FlashSaleNomination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FlashSaleNomination), args.Error(1)
}

func (m *MockNominationRepository) HasPendingForProduct(ctx context.Context, flashSaleID, productID uuid.UUID) (bool, error) {
	args := m.Called(ctx, flashSaleID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockNominationRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.FlashSaleNomination, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.FlashSaleNomination), args.Get(1).(int64), args.Error(2)
}

func (m *MockNominationRepository) ListByStatus(ctx context.Context, status entities.NominationStatus, limit, offset int) ([]*entities.FlashSaleNomination, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.FlashSaleNomination), args.Get(1).(int64), args.Error(2)
}

func (m *MockNominationRepository) MarkApproved(ctx context.Context, id uuid.UUID, adminID uuid.UUID, notes string, feeDeductedAt time.Time) error {
	args := m.Called(ctx, id, adminID, notes, feeDeductedAt)
	return args.Error(0)
}

func (m *MockNominationRepository) MarkRejected(ctx context.Context, id uuid.UUID, adminID uuid.UUID, notes string, at time.Time) error {
	args := m.Called(ctx, id, adminID, notes, at)
	return args.Error(0)
}

// Mock FlashSaleProductRepository
type MockFlashSaleProductRepository struct {
	mock.Mock
}

func (m *MockFlashSaleProductRepository) Create(ctx context.Context, product *entities.FlashSaleProduct) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockFlashSaleProductRepository) GetBySaleAndProduct(ctx context.Context, flashSaleID, productID uuid.UUID) (*entities.FlashSaleProduct, error) {
	args := m.Called(ctx, flashSaleID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FlashSaleProduct), args.Error(1)
}

func (m *MockFlashSaleProductRepository) ListBySale(ctx context.Context, flashSaleID uuid.UUID) ([]*entities.FlashSaleProduct, error) {
	args := m.Called(ctx, flashSaleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FlashSaleProduct), args.Error(1)
}

func (m *MockFlashSaleProductRepository) IncrementSold(ctx context.Context, flashSaleID, productID uuid.UUID, quantity int) error {
	args := m.Called(ctx, flashSaleID, productID, quantity)
	return args.Error(0)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

// Mock ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entities.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *MockProductRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entities.Product, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Product), args.Error(1)
}

func (m *MockProductRepository) SetHiddenBySeller(ctx context.Context, sellerID uuid.UUID, hidden bool) error {
	args := m.Called(ctx, sellerID, hidden)
	return args.Error(0)
}

// Mock SettingRepository
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockSettingRepository) GetBool(ctx context.Context, key string, def bool) (bool, error) {
	args := m.Called(ctx, key, def)
	return args.Bool(0), args.Error(1)
}

func (m *MockSettingRepository) GetFloat(ctx context.Context, key string, def float64) (float64, error) {
	args := m.Called(ctx, key, def)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockSettingRepository) GetInt(ctx context.Context, key string, def int) (int, error) {
	args := m.Called(ctx, key, def)
	return args.Int(0), args.Error(1)
}

func (m *MockSettingRepository) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockSettingRepository) List(ctx context.Context) ([]*entities.PlatformSetting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PlatformSetting), args.Error(1)
}

// Mock DepositMailer
type MockDepositMailer struct {
	mock.Mock
}

func (m *MockDepositMailer) SendDepositApproved(ctx context.Context, to, name string, amount float64) error {
	args := m.Called(ctx, to, name, amount)
	return args.Error(0)
}

// Mock FeeSettler
type MockFeeSettler struct {
	mock.Mock
}

func (m *MockFeeSettler) SettleOutstanding(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
