package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE,
		name TEXT,
		role TEXT,
		password_hash TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createWalletTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE wallets (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		current_balance REAL DEFAULT 0,
		total_earnings REAL DEFAULT 0,
		total_withdrawn REAL DEFAULT 0,
		pending_clearance REAL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createLedgerTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE ledger_entries (
		id TEXT PRIMARY KEY,
		wallet_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		order_id TEXT,
		type TEXT NOT NULL,
		gross_amount REAL,
		commission_amount REAL,
		commission_percentage REAL,
		net_amount REAL,
		description TEXT,
		created_at DATETIME
	);`)
}

func createPayoutTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE payout_requests (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		wallet_id TEXT NOT NULL,
		amount REAL NOT NULL,
		bank_name TEXT NOT NULL,
		account_title TEXT NOT NULL,
		iban TEXT NOT NULL,
		status TEXT NOT NULL,
		transaction_reference TEXT,
		admin_notes TEXT,
		processed_by TEXT,
		processed_at DATETIME,
		receipt_url TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createSubscriptionTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE seller_subscriptions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		plan_type TEXT NOT NULL,
		custom_daily_fee REAL,
		last_deduction_at DATETIME,
		next_deduction_at DATETIME,
		is_active BOOLEAN DEFAULT 1,
		payment_pending BOOLEAN DEFAULT 0,
		pending_amount REAL DEFAULT 0,
		total_fees_paid REAL DEFAULT 0,
		free_months INTEGER DEFAULT 0,
		free_period_start DATETIME,
		free_period_end DATETIME,
		is_in_free_period BOOLEAN DEFAULT 0,
		account_suspended BOOLEAN DEFAULT 0,
		suspended_at DATETIME,
		reactivated_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE subscription_deduction_logs (
		id TEXT PRIMARY KEY,
		subscription_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		amount REAL,
		deduction_type TEXT,
		status TEXT NOT NULL,
		failure_reason TEXT,
		wallet_balance_before REAL,
		wallet_balance_after REAL,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE plan_change_requests (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		current_plan TEXT NOT NULL,
		requested_plan TEXT NOT NULL,
		status TEXT NOT NULL,
		admin_notes TEXT,
		processed_by TEXT,
		processed_at DATETIME,
		created_at DATETIME
	);`)
}

func createDepositTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE deposit_requests (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		requester_type TEXT NOT NULL,
		payment_method_id TEXT NOT NULL,
		amount REAL NOT NULL,
		screenshot_url TEXT NOT NULL,
		transaction_reference TEXT,
		status TEXT NOT NULL,
		admin_notes TEXT,
		processed_by TEXT,
		processed_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE payment_methods (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		account_title TEXT NOT NULL,
		account_number TEXT NOT NULL,
		instructions TEXT,
		is_active BOOLEAN DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createProductTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE products (
		id TEXT PRIMARY KEY,
		seller_id TEXT NOT NULL,
		name TEXT NOT NULL,
		price REAL NOT NULL,
		is_hidden BOOLEAN DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createFlashSaleTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE flash_sales (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		starts_at DATETIME NOT NULL,
		ends_at DATETIME NOT NULL,
		is_active BOOLEAN DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE flash_sale_nominations (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		flash_sale_id TEXT NOT NULL,
		proposed_price REAL NOT NULL,
		original_price REAL NOT NULL,
		stock_limit INTEGER NOT NULL,
		time_slot TEXT,
		status TEXT NOT NULL,
		admin_notes TEXT,
		total_fee REAL NOT NULL,
		fee_deducted BOOLEAN DEFAULT 0,
		fee_deducted_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE flash_sale_products (
		id TEXT PRIMARY KEY,
		flash_sale_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		seller_id TEXT NOT NULL,
		price REAL NOT NULL,
		stock_limit INTEGER NOT NULL,
		sold_count INTEGER DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createSettingTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE platform_settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME
	);`)
}
