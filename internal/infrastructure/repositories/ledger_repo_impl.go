package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/utils"
)

// LedgerRepository implements append-only ledger operations
type LedgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Create appends a ledger entry. Entries are immutable once written; there
// is deliberately no Update or Delete.
func (r *LedgerRepository) Create(ctx context.Context, entry *entities.LedgerEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = utils.GenerateUUIDv7()
	}
	entry.CreatedAt = time.Now()

	return GetDB(ctx, r.db).WithContext(ctx).Create(entry).Error
}

// ListByUserID returns entries for a user, newest first
func (r *LedgerRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.LedgerEntry, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&entities.LedgerEntry{}).Where("user_id = ?", userID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var entries []*entities.LedgerEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
