package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}

// ProductRepository defines the product operations the ledger flows need
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entities.Product, error)
	// SetHiddenBySeller hides or unhides every product of a seller
	SetHiddenBySeller(ctx context.Context, sellerID uuid.UUID, hidden bool) error
}

// SettingRepository defines platform setting operations. Getters fall back
// to the supplied default when no row exists.
type SettingRepository interface {
	Get(ctx context.Context, key string) (string, error)
	GetBool(ctx context.Context, key string, def bool) (bool, error)
	GetFloat(ctx context.Context, key string, def float64) (float64, error)
	GetInt(ctx context.Context, key string, def int) (int, error)
	Set(ctx context.Context, key, value string) error
	List(ctx context.Context) ([]*entities.PlatformSetting, error)
}
