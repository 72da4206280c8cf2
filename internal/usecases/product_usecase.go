package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/repositories"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/utils"
)

// ProductUsecase handles the seller catalog operations the billing and
// flash-sale flows depend on
type ProductUsecase struct {
	productRepo repositories.ProductRepository
}

// NewProductUsecase creates a new product usecase
func NewProductUsecase(productRepo repositories.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// Create adds a product to the seller's catalog
func (u *ProductUsecase) Create(ctx context.Context, sellerID uuid.UUID, input *entities.ProductInput) (*entities.Product, error) {
	product := &entities.Product{
		ID:       utils.GenerateUUIDv7(),
		SellerID: sellerID,
		Name:     input.Name,
		Price:    utils.RoundMoney(input.Price),
	}
	if err := u.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// ListBySeller returns the seller's products, hidden ones included
func (u *ProductUsecase) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entities.Product, error) {
	return u.productRepo.ListBySeller(ctx, sellerID)
}
