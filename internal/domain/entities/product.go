package entities

import (
	"time"

	"github.com/google/uuid"
)

// Product is a seller listing. Only the fields the ledger and flash-sale
// flows need; catalog details live elsewhere.
type Product struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	SellerID  uuid.UUID  `json:"sellerId" gorm:"type:uuid;not null;index"`
	Name      string     `json:"name" gorm:"not null"`
	Price     float64    `json:"price" gorm:"type:decimal(12,2);not null"`
	IsHidden  bool       `json:"isHidden" gorm:"default:false"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"-" gorm:"index"`
}

// ProductInput represents input for creating a product
type ProductInput struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required,gt=0"`
}
