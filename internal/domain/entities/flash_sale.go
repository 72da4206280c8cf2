package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// MinFlashSaleDiscount is the minimum discount fraction a nomination must
// offer relative to the original price
const MinFlashSaleDiscount = 0.20

// FlashSale is a time-boxed discount event sellers can nominate products into
type FlashSale struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Title     string    `json:"title" gorm:"not null"`
	StartsAt  time.Time `json:"startsAt" gorm:"not null"`
	EndsAt    time.Time `json:"endsAt" gorm:"not null"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NominationStatus represents the state of a flash-sale nomination
type NominationStatus string

const (
	NominationStatusPending  NominationStatus = "pending"
	NominationStatusApproved NominationStatus = "approved"
	NominationStatusRejected NominationStatus = "rejected"
)

// FlashSaleNomination is a seller's proposal to list a product at a
// discounted price for a flash sale. The listing fee is deducted only on
// admin approval.
type FlashSaleNomination struct {
	ID            uuid.UUID        `json:"id" gorm:"type:uuid;primary_key"`
	UserID        uuid.UUID        `json:"userId" gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID        `json:"productId" gorm:"type:uuid;not null;index"`
	FlashSaleID   uuid.UUID        `json:"flashSaleId" gorm:"type:uuid;not null;index"`
	ProposedPrice float64          `json:"proposedPrice" gorm:"type:decimal(12,2);not null"`
	OriginalPrice float64          `json:"originalPrice" gorm:"type:decimal(12,2);not null"`
	StockLimit    int              `json:"stockLimit" gorm:"not null"`
	TimeSlot      string           `json:"timeSlot"`
	Status        NominationStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	AdminNotes    null.String      `json:"adminNotes,omitempty"`
	TotalFee      float64          `json:"totalFee" gorm:"type:decimal(12,2);not null"`
	FeeDeducted   bool             `json:"feeDeducted" gorm:"default:false"`
	FeeDeductedAt *time.Time       `json:"feeDeductedAt,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// DiscountFraction returns the offered discount relative to the original
// price (0.15 for a 15% discount)
func (n *FlashSaleNomination) DiscountFraction() float64 {
	if n.OriginalPrice <= 0 {
		return 0
	}
	return 1 - n.ProposedPrice/n.OriginalPrice
}

// FlashSaleProduct is an approved, live flash-sale listing. SoldCount is
// incremented atomically per purchase and never read-then-written.
type FlashSaleProduct struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	FlashSaleID uuid.UUID `json:"flashSaleId" gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `json:"productId" gorm:"type:uuid;not null;index"`
	SellerID    uuid.UUID `json:"sellerId" gorm:"type:uuid;not null"`
	Price       float64   `json:"price" gorm:"type:decimal(12,2);not null"`
	StockLimit  int       `json:"stockLimit" gorm:"not null"`
	SoldCount   int       `json:"soldCount" gorm:"default:0"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateNominationInput represents input for nominating a product
type CreateNominationInput struct {
	ProductID     string  `json:"productId" binding:"required,uuid"`
	ProposedPrice float64 `json:"proposedPrice" binding:"required,gt=0"`
	OriginalPrice float64 `json:"originalPrice" binding:"required,gt=0"`
	StockLimit    int     `json:"stockLimit" binding:"required,gt=0"`
	TimeSlot      string  `json:"timeSlot"`
	TotalFee      float64 `json:"totalFee" binding:"required,gt=0"`
}

// ReviewNominationInput represents admin input when resolving a nomination
type ReviewNominationInput struct {
	AdminNotes string `json:"adminNotes"`
}

// FlashSaleInput represents admin input for creating a flash sale
type FlashSaleInput struct {
	Title    string    `json:"title" binding:"required"`
	StartsAt time.Time `json:"startsAt" binding:"required"`
	EndsAt   time.Time `json:"endsAt" binding:"required"`
}

// RecordSaleInput represents a purchase against a flash-sale listing
type RecordSaleInput struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}
