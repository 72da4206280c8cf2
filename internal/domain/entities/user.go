package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents a user role
type UserRole string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleSeller   UserRole = "seller"
	UserRoleAdmin    UserRole = "admin"
)

// User represents a marketplace account
type User struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	Name         string     `json:"name"`
	Role         UserRole   `json:"role" gorm:"type:varchar(20);not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"-" gorm:"index"`
}

// RegisterInput represents input for account registration
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=customer seller"`
}

// LoginInput represents input for login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
