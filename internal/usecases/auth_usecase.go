package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/entities"
	domainerrors "github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/errors"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/repositories"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/crypto"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/jwt"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/logger"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/utils"
)

// SubscriptionProvisioner sets up billing state for a new seller
type SubscriptionProvisioner interface {
	EnsureSubscription(ctx context.Context, userID uuid.UUID) (*entities.SellerSubscription, error)
}

// AuthResponse bundles the user and their tokens after login or registration
type AuthResponse struct {
	User   *entities.User `json:"user"`
	Tokens *jwt.TokenPair `json:"tokens"`
}

// AuthUsecase handles registration, login and identity lookups
type AuthUsecase struct {
	userRepo    repositories.UserRepository
	jwtService  *jwt.JWTService
	provisioner SubscriptionProvisioner
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService, provisioner SubscriptionProvisioner) *AuthUsecase {
	return &AuthUsecase{
		userRepo:    userRepo,
		jwtService:  jwtService,
		provisioner: provisioner,
	}
}

// Register creates an account. New sellers get their subscription created
// here so the free period starts at signup.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.Conflict("An account with this email already exists")
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Email:        email,
		Name:         input.Name,
		Role:         entities.UserRole(input.Role),
		PasswordHash: hash,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if user.Role == entities.UserRoleSeller {
		if _, err := u.provisioner.EnsureSubscription(ctx, user.ID); err != nil {
			logger.Error(ctx, "failed to provision seller subscription",
				zap.String("user_id", user.ID.String()), zap.Error(err))
		}
	}

	tokens, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: user, Tokens: tokens}, nil
}

// Login authenticates by email and password
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("Invalid email or password")
		}
		return nil, err
	}
	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.Unauthorized("Invalid email or password")
	}

	tokens, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: user, Tokens: tokens}, nil
}

// GetMe returns the authenticated user's profile
func (u *AuthUsecase) GetMe(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}
