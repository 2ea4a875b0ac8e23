package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"fetan/internal/domain/entity"
	"fetan/internal/domain/repository"
	"fetan/internal/infrastructure/auth"
	apperrors "fetan/pkg/errors"
	"fetan/pkg/logger"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
	credRepo repository.CredentialRepository
	tokens   *auth.TokenManager
}

func NewAuthUseCase(userRepo repository.UserRepository, credRepo repository.CredentialRepository, tokens *auth.TokenManager) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		credRepo: credRepo,
		tokens:   tokens,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, apperrors.DuplicateAccount(nil)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperrors.Internal("Failed to hash password", err)
	}

	// The auth identity is created first; plaintext never reaches storage.
	if err := uc.credRepo.Set(ctx, input.Email, hash); err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Role:      input.Role,
		Phone:     input.Phone,
		Avatar:    defaultAvatar(input.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		// Known weak point: the auth identity exists but the profile does
		// not. Surfaced as a warning, not rolled back.
		logger.Warn("profile creation failed after credential creation for %s: %v", input.Email, err)
	}

	token, err := uc.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.Internal("Failed to issue session token", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.InvalidCredentials(err)
	}

	hash, err := uc.credRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.InvalidCredentials(err)
	}
	if err := auth.ComparePassword(hash, password); err != nil {
		return nil, apperrors.InvalidCredentials(err)
	}

	token, err := uc.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.Internal("Failed to issue session token", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

// Logout clears the session unconditionally. Tokens are client-held, so
// there is nothing to revoke server-side.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return nil
}

// GetCurrentUser resolves an authenticated session to a fresh profile.
func (uc *AuthUseCase) GetCurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperrors.NotFound("User", err)
	}
	return user, nil
}

// ResetPassword is fire-and-forget and never confirms whether the email
// exists.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, email string) error {
	if _, err := uc.userRepo.GetByEmail(ctx, email); err != nil {
		logger.Debug("password reset requested for unknown email")
		return nil
	}
	logger.Info("password reset link requested for %s", email)
	return nil
}

func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return apperrors.NotFound("User", err)
	}

	hash, err := uc.credRepo.GetByEmail(ctx, user.Email)
	if err != nil {
		return apperrors.InvalidCredentials(err)
	}
	if err := auth.ComparePassword(hash, currentPassword); err != nil {
		return apperrors.Unauthorized("Current password is incorrect", err)
	}

	newHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.Internal("Failed to hash password", err)
	}
	return uc.credRepo.Set(ctx, user.Email, newHash)
}

func defaultAvatar(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(name))
}
