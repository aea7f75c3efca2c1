package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kipubooks/kipu-backend/internal/apperrors"
	"github.com/kipubooks/kipu-backend/internal/core/domain"
	"github.com/kipubooks/kipu-backend/internal/core/ports"
	portsrepo "github.com/kipubooks/kipu-backend/internal/core/ports/repositories"
	portssvc "github.com/kipubooks/kipu-backend/internal/core/ports/services"
	"github.com/kipubooks/kipu-backend/internal/dto"
	"github.com/kipubooks/kipu-backend/internal/platform/storage"
	"github.com/kipubooks/kipu-backend/internal/utils"
)

// userService implements UserSvcFacade: account lifecycle, profile and
// company management, and credential checks.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	files    ports.FileStore
}

// NewUserService creates the user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, files ports.FileStore) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, files: files}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Plan:         "free",
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogError(ctx, err, "failed to register user")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.LogInfo(ctx, "user registered", slog.String("user_id", userID))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Nickname != nil {
		user.Nickname = *req.Nickname
	}
	if req.Plan != nil {
		user.Plan = *req.Plan
	}
	user.LastUpdatedAt = time.Now().UTC()
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateProfile(ctx, *user); err != nil {
		s.LogError(ctx, err, "failed to update profile", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateCompany(ctx context.Context, userID string, req dto.UpdateCompanyRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.RUC != nil {
		user.Company.RUC = *req.RUC
	}
	if req.Name != nil {
		user.Company.Name = *req.Name
	}
	if req.Address != nil {
		user.Company.Address = *req.Address
	}
	user.LastUpdatedAt = time.Now().UTC()
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateCompany(ctx, *user); err != nil {
		s.LogError(ctx, err, "failed to update company", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return user, nil
}

func (s *userService) AttachAvatar(ctx context.Context, userID string, image []byte) (string, error) {
	normalized, err := storage.NormalizeProfileImage(image)
	if err != nil {
		return "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	path, err := s.files.Save(userID, storage.PurposeAvatar, ".jpg", normalized)
	if err != nil {
		s.LogError(ctx, err, "failed to store avatar", slog.String("user_id", userID))
		return "", fmt.Errorf("failed to store avatar: %w", err)
	}

	if err := s.userRepo.SetAvatarPath(ctx, userID, path, time.Now().UTC()); err != nil {
		return "", err
	}
	return path, nil
}

func (s *userService) AttachCompanyLogo(ctx context.Context, userID string, image []byte) (string, error) {
	normalized, err := storage.NormalizeProfileImage(image)
	if err != nil {
		return "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	path, err := s.files.Save(userID, storage.PurposeLogo, ".jpg", normalized)
	if err != nil {
		s.LogError(ctx, err, "failed to store company logo", slog.String("user_id", userID))
		return "", fmt.Errorf("failed to store company logo: %w", err)
	}

	if err := s.userRepo.SetLogoPath(ctx, userID, path, time.Now().UTC()); err != nil {
		return "", err
	}
	return path, nil
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.ClearRefreshToken(ctx, userID)
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user for authentication: %w", err)
	}

	// Accounts created through an external provider have no local credential.
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) FindOrCreateOAuthUser(ctx context.Context, provider domain.AuthProvider, providerUserID, email, name string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderDetails(ctx, provider, providerUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by provider details: %w", err)
	}

	// First sign-in with this identity. An existing account with the same
	// email keeps signing in as itself rather than forking a duplicate.
	user, err = s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	now := time.Now().UTC()
	userID := uuid.NewString()
	newUser := domain.User{
		UserID:         userID,
		Email:          email,
		Name:           name,
		Plan:           "free",
		AuthProvider:   provider,
		ProviderUserID: providerUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "failed to create oauth user")
		return nil, fmt.Errorf("failed to create user from external identity: %w", err)
	}

	s.LogInfo(ctx, "oauth user created", slog.String("user_id", userID), slog.String("provider", string(provider)))
	return &newUser, nil
}
