package repositories

import (
	"context"
	"time"

	"github.com/kipubooks/kipu-backend/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for users.
type UserRepositoryFacade interface {
	// SaveUser inserts a new user. Returns apperrors.ErrDuplicate if the
	// email is already registered.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by ID. Returns apperrors.ErrNotFound if
	// no live row matches.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProviderDetails retrieves a user by external identity.
	FindUserByProviderDetails(ctx context.Context, authProvider domain.AuthProvider, providerUserID string) (*domain.User, error)

	// UpdateProfile updates name, nickname and plan.
	UpdateProfile(ctx context.Context, user domain.User) error

	// UpdateCompany updates the company fields.
	UpdateCompany(ctx context.Context, user domain.User) error

	// SetAvatarPath records the stored avatar file for a user.
	SetAvatarPath(ctx context.Context, userID, path string, updatedAt time.Time) error

	// SetLogoPath records the stored company logo file for a user.
	SetLogoPath(ctx context.Context, userID, path string, updatedAt time.Time) error

	// UpdateRefreshToken stores the hash and expiry of the current refresh token.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken removes the stored refresh token.
	ClearRefreshToken(ctx context.Context, userID string) error
}
