package services

import (
	"context"
	"time"

	"github.com/kipubooks/kipu-backend/internal/core/domain"
	"github.com/kipubooks/kipu-backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a new local account with a hashed credential.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// UpdateProfile updates name, nickname and plan for the given user.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)

	// UpdateCompany updates the company fields for the given user.
	UpdateCompany(ctx context.Context, userID string, req dto.UpdateCompanyRequest) (*domain.User, error)

	// AttachAvatar stores an avatar image and records its path.
	AttachAvatar(ctx context.Context, userID string, image []byte) (string, error)

	// AttachCompanyLogo stores a company logo and records its path.
	AttachCompanyLogo(ctx context.Context, userID string, image []byte) (string, error)

	// UpdateRefreshToken updates the refresh token details for a user.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken clears the refresh token for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser verifies email and password. A mismatch returns
	// apperrors.ErrUnauthorized, never a partial result.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// FindOrCreateOAuthUser returns the account linked to the external
	// identity, creating it on first sign-in.
	FindOrCreateOAuthUser(ctx context.Context, provider domain.AuthProvider, providerUserID, email, name string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
