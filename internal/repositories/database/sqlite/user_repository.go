package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kipubooks/kipu-backend/internal/apperrors"
	"github.com/kipubooks/kipu-backend/internal/core/domain"
	portsrepo "github.com/kipubooks/kipu-backend/internal/core/ports/repositories"
	"github.com/kipubooks/kipu-backend/internal/models"
)

type SQLiteUserRepository struct {
	BaseRepository
}

func newSQLiteUserRepository(db *sqlx.DB) portsrepo.UserRepositoryFacade {
	return &SQLiteUserRepository{BaseRepository{DB: db}}
}

// Ensure SQLiteUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*SQLiteUserRepository)(nil)

const userColumns = `
	user_id, email, password_hash, name, nickname, plan, avatar_path,
	auth_provider, provider_user_id,
	company_ruc, company_name, company_address, logo_path,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at,
	refresh_token_hash, refresh_token_expiry_time
`

// Helper to convert domain.User to models.User
func toModelUser(d domain.User) models.User {
	m := models.User{
		UserID:         d.UserID,
		Email:          d.Email,
		PasswordHash:   d.PasswordHash,
		Name:           d.Name,
		Nickname:       d.Nickname,
		Plan:           d.Plan,
		AvatarPath:     d.AvatarPath,
		AuthProvider:   string(d.AuthProvider),
		CompanyRUC:     d.Company.RUC,
		CompanyName:    d.Company.Name,
		CompanyAddress: d.Company.Address,
		LogoPath:       d.Company.LogoPath,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
		DeletedAt: d.DeletedAt,
	}
	if d.ProviderUserID != "" {
		m.ProviderUserID = sql.NullString{String: d.ProviderUserID, Valid: true}
	}
	if d.RefreshTokenHash != "" {
		m.RefreshTokenHash = sql.NullString{String: d.RefreshTokenHash, Valid: true}
	}
	if d.RefreshTokenExpiryTime != nil {
		m.RefreshTokenExpiryTime = sql.NullTime{Time: *d.RefreshTokenExpiryTime, Valid: true}
	}
	return m
}

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:       m.UserID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		Nickname:     m.Nickname,
		Plan:         m.Plan,
		AvatarPath:   m.AvatarPath,
		AuthProvider: domain.AuthProvider(m.AuthProvider),
		Company: domain.Company{
			RUC:      m.CompanyRUC,
			Name:     m.CompanyName,
			Address:  m.CompanyAddress,
			LogoPath: m.LogoPath,
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
		DeletedAt: m.DeletedAt,
	}
	if m.ProviderUserID.Valid {
		d.ProviderUserID = m.ProviderUserID.String
	}
	if m.RefreshTokenHash.Valid {
		d.RefreshTokenHash = m.RefreshTokenHash.String
	}
	if m.RefreshTokenExpiryTime.Valid {
		t := m.RefreshTokenExpiryTime.Time
		d.RefreshTokenExpiryTime = &t
	}
	return d
}

func (r *SQLiteUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)
	query := `
		INSERT INTO users (
			user_id, email, password_hash, name, nickname, plan, avatar_path,
			auth_provider, provider_user_id,
			company_ruc, company_name, company_address, logo_path,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.DB.ExecContext(ctx, query,
		m.UserID, m.Email, m.PasswordHash, m.Name, m.Nickname, m.Plan, m.AvatarPath,
		m.AuthProvider, m.ProviderUserID,
		m.CompanyRUC, m.CompanyName, m.CompanyAddress, m.LogoPath,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email %s already registered: %w", user.Email, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = ? AND deleted_at IS NULL;`
	var m models.User
	if err := r.DB.GetContext(ctx, &m, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	d := toDomainUser(m)
	return &d, nil
}

func (r *SQLiteUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ? AND deleted_at IS NULL;`
	var m models.User
	if err := r.DB.GetContext(ctx, &m, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	d := toDomainUser(m)
	return &d, nil
}

func (r *SQLiteUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE auth_provider = ? AND provider_user_id = ? AND deleted_at IS NULL;`
	var m models.User
	if err := r.DB.GetContext(ctx, &m, query, string(authProvider), providerUserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by provider details: %w", err)
	}
	d := toDomainUser(m)
	return &d, nil
}

func (r *SQLiteUserRepository) UpdateProfile(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET name = ?, nickname = ?, plan = ?, last_updated_at = ?, last_updated_by = ?
		WHERE user_id = ? AND deleted_at IS NULL;
	`
	res, err := r.DB.ExecContext(ctx, query,
		user.Name, user.Nickname, user.Plan, user.LastUpdatedAt, user.LastUpdatedBy, user.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user profile: %w", err)
	}
	return requireRowsAffected(res, "user")
}

func (r *SQLiteUserRepository) UpdateCompany(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET company_ruc = ?, company_name = ?, company_address = ?, last_updated_at = ?, last_updated_by = ?
		WHERE user_id = ? AND deleted_at IS NULL;
	`
	res, err := r.DB.ExecContext(ctx, query,
		user.Company.RUC, user.Company.Name, user.Company.Address,
		user.LastUpdatedAt, user.LastUpdatedBy, user.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user company: %w", err)
	}
	return requireRowsAffected(res, "user")
}

func (r *SQLiteUserRepository) SetAvatarPath(ctx context.Context, userID, path string, updatedAt time.Time) error {
	query := `UPDATE users SET avatar_path = ?, last_updated_at = ?, last_updated_by = ? WHERE user_id = ? AND deleted_at IS NULL;`
	res, err := r.DB.ExecContext(ctx, query, path, updatedAt, userID, userID)
	if err != nil {
		return fmt.Errorf("failed to set avatar path: %w", err)
	}
	return requireRowsAffected(res, "user")
}

func (r *SQLiteUserRepository) SetLogoPath(ctx context.Context, userID, path string, updatedAt time.Time) error {
	query := `UPDATE users SET logo_path = ?, last_updated_at = ?, last_updated_by = ? WHERE user_id = ? AND deleted_at IS NULL;`
	res, err := r.DB.ExecContext(ctx, query, path, updatedAt, userID, userID)
	if err != nil {
		return fmt.Errorf("failed to set logo path: %w", err)
	}
	return requireRowsAffected(res, "user")
}

func (r *SQLiteUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	query := `UPDATE users SET refresh_token_hash = ?, refresh_token_expiry_time = ? WHERE user_id = ? AND deleted_at IS NULL;`
	res, err := r.DB.ExecContext(ctx, query, refreshTokenHash, refreshTokenExpiryTime, userID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	return requireRowsAffected(res, "user")
}

func (r *SQLiteUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	query := `UPDATE users SET refresh_token_hash = NULL, refresh_token_expiry_time = NULL WHERE user_id = ? AND deleted_at IS NULL;`
	res, err := r.DB.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return requireRowsAffected(res, "user")
}

// requireRowsAffected maps a zero-row update to ErrNotFound.
func requireRowsAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s not found or already deleted: %w", entity, apperrors.ErrNotFound)
	}
	return nil
}
