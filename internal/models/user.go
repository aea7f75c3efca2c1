package models

import (
	"database/sql"
	"time"
)

// User mirrors a row of the users table.
type User struct {
	UserID       string `db:"user_id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Name         string `db:"name"`
	Nickname     string `db:"nickname"`
	Plan         string `db:"plan"`
	AvatarPath   string `db:"avatar_path"`

	AuthProvider   string         `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`

	CompanyRUC     string `db:"company_ruc"`
	CompanyName    string `db:"company_name"`
	CompanyAddress string `db:"company_address"`
	LogoPath       string `db:"logo_path"`

	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
