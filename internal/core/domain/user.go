package domain

import "time"

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	// ProviderLocal is email + password authentication.
	ProviderLocal AuthProvider = "local"
	// ProviderGoogle is Google sign-in.
	ProviderGoogle AuthProvider = "google"
)

// Company holds the billing identity a user issues documents under.
type Company struct {
	RUC      string `json:"ruc"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	LogoPath string `json:"logoPath,omitempty"`
}

// User represents an account holder in the domain.
type User struct {
	UserID       string       `json:"userID"` // UUID
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // empty for pure OAuth accounts
	Name         string       `json:"name"`
	Nickname     string       `json:"nickname,omitempty"`
	Plan         string       `json:"plan"`
	AvatarPath   string       `json:"avatarPath,omitempty"`
	AuthProvider AuthProvider `json:"authProvider"`
	// ProviderUserID is the subject claim from the external identity provider.
	ProviderUserID string  `json:"-"`
	Company        Company `json:"company"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}

// GoogleUserInfo is the subset of the Google userinfo/ID-token payload the
// application cares about.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
