package dto

import (
	"time"

	"github.com/kipubooks/kipu-backend/internal/core/domain"
)

// UpdateProfileRequest defines the data allowed for a profile update.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Nickname *string `json:"nickname"`
	Plan     *string `json:"plan" binding:"omitempty,oneof=free pro"`
}

// UpdateCompanyRequest defines the data allowed for a company update.
type UpdateCompanyRequest struct {
	RUC     *string `json:"ruc" binding:"omitempty,len=11,numeric"`
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

// CompanyResponse is the API shape of a user's company.
type CompanyResponse struct {
	RUC      string `json:"ruc"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	LogoPath string `json:"logoPath,omitempty"`
}

// UserResponse is the API shape of a user.
type UserResponse struct {
	UserID     string          `json:"userID"`
	Email      string          `json:"email"`
	Name       string          `json:"name"`
	Nickname   string          `json:"nickname,omitempty"`
	Plan       string          `json:"plan"`
	AvatarPath string          `json:"avatarPath,omitempty"`
	Company    CompanyResponse `json:"company"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its API shape.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:     u.UserID,
		Email:      u.Email,
		Name:       u.Name,
		Nickname:   u.Nickname,
		Plan:       u.Plan,
		AvatarPath: u.AvatarPath,
		Company: CompanyResponse{
			RUC:      u.Company.RUC,
			Name:     u.Company.Name,
			Address:  u.Company.Address,
			LogoPath: u.Company.LogoPath,
		},
		CreatedAt: u.CreatedAt,
	}
}

// FileResponse acknowledges an upload with the stored relative path.
type FileResponse struct {
	Path string `json:"path"`
}
