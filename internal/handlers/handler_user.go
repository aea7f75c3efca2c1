package handlers

import (
	"net/http"

	portssvc "github.com/kipubooks/kipu-backend/internal/core/ports/services"
	"github.com/kipubooks/kipu-backend/internal/dto"
	"github.com/kipubooks/kipu-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests related to the authenticated user.
type UserHandler struct {
	userService portssvc.UserSvcFacade
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us portssvc.UserSvcFacade) *UserHandler {
	return &UserHandler{userService: us}
}

// registerUserRoutes sets up the profile routes. Every route operates on the
// token's user; there is no way to address someone else's account.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := NewUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("/me", h.GetMe)
		users.PUT("/me", h.UpdateProfile)
		users.PUT("/me/company", h.UpdateCompany)
		users.POST("/me/avatar", h.UploadAvatar)
		users.POST("/me/company/logo", h.UploadCompanyLogo)
	}
}

// GetMe godoc
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateCompany godoc
// @Summary Update the authenticated user's company details
// @Tags users
// @Accept json
// @Produce json
// @Param company body dto.UpdateCompanyRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me/company [put]
func (h *UserHandler) UpdateCompany(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateCompany(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to update company")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UploadAvatar godoc
// @Summary Upload the authenticated user's avatar
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Avatar image"
// @Success 200 {object} dto.FileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me/avatar [post]
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	data, err := readUploadedImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Image file required: " + err.Error()})
		return
	}

	path, err := h.userService.AttachAvatar(c.Request.Context(), userID, data)
	if err != nil {
		respondError(c, err, "Failed to store avatar")
		return
	}
	c.JSON(http.StatusOK, dto.FileResponse{Path: path})
}

// UploadCompanyLogo godoc
// @Summary Upload the authenticated user's company logo
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Logo image"
// @Success 200 {object} dto.FileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me/company/logo [post]
func (h *UserHandler) UploadCompanyLogo(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	data, err := readUploadedImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Image file required: " + err.Error()})
		return
	}

	path, err := h.userService.AttachCompanyLogo(c.Request.Context(), userID, data)
	if err != nil {
		respondError(c, err, "Failed to store company logo")
		return
	}
	c.JSON(http.StatusOK, dto.FileResponse{Path: path})
}
