package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kipubooks/kipu-backend/internal/apperrors"
	"github.com/kipubooks/kipu-backend/internal/core/domain"
	portssvc "github.com/kipubooks/kipu-backend/internal/core/ports/services"
	"github.com/kipubooks/kipu-backend/internal/dto"
	"github.com/kipubooks/kipu-backend/internal/handlers"
	"github.com/kipubooks/kipu-backend/internal/platform/config"
	"github.com/kipubooks/kipu-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateCompany(ctx context.Context, userID string, req dto.UpdateCompanyRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) AttachAvatar(ctx context.Context, userID string, image []byte) (string, error) {
	args := m.Called(ctx, userID, image)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) AttachCompanyLogo(ctx context.Context, userID string, image []byte) (string, error) {
	args := m.Called(ctx, userID, image)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserService) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) FindOrCreateOAuthUser(ctx context.Context, provider domain.AuthProvider, providerUserID, email, name string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID, email, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error) {
	args := m.Called(ctx, userID, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

func (m *MockGoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idToken string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

var _ portssvc.GoogleOAuthSvcFacade = (*MockGoogleOAuthService)(nil)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockUserService  *MockUserService
	mockTokenService *MockTokenService
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockUserService = new(MockUserService)
	suite.mockTokenService = new(MockTokenService)

	cfg := &config.Config{
		JWTSecret:    "test-secret-key-that-is-long-enough",
		IsProduction: true,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		User:        suite.mockUserService,
		Token:       suite.mockTokenService,
		GoogleOAuth: new(MockGoogleOAuthService),
	})
}

func (suite *AuthHandlerTestSuite) postJSON(url string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleUser() *domain.User {
	return &domain.User{
		UserID:       uuid.NewString(),
		Email:        "maria@example.com",
		PasswordHash: "irrelevant-for-handler-tests",
		Name:         "Maria Quispe",
		Plan:         "free",
		AuthProvider: domain.ProviderLocal,
	}
}

// --- Test Cases ---

func (suite *AuthHandlerTestSuite) TestRegister_CreatesUser() {
	user := sampleUser()

	suite.mockUserService.On("RegisterUser",
		mock.Anything,
		mock.MatchedBy(func(req dto.RegisterRequest) bool {
			return req.Email == "maria@example.com" && req.Name == "Maria Quispe"
		}),
	).Return(user, nil).Once()

	w := suite.postJSON("/api/v1/auth/register", gin.H{
		"name":     "Maria Quispe",
		"email":    "maria@example.com",
		"password": "hunter2hunter2",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(user.UserID, resp.UserID)
	suite.Equal("free", resp.Plan)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRegister_DuplicateEmailConflicts() {
	suite.mockUserService.On("RegisterUser", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.postJSON("/api/v1/auth/register", gin.H{
		"name":     "Maria Quispe",
		"email":    "maria@example.com",
		"password": "hunter2hunter2",
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *AuthHandlerTestSuite) TestRegister_ShortPasswordIsBadRequest() {
	w := suite.postJSON("/api/v1/auth/register", gin.H{
		"name":     "Maria Quispe",
		"email":    "maria@example.com",
		"password": "short",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "RegisterUser")
}

func (suite *AuthHandlerTestSuite) TestLogin_ReturnsTokenPair() {
	user := sampleUser()
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)
	refreshExpiry := time.Now().Add(7 * 24 * time.Hour)

	suite.mockUserService.On("AuthenticateUser", mock.Anything, "maria@example.com", "hunter2hunter2").
		Return(user, nil).Once()
	suite.mockUserService.On("GetUserByID", mock.Anything, user.UserID).
		Return(user, nil).Once()
	suite.mockTokenService.On("GenerateAccessToken", mock.Anything, user).
		Return("signed-jwt", expiresAt, nil).Once()
	suite.mockTokenService.On("GenerateRefreshToken", mock.Anything, user).
		Return("raw-refresh-token", refreshExpiry, nil).Once()
	// The handler stores the hash, never the raw token.
	suite.mockUserService.On("UpdateRefreshToken",
		mock.Anything, user.UserID, utils.HashRefreshToken("raw-refresh-token"), refreshExpiry,
	).Return(nil).Once()

	w := suite.postJSON("/api/v1/auth/login", gin.H{
		"email":    "maria@example.com",
		"password": "hunter2hunter2",
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed-jwt", resp.Token)
	suite.Equal("raw-refresh-token", resp.RefreshToken)
	suite.Equal(user.Email, resp.User.Email)
	suite.mockUserService.AssertExpectations(suite.T())
	suite.mockTokenService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_BadCredentialsIsUnauthorized() {
	suite.mockUserService.On("AuthenticateUser", mock.Anything, "maria@example.com", "wrong").
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.postJSON("/api/v1/auth/login", gin.H{
		"email":    "maria@example.com",
		"password": "wrong",
	})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTokenService.AssertNotCalled(suite.T(), "GenerateAccessToken")
}

func (suite *AuthHandlerTestSuite) TestRefresh_RotatesTokens() {
	user := sampleUser()
	expiresAt := time.Now().Add(time.Hour)
	refreshExpiry := time.Now().Add(7 * 24 * time.Hour)

	suite.mockTokenService.On("ValidateAndParseRefreshToken", mock.Anything, user.UserID, "old-refresh-token").
		Return(user, nil).Once()
	suite.mockUserService.On("GetUserByID", mock.Anything, user.UserID).
		Return(user, nil).Once()
	suite.mockTokenService.On("GenerateAccessToken", mock.Anything, user).
		Return("new-jwt", expiresAt, nil).Once()
	suite.mockTokenService.On("GenerateRefreshToken", mock.Anything, user).
		Return("new-refresh-token", refreshExpiry, nil).Once()
	suite.mockUserService.On("UpdateRefreshToken",
		mock.Anything, user.UserID, utils.HashRefreshToken("new-refresh-token"), refreshExpiry,
	).Return(nil).Once()

	w := suite.postJSON("/api/v1/auth/refresh", gin.H{
		"userID":       user.UserID,
		"refreshToken": "old-refresh-token",
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("new-refresh-token", resp.RefreshToken)
	suite.mockTokenService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRefresh_ExpiredTokenIsUnauthorized() {
	userID := uuid.NewString()
	suite.mockTokenService.On("ValidateAndParseRefreshToken", mock.Anything, userID, "stale-token").
		Return(nil, apperrors.ErrRefreshTokenExpired).Once()

	w := suite.postJSON("/api/v1/auth/refresh", gin.H{
		"userID":       userID,
		"refreshToken": "stale-token",
	})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "GetUserByID")
}

func (suite *AuthHandlerTestSuite) TestLogout_ClearsRefreshToken() {
	user := sampleUser()

	suite.mockTokenService.On("ValidateAndParseRefreshToken", mock.Anything, user.UserID, "raw-refresh-token").
		Return(user, nil).Once()
	suite.mockUserService.On("ClearRefreshToken", mock.Anything, user.UserID).
		Return(nil).Once()

	w := suite.postJSON("/api/v1/auth/logout", gin.H{
		"userID":       user.UserID,
		"refreshToken": "raw-refresh-token",
	})

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogout_InvalidTokenDoesNotClear() {
	userID := uuid.NewString()
	suite.mockTokenService.On("ValidateAndParseRefreshToken", mock.Anything, userID, "forged").
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.postJSON("/api/v1/auth/logout", gin.H{
		"userID":       userID,
		"refreshToken": "forged",
	})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "ClearRefreshToken")
}

// --- Run Test Suite ---
func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
