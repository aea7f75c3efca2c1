package services

import (
	"context"
	"time"

	"github.com/kipubooks/kipu-backend/internal/core/domain"
	"github.com/kipubooks/kipu-backend/internal/platform/storage"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, authProvider, providerUserID)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateCompany(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SetAvatarPath(ctx context.Context, userID, path string, updatedAt time.Time) error {
	args := m.Called(ctx, userID, path, updatedAt)
	return args.Error(0)
}

func (m *MockUserRepository) SetLogoPath(ctx context.Context, userID, path string, updatedAt time.Time) error {
	args := m.Called(ctx, userID, path, updatedAt)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockReceiptRepository struct {
	mock.Mock
}

func (m *MockReceiptRepository) SaveReceiptWithItems(ctx context.Context, receipt domain.Receipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *MockReceiptRepository) FindReceiptsByOwner(ctx context.Context, ownerID string, kind domain.ReceiptKind, limit int, pageToken string) ([]domain.Receipt, string, error) {
	args := m.Called(ctx, ownerID, kind, limit, pageToken)
	var receipts []domain.Receipt
	if r := args.Get(0); r != nil {
		receipts = r.([]domain.Receipt)
	}
	return receipts, args.String(1), args.Error(2)
}

func (m *MockReceiptRepository) FindReceiptByID(ctx context.Context, ownerID string, kind domain.ReceiptKind, receiptID string) (*domain.Receipt, error) {
	args := m.Called(ctx, ownerID, kind, receiptID)
	if r := args.Get(0); r != nil {
		return r.(*domain.Receipt), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReceiptRepository) UpdateAmountAndDate(ctx context.Context, ownerID string, kind domain.ReceiptKind, receiptID string, receipt domain.Receipt) error {
	args := m.Called(ctx, ownerID, kind, receiptID, receipt)
	return args.Error(0)
}

func (m *MockReceiptRepository) DeleteReceipt(ctx context.Context, ownerID string, kind domain.ReceiptKind, receiptID string) error {
	args := m.Called(ctx, ownerID, kind, receiptID)
	return args.Error(0)
}

func (m *MockReceiptRepository) SetImagePath(ctx context.Context, ownerID string, kind domain.ReceiptKind, receiptID string, path string) error {
	args := m.Called(ctx, ownerID, kind, receiptID, path)
	return args.Error(0)
}

type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) ExtractReceipt(ctx context.Context, kind domain.ReceiptKind, image []byte, mimeType string) (*domain.ExtractedReceipt, error) {
	args := m.Called(ctx, kind, image, mimeType)
	if r := args.Get(0); r != nil {
		return r.(*domain.ExtractedReceipt), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(ownerID string, purpose storage.Purpose, ext string, data []byte) (string, error) {
	args := m.Called(ownerID, purpose, ext, data)
	return args.String(0), args.Error(1)
}
