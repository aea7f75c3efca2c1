package services

import (
	"context"
	"testing"

	"github.com/kipubooks/kipu-backend/internal/apperrors"
	"github.com/kipubooks/kipu-backend/internal/core/domain"
	"github.com/kipubooks/kipu-backend/internal/dto"
	"github.com/kipubooks/kipu-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser_HashesPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, new(MockFileStore))

	var saved domain.User
	repo.On("SaveUser", mock.Anything, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.User) }).
		Return(nil)

	got, err := svc.RegisterUser(context.Background(), dto.RegisterRequest{
		Name:     "Maria Quispe",
		Email:    "maria@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, got.UserID)
	assert.Equal(t, "free", got.Plan)
	assert.Equal(t, domain.ProviderLocal, got.AuthProvider)
	assert.NotEqual(t, "hunter2hunter2", saved.PasswordHash, "password must never be stored in the clear")
	assert.True(t, utils.CheckPasswordHash("hunter2hunter2", saved.PasswordHash))
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, new(MockFileStore))
	repo.On("SaveUser", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate)

	_, err := svc.RegisterUser(context.Background(), dto.RegisterRequest{
		Name: "x", Email: "dup@example.com", Password: "hunter2hunter2",
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestAuthenticateUser(t *testing.T) {
	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)
	stored := &domain.User{UserID: "u1", Email: "a@example.com", PasswordHash: hash}

	t.Run("valid credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo, new(MockFileStore))
		repo.On("FindUserByEmail", mock.Anything, "a@example.com").Return(stored, nil)

		got, err := svc.AuthenticateUser(context.Background(), "a@example.com", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "u1", got.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo, new(MockFileStore))
		repo.On("FindUserByEmail", mock.Anything, "a@example.com").Return(stored, nil)

		_, err := svc.AuthenticateUser(context.Background(), "a@example.com", "wrong")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo, new(MockFileStore))
		repo.On("FindUserByEmail", mock.Anything, "nobody@example.com").Return(nil, apperrors.ErrNotFound)

		_, err := svc.AuthenticateUser(context.Background(), "nobody@example.com", "whatever")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("external account has no local credential", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo, new(MockFileStore))
		repo.On("FindUserByEmail", mock.Anything, "g@example.com").
			Return(&domain.User{UserID: "u2", Email: "g@example.com", AuthProvider: domain.ProviderGoogle}, nil)

		_, err := svc.AuthenticateUser(context.Background(), "g@example.com", "anything")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestFindOrCreateOAuthUser(t *testing.T) {
	t.Run("existing provider identity", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo, new(MockFileStore))
		existing := &domain.User{UserID: "u1", AuthProvider: domain.ProviderGoogle, ProviderUserID: "sub-1"}
		repo.On("FindUserByProviderDetails", mock.Anything, domain.ProviderGoogle, "sub-1").Return(existing, nil)

		got, err := svc.FindOrCreateOAuthUser(context.Background(), domain.ProviderGoogle, "sub-1", "a@example.com", "A")
		require.NoError(t, err)
		assert.Equal(t, "u1", got.UserID)
		repo.AssertNotCalled(t, "SaveUser", mock.Anything, mock.Anything)
	})

	t.Run("links by email", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo, new(MockFileStore))
		repo.On("FindUserByProviderDetails", mock.Anything, domain.ProviderGoogle, "sub-2").Return(nil, apperrors.ErrNotFound)
		repo.On("FindUserByEmail", mock.Anything, "b@example.com").Return(&domain.User{UserID: "u2"}, nil)

		got, err := svc.FindOrCreateOAuthUser(context.Background(), domain.ProviderGoogle, "sub-2", "b@example.com", "B")
		require.NoError(t, err)
		assert.Equal(t, "u2", got.UserID)
		repo.AssertNotCalled(t, "SaveUser", mock.Anything, mock.Anything)
	})

	t.Run("creates on first sign-in", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo, new(MockFileStore))
		repo.On("FindUserByProviderDetails", mock.Anything, domain.ProviderGoogle, "sub-3").Return(nil, apperrors.ErrNotFound)
		repo.On("FindUserByEmail", mock.Anything, "c@example.com").Return(nil, apperrors.ErrNotFound)

		var saved domain.User
		repo.On("SaveUser", mock.Anything, mock.AnythingOfType("domain.User")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(domain.User) }).
			Return(nil)

		got, err := svc.FindOrCreateOAuthUser(context.Background(), domain.ProviderGoogle, "sub-3", "c@example.com", "C")
		require.NoError(t, err)
		assert.Equal(t, domain.ProviderGoogle, saved.AuthProvider)
		assert.Equal(t, "sub-3", saved.ProviderUserID)
		assert.Empty(t, saved.PasswordHash)
		assert.Equal(t, got.UserID, saved.UserID)
	})
}

func TestUpdateProfile_AppliesOnlyProvidedFields(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, new(MockFileStore))

	existing := &domain.User{UserID: "u1", Name: "Old Name", Nickname: "old", Plan: "free"}
	repo.On("FindUserByID", mock.Anything, "u1").Return(existing, nil)

	var updated domain.User
	repo.On("UpdateProfile", mock.Anything, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { updated = args.Get(1).(domain.User) }).
		Return(nil)

	newName := "New Name"
	_, err := svc.UpdateProfile(context.Background(), "u1", dto.UpdateProfileRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "old", updated.Nickname, "omitted field stays unchanged")
	assert.Equal(t, "free", updated.Plan)
}

func TestAttachAvatar_RejectsUndecodableImage(t *testing.T) {
	repo := new(MockUserRepository)
	files := new(MockFileStore)
	svc := NewUserService(repo, files)

	_, err := svc.AttachAvatar(context.Background(), "u1", []byte("not an image"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	files.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
