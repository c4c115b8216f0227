package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sabrinaflix/backend/internal/lib/jwt"
	"github.com/sabrinaflix/backend/internal/lib/password"
	"github.com/sabrinaflix/backend/internal/models"
	"github.com/sabrinaflix/backend/internal/storage/repository"
)

type UsersMock struct{ mock.Mock }

func (m *UsersMock) CreateUser(ctx context.Context, user models.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *UsersMock) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}
func (m *UsersMock) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
func (m *UsersMock) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *UsersMock) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newTestMaker() jwt.Maker {
	return jwt.NewMaker("test-secret-key", time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(u *UsersMock)
		wantErr    error
	}{
		{
			name: "successful register",
			setupMocks: func(u *UsersMock) {
				u.On("EmailExists", mock.Anything, "test@example.com").Return(false, nil).Once()
				u.On("UsernameExists", mock.Anything, "testuser").Return(false, nil).Once()
				u.On("CreateUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
					return user.Username == "testuser" &&
						user.Email == "test@example.com" &&
						user.SubscriptionStatus == models.SubscriptionNone &&
						user.UID != "" &&
						user.PasswordHash != "secret123"
				})).Return(nil).Once()
			},
		},
		{
			name: "duplicate email",
			setupMocks: func(u *UsersMock) {
				u.On("EmailExists", mock.Anything, "test@example.com").Return(true, nil).Once()
			},
			wantErr: ErrEmailTaken,
		},
		{
			name: "duplicate username",
			setupMocks: func(u *UsersMock) {
				u.On("EmailExists", mock.Anything, "test@example.com").Return(false, nil).Once()
				u.On("UsernameExists", mock.Anything, "testuser").Return(true, nil).Once()
			},
			wantErr: ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(UsersMock)
			svc := NewAuthService(users, newTestMaker())

			tt.setupMocks(users)

			user, token, err := svc.Register(context.Background(), "testuser", "test@example.com", "secret123")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "testuser", user.Username)
				assert.NotEmpty(t, token)

				// Выданный токен сразу проходит проверку сессии
				uid, err := svc.ValidateToken(context.Background(), token)
				require.NoError(t, err)
				assert.Equal(t, user.UID, uid)
			}

			users.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := password.GetHash("secret123")
	require.NoError(t, err)

	storedUser := &models.User{
		UID:                "550e8400-e29b-41d4-a716-446655440000",
		Username:           "testuser",
		Email:              "test@example.com",
		PasswordHash:       hash,
		SubscriptionStatus: models.SubscriptionNone,
	}

	tests := []struct {
		name       string
		password   string
		setupMocks func(u *UsersMock)
		wantErr    error
	}{
		{
			name:     "successful login",
			password: "secret123",
			setupMocks: func(u *UsersMock) {
				u.On("GetUserByUsername", mock.Anything, "testuser").Return(storedUser, nil).Once()
			},
		},
		{
			name:     "wrong password",
			password: "wrongpass",
			setupMocks: func(u *UsersMock) {
				u.On("GetUserByUsername", mock.Anything, "testuser").Return(storedUser, nil).Once()
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "unknown username maps to invalid credentials",
			password: "secret123",
			setupMocks: func(u *UsersMock) {
				u.On("GetUserByUsername", mock.Anything, "testuser").
					Return(nil, repository.ErrUserNotFound).Once()
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(UsersMock)
			svc := NewAuthService(users, newTestMaker())

			tt.setupMocks(users)

			user, token, err := svc.Login(context.Background(), "testuser", tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, storedUser.UID, user.UID)
				assert.NotEmpty(t, token)
			}

			users.AssertExpectations(t)
		})
	}
}

func TestAuthService_ValidateToken(t *testing.T) {
	users := new(UsersMock)
	svc := NewAuthService(users, newTestMaker())

	_, err := svc.ValidateToken(context.Background(), "not-a-token")
	assert.Error(t, err)

	// Токен, подписанный другим ключом, отклоняется
	otherMaker := jwt.NewMaker("other-secret", time.Hour)
	token, err := otherMaker.GenerateToken("user1")
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), token)
	assert.Error(t, err)
}
