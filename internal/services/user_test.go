package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	appErrors "github.com/cordilleraweaves/marketplace-api/internal/errors"
	"github.com/cordilleraweaves/marketplace-api/internal/models"
	"github.com/cordilleraweaves/marketplace-api/internal/repositories/mocks"
	service "github.com/cordilleraweaves/marketplace-api/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testJWTKey = []byte("test-signing-key")

func newUserService(repo *mocks.UserRepository, limiter *mocks.RateLimitRepository) service.UserService {
	return service.NewUserService(repo, limiter, testJWTKey, time.Hour)
}

func hashedPassword(t *testing.T, plain string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Never Grants Admin", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.UserRepository)
		mockLimiter := new(mocks.RateLimitRepository)
		userService := newUserService(mockRepo, mockLimiter)

		mockRepo.On("GetUserByEmail", mock.Anything, "ana@example.com").Return(nil, sql.ErrNoRows).Once()
		mockRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == "ana@example.com" && !u.IsAdmin
		})).Return(nil).Once()

		// Act
		user, err := userService.Register(ctx, &models.RegisterRequest{
			Email:    "ana@example.com",
			Password: "hunter22",
			Name:     "Ana Dulnuan",
			Address:  "Banaue, Ifugao",
		})

		// Assert
		assert.NoError(t, err)
		assert.False(t, user.IsAdmin)
		assert.NotEqual(t, "hunter22", user.Password)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Duplicate Email", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.UserRepository)
		mockLimiter := new(mocks.RateLimitRepository)
		userService := newUserService(mockRepo, mockLimiter)

		mockRepo.On("GetUserByEmail", mock.Anything, "ana@example.com").
			Return(&models.User{ID: uuid.New(), Email: "ana@example.com"}, nil).Once()

		// Act
		user, err := userService.Register(ctx, &models.RegisterRequest{
			Email:    "ana@example.com",
			Password: "hunter22",
			Name:     "Ana Dulnuan",
		})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, user)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeDuplicateEntry, appErr.Code)
		mockRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Admin Flag Carried Through", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.UserRepository)
		mockLimiter := new(mocks.RateLimitRepository)
		userService := newUserService(mockRepo, mockLimiter)

		adminID := uuid.New()
		admin := &models.User{
			ID:       adminID,
			Email:    "curator@example.com",
			IsAdmin:  true,
			Password: hashedPassword(t, "s3cretpw"),
		}

		mockLimiter.On("CheckLoginRateLimit", mock.Anything, "curator@example.com").Return(true, 4, 0, nil).Once()
		mockRepo.On("GetUserByEmail", mock.Anything, "curator@example.com").Return(admin, nil).Once()

		// Act
		resp, err := userService.Login(ctx, &models.LoginRequest{Email: "curator@example.com", Password: "s3cretpw"})

		// Assert
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, adminID, resp.UserID)
		assert.True(t, resp.IsAdmin)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Greater(t, resp.ExpiresIn, 0)

		// The token itself must verify against the signing key.
		claims := &models.Claims{}
		_, err = jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
			return testJWTKey, nil
		})
		require.NoError(t, err)
		assert.Equal(t, adminID, claims.UserID)
		assert.True(t, claims.IsAdmin)
	})

	t.Run("Failure - Wrong Password", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.UserRepository)
		mockLimiter := new(mocks.RateLimitRepository)
		userService := newUserService(mockRepo, mockLimiter)

		user := &models.User{
			ID:       uuid.New(),
			Email:    "ana@example.com",
			Password: hashedPassword(t, "rightpass"),
		}

		mockLimiter.On("CheckLoginRateLimit", mock.Anything, "ana@example.com").Return(true, 2, 0, nil).Once()
		mockRepo.On("GetUserByEmail", mock.Anything, "ana@example.com").Return(user, nil).Once()

		// Act
		resp, err := userService.Login(ctx, &models.LoginRequest{Email: "ana@example.com", Password: "wrongpass"})

		// Assert
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Empty(t, resp.AccessToken)
		assert.Equal(t, 2, resp.RemainingTries)
	})

	t.Run("Failure - Rate Limited", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.UserRepository)
		mockLimiter := new(mocks.RateLimitRepository)
		userService := newUserService(mockRepo, mockLimiter)

		mockLimiter.On("CheckLoginRateLimit", mock.Anything, "ana@example.com").Return(false, 0, 120, nil).Once()

		// Act
		resp, err := userService.Login(ctx, &models.LoginRequest{Email: "ana@example.com", Password: "whatever"})

		// Assert
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, 120, resp.RetryAfter)
		mockRepo.AssertNotCalled(t, "GetUserByEmail", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Unknown Email", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.UserRepository)
		mockLimiter := new(mocks.RateLimitRepository)
		userService := newUserService(mockRepo, mockLimiter)

		mockLimiter.On("CheckLoginRateLimit", mock.Anything, "ghost@example.com").Return(true, 3, 0, nil).Once()
		mockRepo.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, sql.ErrNoRows).Once()

		// Act
		resp, err := userService.Login(ctx, &models.LoginRequest{Email: "ghost@example.com", Password: "whatever"})

		// Assert
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid email or password", resp.Message)
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.UserRepository)
		mockLimiter := new(mocks.RateLimitRepository)
		userService := newUserService(mockRepo, mockLimiter)

		targetID := uuid.New()
		actorID := uuid.New()
		mockRepo.On("DeleteUser", mock.Anything, targetID).Return(nil).Once()

		// Act
		err := userService.DeleteUser(ctx, targetID, actorID)

		// Assert
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Self Delete Blocked", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.UserRepository)
		mockLimiter := new(mocks.RateLimitRepository)
		userService := newUserService(mockRepo, mockLimiter)

		actorID := uuid.New()

		// Act
		err := userService.DeleteUser(ctx, actorID, actorID)

		// Assert
		assert.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		mockRepo.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Grant Admin", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.UserRepository)
		mockLimiter := new(mocks.RateLimitRepository)
		userService := newUserService(mockRepo, mockLimiter)

		id := uuid.New()
		existing := &models.User{ID: id, Name: "Ana Dulnuan", Email: "ana@example.com"}
		grant := true

		mockRepo.On("GetUserById", mock.Anything, id).Return(existing, nil).Once()
		mockRepo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.ID == id && u.IsAdmin
		})).Return(nil).Once()

		// Act
		user, err := userService.UpdateUser(ctx, id, &models.AdminUpdateUserRequest{IsAdmin: &grant})

		// Assert
		assert.NoError(t, err)
		assert.True(t, user.IsAdmin)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.UserRepository)
		mockLimiter := new(mocks.RateLimitRepository)
		userService := newUserService(mockRepo, mockLimiter)

		id := uuid.New()
		mockRepo.On("GetUserById", mock.Anything, id).Return(nil, sql.ErrNoRows).Once()

		// Act
		user, err := userService.UpdateUser(ctx, id, &models.AdminUpdateUserRequest{})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, user)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}
