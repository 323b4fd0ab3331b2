package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cordilleraweaves/marketplace-api/internal/api/middleware"
	"github.com/cordilleraweaves/marketplace-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var signingKey = []byte("test-signing-key")

func signedToken(t *testing.T, isAdmin bool, expiresIn time.Duration) string {
	t.Helper()

	claims := &models.Claims{
		UserID:  uuid.New(),
		Email:   "test@example.com",
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	require.NoError(t, err)

	return token
}

func passthrough(hit *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hit = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	auth := middleware.NewAuthMiddleware(signingKey)

	t.Run("Success - Claims Reach Handler", func(t *testing.T) {
		// Arrange
		var gotClaims *models.Claims
		handler := auth.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotClaims, _ = middleware.ClaimsFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/carts", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, false, time.Hour))
		rec := httptest.NewRecorder()

		// Act
		handler.ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotClaims)
		assert.Equal(t, "test@example.com", gotClaims.Email)
	})

	t.Run("Failure - Missing Header Is Not Logged In", func(t *testing.T) {
		// Arrange
		hit := false
		handler := auth.Authenticate(passthrough(&hit))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/carts", nil)
		rec := httptest.NewRecorder()

		// Act
		handler.ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "NOT_LOGGED_IN")
		assert.False(t, hit)
	})

	t.Run("Failure - Malformed Header", func(t *testing.T) {
		// Arrange
		hit := false
		handler := auth.Authenticate(passthrough(&hit))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/carts", nil)
		req.Header.Set("Authorization", "Token abc123")
		rec := httptest.NewRecorder()

		// Act
		handler.ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
		assert.False(t, hit)
	})

	t.Run("Failure - Garbage Token", func(t *testing.T) {
		// Arrange
		hit := false
		handler := auth.Authenticate(passthrough(&hit))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/carts", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		rec := httptest.NewRecorder()

		// Act
		handler.ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, hit)
	})

	t.Run("Failure - Expired Token", func(t *testing.T) {
		// Arrange
		hit := false
		handler := auth.Authenticate(passthrough(&hit))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/carts", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, false, -time.Minute))
		rec := httptest.NewRecorder()

		// Act
		handler.ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, hit)
	})

	t.Run("Failure - Wrong Signing Key", func(t *testing.T) {
		// Arrange
		otherAuth := middleware.NewAuthMiddleware([]byte("another-key"))
		hit := false
		handler := otherAuth.Authenticate(passthrough(&hit))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/carts", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, false, time.Hour))
		rec := httptest.NewRecorder()

		// Act
		handler.ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, hit)
	})
}

func TestRequireAdmin(t *testing.T) {
	auth := middleware.NewAuthMiddleware(signingKey)

	t.Run("Success - Admin Passes", func(t *testing.T) {
		// Arrange
		hit := false
		handler := auth.RequireAdmin(passthrough(&hit))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, true, time.Hour))
		rec := httptest.NewRecorder()

		// Act
		handler.ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, hit)
	})

	t.Run("Failure - Customer Forbidden", func(t *testing.T) {
		// Arrange
		hit := false
		handler := auth.RequireAdmin(passthrough(&hit))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, false, time.Hour))
		rec := httptest.NewRecorder()

		// Act
		handler.ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "FORBIDDEN")
		assert.False(t, hit)
	})

	t.Run("Failure - No Token", func(t *testing.T) {
		// Arrange
		hit := false
		handler := auth.RequireAdmin(passthrough(&hit))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil)
		rec := httptest.NewRecorder()

		// Act
		handler.ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, hit)
	})
}
