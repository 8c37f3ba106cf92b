package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mrivera/user-auth-service/internal/api/middleware"
	"github.com/mrivera/user-auth-service/internal/service"
	"github.com/mrivera/user-auth-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, userID uuid.UUID, exp time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": userID.String(),
		"exp": exp.Unix(),
		"iat": time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuth(t *testing.T) {
	cfg := testutil.TestConfig()
	// The gate only verifies tokens; no store is involved
	authService := service.NewAuthService(nil, cfg)

	userID := uuid.New()

	tests := []struct {
		name            string
		header          string
		expectedStatus  int
		expectedMessage string
		wantNext        bool
	}{
		{
			name:            "missing header",
			header:          "",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Access denied!",
		},
		{
			name:            "wrong scheme",
			header:          "Basic abc123",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid token!",
		},
		{
			name:            "bare token without scheme",
			header:          signToken(t, cfg.JWTSecret, userID, time.Now().Add(time.Hour)),
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid token!",
		},
		{
			name:            "garbage token",
			header:          "Bearer not.a.token",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid token!",
		},
		{
			name:            "expired token",
			header:          "Bearer " + signToken(t, cfg.JWTSecret, userID, time.Now().Add(-time.Minute)),
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid token!",
		},
		{
			name:            "token signed with a different secret",
			header:          "Bearer " + signToken(t, "some-other-secret", userID, time.Now().Add(time.Hour)),
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid token!",
		},
		{
			name:           "valid token",
			header:         "Bearer " + signToken(t, cfg.JWTSecret, userID, time.Now().Add(time.Hour)),
			expectedStatus: http.StatusOK,
			wantNext:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				got, ok := middleware.GetUserID(r.Context())
				assert.True(t, ok, "user id missing from context")
				assert.Equal(t, userID, got)
			})

			req := httptest.NewRequest(http.MethodGet, "/userinfo", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			middleware.Auth(authService)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled, "downstream handler invocation mismatch")
			if tt.expectedMessage != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedMessage)
			}
		})
	}
}

func TestGetUserID_Absent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := middleware.GetUserID(req.Context())
	assert.False(t, ok)
}
