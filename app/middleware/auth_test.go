package appMiddleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func adminClaims() Claims {
	return Claims{
		UserID: "user-1",
		Email:  "admin@malerchristensen.dk",
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestRequireAdmin(t *testing.T) {
	auth := NewAuthenticator(testSecret)

	var gotUserID, gotRole string
	protected := auth.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = GetUserIDFromContext(r.Context())
		gotRole, _ = GetUserRoleFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(header string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/leads", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		protected.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid admin token passes and fills context", func(t *testing.T) {
		rec := do("Bearer " + signToken(t, testSecret, adminClaims()))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "user-1", gotUserID)
		assert.Equal(t, "admin", gotRole)
	})

	t.Run("missing header", func(t *testing.T) {
		rec := do("")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		rec := do("Token abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong signing secret", func(t *testing.T) {
		rec := do("Bearer " + signToken(t, "another-secret", adminClaims()))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := adminClaims()
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		rec := do("Bearer " + signToken(t, testSecret, claims))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-admin role is forbidden", func(t *testing.T) {
		claims := adminClaims()
		claims.Role = "editor"
		rec := do("Bearer " + signToken(t, testSecret, claims))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
