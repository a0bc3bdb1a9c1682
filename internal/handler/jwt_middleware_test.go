package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func protectedEcho(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"userId": UserIDFromContext(r.Context()),
			"role":   RoleFromContext(r.Context()),
		})
	})
}

func TestJWTAuthValidToken(t *testing.T) {
	mw := JWTAuth(testSecret)
	h := mw(protectedEcho(t))

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":  float64(42),
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/me/scores", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"userId":42,"role":"user"}`, rec.Body.String())
}

func TestJWTAuthMissingHeader(t *testing.T) {
	mw := JWTAuth(testSecret)
	h := mw(protectedEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/me/scores", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	mw := JWTAuth(testSecret)
	h := mw(protectedEcho(t))

	token := signToken(t, "otro-secreto", jwt.MapClaims{
		"sub":  float64(1),
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/me/scores", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	mw := JWTAuth(testSecret)
	h := mw(protectedEcho(t))

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":  float64(1),
		"role": "user",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/me/scores", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnly(t *testing.T) {
	mw := JWTAuth(testSecret)
	h := mw(AdminOnly()(protectedEcho(t)))

	cases := []struct {
		role string
		want int
	}{
		{"admin", http.StatusOK},
		{"moderator", http.StatusForbidden},
		{"user", http.StatusForbidden},
	}

	for _, tc := range cases {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub":  float64(7),
			"role": tc.role,
			"exp":  time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, tc.want, rec.Code, "role=%s", tc.role)
	}
}

func TestModeratorOnly(t *testing.T) {
	mw := JWTAuth(testSecret)
	h := mw(ModeratorOnly()(protectedEcho(t)))

	cases := []struct {
		role string
		want int
	}{
		{"admin", http.StatusOK},
		{"moderator", http.StatusOK},
		{"user", http.StatusForbidden},
	}

	for _, tc := range cases {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub":  float64(7),
			"role": tc.role,
			"exp":  time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/mod/comments/1", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, tc.want, rec.Code, "role=%s", tc.role)
	}
}
