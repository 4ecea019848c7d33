package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diskusi-dev/diskusi/internal/domain"
	"github.com/diskusi-dev/diskusi/internal/jwt"
)

func authedHandler(t *testing.T, wantUid string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetUserFromContext(r)
		require.NotNil(t, claims)
		assert.Equal(t, wantUid, claims.UserId)
		w.WriteHeader(http.StatusOK)
	})
}

func TestNeedAuth(t *testing.T) {
	jwtService := jwt.New("secret", time.Hour)
	mw := NewAuth(jwtService).NeedAuth()

	token, err := jwtService.NewToken(domain.User{Id: "user-123", Username: "dicoding"})
	require.NoError(t, err)

	t.Run("valid token passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/threads", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		mw(authedHandler(t, "user-123")).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/threads", nil)
		rr := httptest.NewRecorder()

		mw(authedHandler(t, "")).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), `"fail"`)
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/threads", nil)
		req.Header.Set("Authorization", token) // no Bearer prefix
		rr := httptest.NewRecorder()

		mw(authedHandler(t, "")).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("tampered token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/threads", nil)
		req.Header.Set("Authorization", "Bearer "+token+"x")
		rr := httptest.NewRecorder()

		mw(authedHandler(t, "")).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
