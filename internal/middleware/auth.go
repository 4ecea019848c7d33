package middleware

import (
	"context"
	"net/http"
	"strings"

	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
	"github.com/diskusi-dev/diskusi/internal/jwt"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwtService jwt.JwtService
}

func NewAuth(jwtService jwt.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth returns middleware that requires a valid Bearer access token and
// stores the verified claims in the request context.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.WriteErrorAndStatusCode(w, internal_errors.Unauthorized("missing authentication"))
				return
			}

			tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				utils.WriteErrorAndStatusCode(w, internal_errors.Unauthorized("malformed authorization header"))
				return
			}

			claims, err := a.jwtService.DecodeToken(tokenStr)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext returns the verified claims set by NeedAuth, or nil.
func GetUserFromContext(r *http.Request) *jwt.UserClaims {
	claims, _ := r.Context().Value(UserClaimsKey).(*jwt.UserClaims)
	return claims
}
