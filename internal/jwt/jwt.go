package jwt

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
	"github.com/diskusi-dev/diskusi/internal/logger"
)

type JwtService interface {
	NewToken(user domain.User) (string, error)
	DecodeToken(jwtStr string) (*UserClaims, error)
}

// UserClaims is the verified identity extracted from an access token.
type UserClaims struct {
	UserId   domain.UserId
	Username domain.Username
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) JwtService {
	return &Jwt{secretKey, ttl}
}

func (j *Jwt) NewToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{}
	claims["uid"] = user.Id
	claims["username"] = user.Username
	claims["exp"] = time.Now().Add(j.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", internal_errors.Unauthorized("can't create token")
	}

	return tokenString, nil
}

func (j *Jwt) DecodeToken(jwtStr string) (*UserClaims, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &internal_errors.ErrorWithStatusCode{Message: "unexpected signing method", StatusCode: http.StatusUnauthorized}
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, internal_errors.Unauthorized("invalid token signature")
	}
	if !token.Valid {
		return nil, internal_errors.Unauthorized("invalid access token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, internal_errors.Unauthorized("invalid access token")
	}
	uid, _ := mapClaims["uid"].(string)
	username, _ := mapClaims["username"].(string)
	if uid == "" {
		return nil, internal_errors.Unauthorized("invalid access token")
	}

	return &UserClaims{UserId: uid, Username: username}, nil
}
