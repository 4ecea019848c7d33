package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
	"github.com/diskusi-dev/diskusi/internal/logger"
)

type AuthService interface {
	Register(ctx context.Context, creationData domain.UserCreationData) (domain.User, error)
	Login(ctx context.Context, creds domain.Credentials) (string, error)
}

type Auth struct {
	storage    AuthStorage
	jwt        Jwt
	bcryptCost int
}

type AuthStorage interface {
	SaveUser(ctx context.Context, creationData domain.UserCreationData) (domain.User, error)
	UserByUsername(ctx context.Context, username domain.Username) (domain.User, string, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

func NewAuth(storage AuthStorage, jwt Jwt, bcryptCost int) *Auth {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Auth{storage, jwt, bcryptCost}
}

func (a *Auth) Register(ctx context.Context, creationData domain.UserCreationData) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(creationData.Password), a.bcryptCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.User{}, err
	}
	creationData.Password = string(hash)

	return a.storage.SaveUser(ctx, creationData)
}

func (a *Auth) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	user, passwordHash, err := a.storage.UserByUsername(ctx, creds.Username)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(creds.Password)); err != nil {
		return "", internal_errors.Unauthorized("kredensial yang anda masukkan salah")
	}

	return a.jwt.NewToken(user)
}
