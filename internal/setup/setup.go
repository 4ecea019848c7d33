package setup

import (
	"github.com/diskusi-dev/diskusi/internal/config"
	"github.com/diskusi-dev/diskusi/internal/handler"
	"github.com/diskusi-dev/diskusi/internal/jwt"
	"github.com/diskusi-dev/diskusi/internal/middleware"
	"github.com/diskusi-dev/diskusi/internal/service"
	"github.com/diskusi-dev/diskusi/internal/storage/pg"
)

// Dependencies holds all initialized dependencies.
type Dependencies struct {
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Jwt            jwt.JwtService
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(storage, jwtService, cfg.Public.BcryptCost)
	thread := service.NewThread(storage, storage, storage, storage)
	comment := service.NewComment(storage, storage)
	reply := service.NewReply(storage, storage, storage)

	h := handler.New(auth, thread, comment, reply)

	return &Dependencies{
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(jwtService),
		Jwt:            jwtService,
	}, nil
}
