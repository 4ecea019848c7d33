package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/diskusi-dev/diskusi/internal/middleware/metrics"
	"github.com/diskusi-dev/diskusi/internal/setup"
)

// New creates and configures the chi router with all the routes.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	h := deps.Handler
	needAuth := deps.AuthMiddleware.NeedAuth()

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/users", h.Register)
	r.Post("/authentications", h.Login)

	// Thread detail is public; every write requires authentication.
	r.Get("/threads/{threadId}", h.GetThread)
	r.Group(func(r chi.Router) {
		r.Use(needAuth)
		r.Post("/threads", h.CreateThread)
		r.Post("/threads/{threadId}/comments", h.CreateComment)
		r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
		r.Post("/threads/{threadId}/comments/{commentId}/replies", h.CreateReply)
		r.Delete("/threads/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
	})

	return r
}
