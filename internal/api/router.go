package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mrivera/user-auth-service/internal/api/handlers"
	"github.com/mrivera/user-auth-service/internal/api/middleware"
	"github.com/mrivera/user-auth-service/internal/config"
	"github.com/mrivera/user-auth-service/internal/service"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	userHandler := handlers.NewUserHandler(services.Auth)
	pageHandler := handlers.NewPageHandler(cfg.StaticDir)

	// Public auth routes
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(services.Auth))
		r.Get("/userinfo", userHandler.UserInfo)
	})

	// Static views
	r.Get("/", pageHandler.Home)
	r.Get("/guest/login", pageHandler.LoginPage)
	r.Get("/guest/register", pageHandler.RegisterPage)

	return r
}
