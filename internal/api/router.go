package api

import (
	"net/http"
	"time"

	"message_board/internal/api/handler"
	"message_board/internal/api/middleware"
	"message_board/internal/app/service"
	"message_board/internal/domain/repository"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(
	authService *service.AuthService,
	messageService *service.MessageService,
	userRepo repository.UserRepository,
	checker middleware.ReadinessChecker,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// Process liveness, outside the readiness gate so orchestrators can
	// tell process-up from database-up.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Everything else waits for the database.
	r.Group(func(gated chi.Router) {
		gated.Use(middleware.Readiness(checker))

		gated.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("Hello message board"))
		})

		userHandler := handler.NewUserHandler(authService)
		gated.Route("/users", userHandler.RegisterRoutes)

		sessionHandler := handler.NewSessionHandler(authService)
		gated.Route("/sessions", sessionHandler.RegisterRoutes)

		messageHandler := handler.NewMessageHandler(messageService)
		authenticate := middleware.Authenticator(userRepo)
		gated.Route("/messages", func(mr chi.Router) {
			messageHandler.RegisterRoutes(mr, authenticate)
		})
	})

	return r
}
