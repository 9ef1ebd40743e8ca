package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"communityhub/internal/delivery/http/controllers"
	"communityhub/internal/delivery/http/middleware"
	"communityhub/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	logger *slog.Logger,
	verifier domain.TokenVerifier,
	authController *controllers.AuthController,
	registrationController *controllers.RegistrationController,
	subscriptionController *controllers.SubscriptionController,
	newsletterController *controllers.NewsletterController,
	contentController *controllers.ContentController,
) *http.ServeMux {
	requireAuth := middleware.RequireAuth(verifier, logger)
	requireAdminRole := middleware.RequireRole(domain.RoleAdmin)
	requireAdmin := func(next http.HandlerFunc) http.HandlerFunc {
		return requireAuth(requireAdminRole(next))
	}

	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Registration ledger
	mux.HandleFunc("POST /registrations", requireAuth(registrationController.Register))
	mux.HandleFunc("GET /events/{eventID}/registration", registrationController.GetEventRegistration)
	mux.HandleFunc("GET /events/{eventID}/registrations", registrationController.ListEventRegistrations)
	mux.HandleFunc("GET /me/registrations", requireAuth(registrationController.ListMyRegistrations))

	// Subscriptions and newsletter
	mux.HandleFunc("POST /subscriptions", subscriptionController.Subscribe)
	mux.HandleFunc("DELETE /subscriptions", subscriptionController.Unsubscribe)
	mux.HandleFunc("GET /subscriptions", requireAdmin(subscriptionController.ListActiveSubscribers))
	mux.HandleFunc("POST /newsletters", requireAdmin(newsletterController.Broadcast))

	// Blog
	mux.HandleFunc("POST /posts", requireAdmin(contentController.CreatePost))
	mux.HandleFunc("GET /posts", contentController.ListPosts)
	mux.HandleFunc("GET /posts/{slug}", contentController.GetPost)
	mux.HandleFunc("POST /uploads", requireAdmin(contentController.Upload))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
