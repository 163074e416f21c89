package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rental-complaint-service/internal/api/http/handlers"
	"github.com/spec-kit/rental-complaint-service/internal/auth"
	"github.com/spec-kit/rental-complaint-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Complaints     *handlers.ComplaintsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Role requirements are declared here, next
// to the route, instead of inside the handlers.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)

	landlordOnly := authGroup.Group("", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleLandlord))
	landlordOnly.Get("/unapproved", cfg.Auth.ListUnapproved)
	landlordOnly.Put("/approve/:id", cfg.Auth.Approve)
	landlordOnly.Delete("/reject/:id", cfg.Auth.Reject)

	complaints := app.Group("/complaints", cfg.AuthMiddleware.Handle)
	complaints.Post("", auth.RequireAuthenticated(), cfg.Complaints.Create)
	complaints.Get("/my", auth.RequireAuthenticated(), cfg.Complaints.ListMine)
	complaints.Get("", auth.RequireRole(domain.RoleLandlord), cfg.Complaints.ListAll)
	complaints.Put("/:id/status", auth.RequireRole(domain.RoleLandlord), cfg.Complaints.UpdateStatus)
}
