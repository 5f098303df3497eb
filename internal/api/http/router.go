package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/helpdesk-pro/helpdesk-service/internal/api/http/handlers"
	"github.com/helpdesk-pro/helpdesk-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Tickets        *handlers.TicketsHandler
	Dashboard      *handlers.DashboardHandler
	Catalog        *handlers.CatalogHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Post("/auth/login", cfg.Users.Login)
	api.Post("/users/register", cfg.Users.Register)
	api.Get("/categories", cfg.Catalog.Categories)
	api.Get("/knowledge-base/search", cfg.Catalog.SearchArticles)

	protected := api.Group("", cfg.AuthMiddleware.Handle)
	protected.Put("/users/profile", cfg.Users.UpdateProfile)
	protected.Post("/tickets/create", cfg.Tickets.Create)
	protected.Get("/tickets/user", cfg.Tickets.List)
	protected.Put("/tickets/:id/status", auth.RequireStaff(), cfg.Tickets.UpdateStatus)
	protected.Post("/tickets/:id/comments", cfg.Tickets.AddComment)
	protected.Get("/tickets/:id/comments", cfg.Tickets.ListComments)
	protected.Delete("/tickets/:id", cfg.Tickets.Delete)
	protected.Get("/dashboard/stats", cfg.Dashboard.Stats)
}
