package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"askfun/internal/catalog"
	"askfun/internal/handlers"
	"askfun/internal/handlers/api"
	"askfun/internal/services"
)

// RegisterRoutes registers all application routes. Every route is public.
func (s *Server) RegisterRoutes(database handlers.Pinger, profiles *services.ProfileService, c *catalog.Catalog) {
	profileHandler := handlers.NewProfileHandler(profiles, c, s.Cfg)
	shareHandler := handlers.NewShareHandler(profiles, s.Cfg)
	healthHandler := handlers.NewHealthHandler(database)
	apiProfileHandler := api.NewProfileHandler(profiles, c, s.Cfg)

	// Health checks and metrics
	s.App.Get("/healthz", healthHandler.Liveness)
	s.App.Get("/readyz", healthHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// JSON API
	apiGroup := s.App.Group("/api/v1")
	apiGroup.Get("/send-options", apiProfileHandler.SendOptions)
	apiGroup.Get("/profiles/:profile", apiProfileHandler.Get)

	// Community profile pages
	s.App.Get("/communities/:profile", profileHandler.Show)
	s.App.Post("/communities/:profile/send", profileHandler.Send)
	s.App.Get("/communities/:profile/qr.png", shareHandler.QRCode)
}
