package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"legalassist_backend/internal/auth"
	"legalassist_backend/internal/handlers"
	"legalassist_backend/internal/middleware"
)

// Register attaches the full API surface under /api/v1.
func Register(r *gin.Engine, h *handlers.AppHandlers, tokens *auth.TokenManager) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	protected := api.Group("")
	protected.Use(middleware.Auth(tokens))

	adminUsers := protected.Group("/admin")
	adminUsers.Use(middleware.Require(auth.CanManageUsers))

	adminSweeps := protected.Group("/admin")
	adminSweeps.Use(middleware.Require(auth.CanTriggerSweeps))

	h.Auth.RegisterRoutes(api, protected)
	h.Users.RegisterRoutes(protected, adminUsers)
	h.Cases.RegisterRoutes(protected)
	h.Clients.RegisterRoutes(protected)
	h.Events.RegisterRoutes(protected)
	h.Research.RegisterRoutes(protected)
	h.Rulings.RegisterRoutes(protected)
	h.Organizations.RegisterRoutes(protected)
	h.Notifications.RegisterRoutes(protected, adminSweeps)
}
