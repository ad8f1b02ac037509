package routes

import (
	plansapi "membership-app/internal/api/plans"
	regsapi "membership-app/internal/api/registrations"
	sessionsapi "membership-app/internal/api/sessions"
	usersapi "membership-app/internal/api/users"
	"membership-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Plans         *plansapi.Handler
	Users         *usersapi.Handler
	Registrations *regsapi.Handler
	Sessions      *sessionsapi.Handler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeInput())
	public.POST("/users", h.Users.Create)
	public.POST("/sessions", h.Sessions.Create)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.SanitizeInput())
	auth.PUT("/users", h.Users.Update)

	auth.GET("/plans", h.Plans.List)
	auth.POST("/plans", h.Plans.Create)
	auth.PUT("/plans/:id", h.Plans.Update)
	auth.DELETE("/plans/:id", h.Plans.Cancel)

	auth.GET("/registrations", h.Registrations.List)
	auth.POST("/registrations", h.Registrations.Create)
	auth.PUT("/registrations/:id", h.Registrations.Update)
	auth.DELETE("/registrations/:id", h.Registrations.Cancel)
}
