package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/citizenchain/citizenauth/core"
)

var dashboardRoles = []core.Role{
	core.RoleNationalReserveCommittee,
	core.RoleProvincialReserveCommittee,
	core.RoleProvincialReserveBank,
	core.RoleFullAdmin,
}

// SetupRouter sets up the Gin router
func SetupRouter(handlers *AuthHandlers, logger *slog.Logger) *gin.Engine {
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(logger))

	router.GET("/healthz", Health)

	authenticated := AuthMiddleware(handlers.tokenizer, handlers.loginService.Sessions())

	// Auth routes
	auth := router.Group("/auth")
	{
		auth.POST("/challenge", handlers.Challenge)
		auth.POST("/login", handlers.Login)
		auth.GET("/state", handlers.State)
		auth.POST("/logout", authenticated, handlers.Logout)
	}

	// Protected API routes
	api := router.Group("/api")
	api.Use(authenticated)
	{
		api.GET("/me", handlers.Me)
		for _, role := range dashboardRoles {
			api.GET("/"+string(role), RequireRole(role), handlers.Dashboard)
		}
	}

	return router
}
