package controllers

import (
	"MediPoint/handlers"
	"MediPoint/middlewares"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler *handlers.AuthHandler
}

// NewAuthController creates a new AuthController with the given AuthHandler
func NewAuthController(authHandler *handlers.AuthHandler) *AuthController {
	return &AuthController{
		Handler: authHandler,
	}
}

// RegisterRoutes initializes all authentication routes directly on the router
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	// Public routes: No authentication required
	router.POST("/auth/patient/login", ac.Handler.PatientLogin)
	router.POST("/auth/staff/login", ac.Handler.StaffLogin)
	router.POST("/auth/patient/register", ac.Handler.RegisterPatient)
	router.POST("/auth/send-reset-code", ac.Handler.SendResetCode)
	router.POST("/auth/change-password", ac.Handler.ChangePassword)

	// Protected routes: Requires a valid token
	authGroup := router.Group("/auth").Use(middlewares.TokenAuthMiddleware())
	{
		authGroup.GET("/profile", ac.Handler.Profile)
		authGroup.POST("/refresh-token", ac.Handler.RefreshToken)
		authGroup.POST("/logout", ac.Handler.Logout)
	}
}
