package routes

import (
	"ritual/internal/dashboard/api/handler"
	"ritual/internal/dashboard/api/middleware"

	"github.com/gin-gonic/gin"
)

func SetUpAuthRoutes(r *gin.Engine, h handler.AuthHandler, m middleware.AuthMiddleware) {
	authRoutes := r.Group("/auth")
	authRoutes.POST("/login", h.Login())
	authRoutes.POST("/logout", m.ValidateAndExtractJwt(), h.Logout())
	authRoutes.POST("/refresh", h.Refresh())
}
