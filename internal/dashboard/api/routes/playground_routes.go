package routes

import (
	"ritual/internal/dashboard/api/handler"
	"ritual/internal/dashboard/api/middleware"
	"ritual/internal/dashboard/model"

	"github.com/gin-gonic/gin"
)

func SetUpPlaygroundRoutes(r *gin.Engine, h handler.PlaygroundHandler, m middleware.AuthMiddleware) {
	playgroundRoutes := r.Group("/playground")
	playgroundRoutes.GET("/models", m.ValidateAndExtractJwt(), m.CheckUserPermission(model.PermissionRead), h.GetModels())
	playgroundRoutes.GET("/health", m.ValidateAndExtractJwt(), m.CheckUserPermission(model.PermissionRead), h.CheckServerHealth())
	playgroundRoutes.POST("/generate", m.ValidateAndExtractJwt(), m.CheckUserPermission(model.PermissionRead), h.GenerateStream())
}
