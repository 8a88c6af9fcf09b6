package routes

import (
	"ritual/internal/dashboard/api/handler"
	"ritual/internal/dashboard/api/middleware"
	"ritual/internal/dashboard/model"

	"github.com/gin-gonic/gin"
)

func SetUpProviderRoutes(r *gin.Engine, h handler.ProviderHandler, m middleware.AuthMiddleware) {
	providerRoutes := r.Group("/providers")
	providerRoutes.GET("/keys", m.ValidateAndExtractJwt(), m.CheckUserPermission(model.PermissionAdmin), h.GetKeys())
	providerRoutes.PUT("/keys", m.ValidateAndExtractJwt(), m.CheckUserPermission(model.PermissionAdmin), h.UpdateKeys())
	providerRoutes.GET("/configurations", m.ValidateAndExtractJwt(), m.CheckUserPermission(model.PermissionRead), h.GetConfigurations())
}
