package routes

import (
	"ritual/internal/dashboard/api/handler"
	"ritual/internal/dashboard/api/middleware"
	"ritual/internal/dashboard/model"

	"github.com/gin-gonic/gin"
)

func SetUpSettingRoutes(r *gin.Engine, h handler.SettingHandler, m middleware.AuthMiddleware) {
	settingRoutes := r.Group("/settings")
	settingRoutes.GET("", m.ValidateAndExtractJwt(), m.CheckUserPermission(model.PermissionRead), h.GetConfig())
	settingRoutes.PUT("", m.ValidateAndExtractJwt(), m.CheckUserPermission(model.PermissionAdmin), h.UpdateConfig())
}
