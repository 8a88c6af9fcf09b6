package routes

import (
	"ritual/internal/dashboard/api/handler"
	"ritual/internal/dashboard/api/middleware"
	"ritual/internal/dashboard/model"

	"github.com/gin-gonic/gin"
)

func SetUpServerRoutes(r *gin.Engine, h handler.ServerHandler, m middleware.AuthMiddleware) {
	serverRoutes := r.Group("/servers")
	serverRoutes.GET("", m.ValidateAndExtractJwt(), m.CheckUserPermission(model.PermissionRead), h.GetServers())
	serverRoutes.POST("", m.ValidateAndExtractJwt(), m.CheckUserPermission(model.PermissionWrite), h.CreateServer())
	serverRoutes.GET("/names", m.ValidateAndExtractJwt(), m.CheckUserPermission(model.PermissionRead), h.GetServerNames())
	serverRoutes.GET("/export", m.ValidateAndExtractJwt(), m.CheckUserPermission(model.PermissionRead), h.ExportServersToExcelFile())
	serverRoutes.POST("/reports", m.ValidateAndExtractJwt(), m.CheckUserPermission(model.PermissionRead), h.ReportFleetHealth())
	serverRoutes.GET("/:id", m.ValidateAndExtractJwt(), m.CheckUserPermission(model.PermissionRead), h.GetServer())
	serverRoutes.POST("/:id/toggle", m.ValidateAndExtractJwt(), m.CheckUserPermission(model.PermissionWrite), h.ToggleServer())
	serverRoutes.DELETE("/:id", m.ValidateAndExtractJwt(), m.CheckUserPermission(model.PermissionWrite), h.DeleteServer())
	serverRoutes.GET("/:id/uptime", m.ValidateAndExtractJwt(), m.CheckUserPermission(model.PermissionRead), h.GetServerUptimePercentage())
}
