package routes

import (
	"ritual/internal/dashboard/api/handler"
	"ritual/internal/dashboard/api/middleware"
	"ritual/internal/dashboard/model"

	"github.com/gin-gonic/gin"
)

func SetUpUserRoutes(r *gin.Engine, h handler.UserHandler, m middleware.AuthMiddleware) {
	userRoutes := r.Group("/users")
	userRoutes.GET("", m.ValidateAndExtractJwt(), m.CheckUserPermission(model.PermissionAdmin), h.GetUsers())
	userRoutes.POST("", m.ValidateAndExtractJwt(), m.CheckUserPermission(model.PermissionAdmin), h.InviteUser())
	userRoutes.GET("/me", m.ValidateAndExtractJwt(), h.GetMe())
	userRoutes.PATCH("/me", m.ValidateAndExtractJwt(), h.UpdateMe())
	userRoutes.PUT("/:id/permission", m.ValidateAndExtractJwt(), m.CheckUserPermission(model.PermissionAdmin), h.ChangePermission())
	userRoutes.DELETE("/:id", m.ValidateAndExtractJwt(), m.CheckUserPermission(model.PermissionAdmin), h.DeleteUser())
}
