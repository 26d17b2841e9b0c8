package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/shenikar/campus_panic_system/internal/models"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check (без идентичности)
	api.GET("/system/health", h.healthCheck)

	authed := api.Group("")
	authed.Use(APIKeyMiddleware(h.cfg, h.logger))
	authed.Use(IdentityMiddleware(h.logger))

	// Жизненный цикл тревог
	alerts := authed.Group("/alerts")
	{
		alerts.POST("", h.createAlert)
		alerts.GET("/own", h.getOwnAlert)
		alerts.GET("/stream", h.streamAlerts)

		operator := alerts.Group("")
		operator.Use(RequireRoles(h.logger, models.RoleOperator, models.RoleAdmin))
		{
			operator.GET("/open", h.listOpenAlerts)
			operator.GET("/history", h.alertHistory)
			operator.GET("/stats", h.getStats)
			operator.POST("/:id/claim", h.claimAlert)
			operator.POST("/:id/close", h.closeAlert)
			operator.POST("/:id/false", h.reportFalseAlert)
		}
	}

	// Профиль текущего пользователя (счетчик ложных тревог)
	authed.GET("/profile", h.getProfile)

	// Площадки и геозоны
	authed.GET("/sites", h.listSites)
	authed.GET("/geofences", h.listGeofences)
	authed.POST("/location/check", h.checkLocation)

	admin := authed.Group("")
	admin.Use(RequireRoles(h.logger, models.RoleAdmin))
	{
		admin.POST("/sites", h.createSite)
		admin.PUT("/sites/:id/geofence", h.upsertGeofence)
	}
}
