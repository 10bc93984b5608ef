package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты просмотра инцидентов
	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.GET("/markers", h.getMarkers)
		incidents.GET("/categories", h.listCategories)
		incidents.GET("/severities", h.listSeverities)
		incidents.GET("/:id", h.getIncident)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
