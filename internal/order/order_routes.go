package order

import (
	"github.com/gin-gonic/gin"

	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/identity"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	orders := r.Group("/admin/orders")
	orders.Use(identity.RequireAuth(), identity.RequireAdmin())
	{
		orders.GET("", handler.List)
		orders.GET("/stats", handler.Stats)
		orders.PATCH("/:orderId/status", handler.UpdateStatus)
	}
}
