package wishlist

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	wishlists := r.Group("/wishlist")
	{
		wishlists.GET("", handler.List)

		items := wishlists.Group("/items/:productId")
		{
			items.GET("", handler.Membership)
			items.POST("", handler.AddItem)
			items.DELETE("", handler.DeleteItem)
		}
	}
}
