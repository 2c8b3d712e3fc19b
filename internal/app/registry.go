package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/cart"
	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/catalog"
	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/order"
	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/store"
	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/wishlist"
)

type moduleDeps struct {
	catalogue *catalog.Catalogue
	st        *store.Store
	db        *sql.DB
	logger    *zap.Logger
}

func registerModules(router *gin.Engine, deps moduleDeps) {
	router.Use(requestIDMiddleware())

	// --- Handlers ---
	catalogHandler := catalog.NewHandler(deps.catalogue)
	cartHandler := cart.NewHandler(deps.st, deps.catalogue, deps.logger)
	wishlistHandler := wishlist.NewHandler(deps.st, deps.catalogue)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		catalog.RegisterRoutes(api, catalogHandler)
		cart.RegisterRoutes(api, cartHandler)
		wishlist.RegisterRoutes(api, wishlistHandler)

		if deps.db != nil {
			orderRepo := order.NewRepository(deps.db)
			orderService := order.NewService(orderRepo, deps.logger)
			orderHandler := order.NewHandler(orderService, deps.logger)
			order.RegisterRoutes(api, orderHandler)
		}
	}
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
