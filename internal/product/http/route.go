package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *ProductHandler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/products")

	// === Public Routes ===
	group.GET("", h.List)    // List products
	group.GET("/:id", h.Get) // Get product details

	// === Authenticated Routes ===
	group.POST("", authMiddleware, h.Create) // Create product
}
