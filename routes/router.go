package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/spikenet-labs/serverdesk/handlers"
	"github.com/spikenet-labs/serverdesk/middleware"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	r.POST("/login", handlers.Login)
	r.POST("/request-server", h.Request.Submit)

	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware())
	{
		admin.GET("/requests", h.Request.List)
		admin.GET("/requests/pending", h.Request.ListPending)
		admin.POST("/requests/:id/approve", h.Request.Approve)
		admin.POST("/requests/:id/deny", h.Request.Deny)
		admin.DELETE("/requests/:id", h.Request.Decommission)
	}

	ws := r.Group("/ws")
	ws.Use(middleware.JWTAuthMiddleware())
	{
		ws.GET("/requests", h.StatusFeed.Stream)
	}
}
