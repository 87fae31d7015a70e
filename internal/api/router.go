package api

import "github.com/gin-gonic/gin"

// RegisterRoutes 注册对外接口
func RegisterRoutes(r *gin.Engine, h *ListingHandler) {
	r.GET("/health", h.Health)
	r.GET("/api/events/search", h.SearchEvents)
	r.GET("/api/events/top", h.TopEvents)
	r.GET("/api/suggestions", h.Suggestions)
}
