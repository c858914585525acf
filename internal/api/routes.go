package api

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all run routes on the group.
//
// Usage:
//
//	v1 := router.Group("/v1")
//	api.RegisterRoutes(v1, handlers)
func RegisterRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.POST("/runs", h.HandleStartRun)
	rg.POST("/runs/auto", h.HandleStartAutoRun)
	rg.POST("/runs/retry-set", h.HandleStartRetrySet)
	rg.GET("/runs/:id", h.HandleGetRun)
	rg.GET("/runs/:id/next", h.HandleNextQuestion)
	rg.GET("/runs/:id/next2", h.HandleNextTwoQuestions)
	rg.POST("/runs/:id/answers", h.HandleSubmitAnswer)
	rg.POST("/runs/:id/stop", h.HandleStopRun)
	rg.GET("/runs/:id/transcript", h.HandleTranscript)
}
