package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/joyjoykids/feedback-backend/internal/handlers"
	"github.com/joyjoykids/feedback-backend/internal/logger"
	"github.com/joyjoykids/feedback-backend/internal/middleware"
)

type RouterConfig struct {
	Log             *logger.Logger
	FeedbackHandler *handlers.FeedbackHandler
	TTSHandler      *handlers.TTSHandler
	CORSOrigins     []string
	Debug           bool
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()

	reqLog := middleware.NewRequestLogMiddleware(cfg.Log)
	router.Use(reqLog.Handle())
	router.Use(middleware.Recovery(cfg.Log, cfg.Debug))

	// Cors
	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Requested-With"},
	}
	if len(cfg.CORSOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
		corsCfg.AllowCredentials = true
	}
	router.Use(cors.New(corsCfg))

	// Liveness
	router.GET("/", handlers.Liveness)
	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/auto-feedback", cfg.FeedbackHandler.AutoFeedback)
		api.POST("/feedback", cfg.FeedbackHandler.Echo)
		api.POST("/tts", cfg.TTSHandler.Synthesize)
		api.GET("/tts-ping", cfg.TTSHandler.Ping)
	}

	return router
}
