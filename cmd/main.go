package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/joyjoykids/feedback-backend/internal/catalog"
	"github.com/joyjoykids/feedback-backend/internal/feedback"
	"github.com/joyjoykids/feedback-backend/internal/handlers"
	"github.com/joyjoykids/feedback-backend/internal/logger"
	"github.com/joyjoykids/feedback-backend/internal/server"
	"github.com/joyjoykids/feedback-backend/internal/services"
	"github.com/joyjoykids/feedback-backend/internal/ttscache"
	"github.com/joyjoykids/feedback-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	catalogDir := utils.GetEnv("CATALOG_DIR", "catalogs", log)
	defaultMonth := utils.GetEnv("DEFAULT_MONTH", "03", log)
	defaultLesson := utils.GetEnv("DEFAULT_LESSON", "1", log)
	debugErrors := utils.GetEnvAsBool("DEBUG_ERRORS", false, log)
	corsOrigins := splitOrigins(utils.GetEnv("CORS_ORIGINS", "", log))

	// Catalogs
	catalogs := catalog.NewLoader(catalogDir, log)

	// Generation backend; absence of a credential means fallback-only
	// mode, not a startup failure.
	var gen feedback.Generator
	genClient, err := services.NewOpenAIClient(log)
	switch {
	case err == nil:
		gen = genClient
	case errors.Is(err, services.ErrNoCredential):
		log.Warn("No generation credential configured, running fallback-only")
	default:
		log.Error("Could not init OpenAIClient", "error", err)
		os.Exit(1)
	}

	// Services
	log.Info("Setting up services from main...")
	orch := feedback.NewOrchestrator(log, gen)
	feedbackService := services.NewFeedbackService(log, catalogs, orch, defaultMonth, defaultLesson)

	ttsCache := newTTSCache(log)
	ttsService, err := services.NewTTSService(log, ttsCache)
	if err != nil {
		log.Error("Could not init TTSService", "error", err)
		os.Exit(1)
	}
	defer ttsService.Close()
	if !ttsService.Enabled() {
		log.Warn("No TTS credential configured, /api/tts will answer 503")
	}

	// Handlers
	log.Info("Setting up handlers from main...")
	feedbackHandler := handlers.NewFeedbackHandler(log, feedbackService)
	ttsHandler := handlers.NewTTSHandler(log, ttsService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		Log:             log,
		FeedbackHandler: feedbackHandler,
		TTSHandler:      ttsHandler,
		CORSOrigins:     corsOrigins,
		Debug:           debugErrors,
	})

	port := utils.GetEnv("PORT", "10000", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}

// newTTSCache picks the audio cache backend: Redis when REDIS_ADDR is
// set so replicas share clips, otherwise an in-process LRU.
func newTTSCache(log *logger.Logger) ttscache.Store {
	if addr := utils.GetEnv("REDIS_ADDR", "", log); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		ttl := time.Duration(utils.GetEnvAsInt("TTS_CACHE_TTL_SECONDS", int(ttscache.DefaultTTL/time.Second), log)) * time.Second
		return ttscache.NewRedis(client, ttl, log)
	}
	size := utils.GetEnvAsInt("TTS_CACHE_SIZE", ttscache.DefaultMemorySize, log)
	mem, err := ttscache.NewMemory(size)
	if err != nil {
		log.Warn("Could not init memory TTS cache, using default size", "error", err)
		mem, _ = ttscache.NewMemory(ttscache.DefaultMemorySize)
	}
	return mem
}

func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
