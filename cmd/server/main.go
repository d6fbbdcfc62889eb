package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/creatorstack/titlegen/internal/config"
	"github.com/creatorstack/titlegen/internal/gemini"
	"github.com/creatorstack/titlegen/internal/logger"
	"github.com/creatorstack/titlegen/internal/metrics"
	"github.com/creatorstack/titlegen/internal/suggest"
)

func main() {
	config.LoadConfig()

	log := logger.New(logger.FromConfig(config.AppConfig.LogLevel, config.AppConfig.LogFormat))

	gin.SetMode(config.AppConfig.GinMode)

	// Initialize services
	geminiClient := gemini.NewClient(config.AppConfig)
	suggestService := suggest.NewService(geminiClient, config.AppConfig, log)

	// Initialize handlers
	suggestHandler := suggest.NewHandler(suggestService, log)

	router := newRouter(config.AppConfig, log, suggestHandler)

	port := ":" + config.AppConfig.Port
	log.Info("titlegen listening on "+port, "model", config.AppConfig.GeminiModel)

	srv := &http.Server{
		Addr:    port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}

// newRouter builds the gin engine with all routes and middleware.
func newRouter(cfg *config.Config, log *logger.Logger, suggestHandler *suggest.Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestLoggingMiddleware(log))

	// Operational endpoints
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "instance": logger.GetInstanceID()})
	})
	router.GET("/metrics", metrics.Handler())

	// Bundled UI
	router.StaticFile("/", "./web/index.html")

	// Internal endpoint, consumed by the bundled UI
	api := router.Group("/api")
	{
		api.POST("/suggest", suggestHandler.SuggestInternal)
	}

	// Public endpoint, CORS-enabled for third-party callers
	public := router.Group("/api/public")
	public.Use(corsMiddleware(cfg.CORSAllowedOrigins))
	{
		public.POST("/titles", suggestHandler.SuggestPublic)
		public.OPTIONS("/titles", func(c *gin.Context) {})
	}

	return router
}

// corsMiddleware adds the permissive cross-origin headers to every response
// on the group and answers pre-flight requests with 204 and no body.
func corsMiddleware(allowedOrigins string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowedOrigins)
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
