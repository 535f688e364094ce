package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/themobileprof/symptom-checker-be/internal/analysis"
	"github.com/themobileprof/symptom-checker-be/internal/api"
	"github.com/themobileprof/symptom-checker-be/internal/api/middleware"
	"github.com/themobileprof/symptom-checker-be/internal/catalog"
	"github.com/themobileprof/symptom-checker-be/internal/checker"
	"github.com/themobileprof/symptom-checker-be/internal/config"
	"github.com/themobileprof/symptom-checker-be/internal/db"
	"github.com/themobileprof/symptom-checker-be/internal/firstmeasures"
	"github.com/themobileprof/symptom-checker-be/internal/logging"
	"github.com/themobileprof/symptom-checker-be/internal/recommend"
	"github.com/themobileprof/symptom-checker-be/internal/ws"
	"github.com/themobileprof/symptom-checker-be/pkg/gemini"
	"github.com/themobileprof/symptom-checker-be/pkg/llm"
	"github.com/themobileprof/symptom-checker-be/pkg/openai"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	// Scheme storage: Postgres when configured, the built-in table otherwise
	var schemes db.SchemeStore = db.StaticSchemes{}
	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.New(cfg.DatabaseURL, db.DefaultPool)
		if err != nil {
			logger.WithError(err).Fatal("Failed to connect to database")
		}
		defer database.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := database.Migrate(ctx); err != nil {
			cancel()
			logger.WithError(err).Fatal("Failed to migrate database")
		}
		seeded, err := database.SeedSchemes(ctx, catalog.StateSchemes())
		cancel()
		if err != nil {
			logger.WithError(err).Fatal("Failed to seed schemes")
		}
		schemes = database
		logger.WithField("seeded", seeded).Info("Database connected")
	} else {
		logger.Info("DATABASE_URL not set, serving built-in scheme table")
	}

	// Model clients stay nil interfaces when unconfigured so the
	// components take their fallback paths.
	var analysisClient, gatewayClient llm.Client
	if cfg.AnalysisConfigured() {
		analysisClient = gemini.NewHTTPClient(gemini.Config{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			Timeout: cfg.AnalysisTimeout,
		})
		logger.WithField("model", cfg.Gemini.Model).Info("AI analysis enabled")
	} else {
		logger.Warn("GEMINI_API_KEY not set, AI analysis disabled")
	}
	if cfg.FirstMeasuresConfigured() {
		gatewayClient = openai.NewHTTPClient(openai.Config{
			APIKey:  cfg.Gateway.APIKey,
			BaseURL: cfg.Gateway.BaseURL,
			Model:   cfg.Gateway.Model,
			Timeout: cfg.FirstMeasuresTimeout,
		})
		logger.WithField("model", cfg.Gateway.Model).Info("AI first measures enabled")
	} else {
		logger.Warn("AI_GATEWAY_API_KEY not set, first measures use fallback tips")
	}

	analyzer := analysis.NewAnalyzer(analysisClient, analysis.Config{
		Model:        cfg.Gemini.Model,
		Timeout:      cfg.AnalysisTimeout,
		MaxFailures:  cfg.Breaker.MaxFailures,
		ResetTimeout: cfg.Breaker.ResetTimeout,
	}, logger)
	advisor := firstmeasures.NewAdvisor(gatewayClient, firstmeasures.Config{
		Model:     cfg.Gateway.Model,
		Timeout:   cfg.FirstMeasuresTimeout,
		CacheSize: cfg.FirstMeasuresCache.Size,
		CacheTTL:  cfg.FirstMeasuresCache.TTL,
	}, logger)
	chk := checker.New(recommend.NewEngine(), analyzer, advisor, logger)

	// Initialize handlers
	symptomHandler := api.NewSymptomHandler(chk, analyzer, advisor, logger)
	catalogHandler := api.NewCatalogHandler(schemes, logger)
	checkHandler := ws.NewCheckHandler(chk, logger, cfg.RateLimit.WSPerMinute, cfg.RateLimit.WSBurst)

	// Setup Gin router
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger))
	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(cfg.CORSOrigins...))

	router.GET("/health", api.Health(analyzer.Configured(), gatewayClient != nil, database != nil))

	apiGroup := router.Group("/api")
	apiGroup.Use(middleware.PerIP(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst))
	{
		apiGroup.POST("/analyze-symptoms", symptomHandler.Analyze)
		apiGroup.POST("/first-measures", symptomHandler.FirstMeasures)
		apiGroup.POST("/recommendations", symptomHandler.Recommend)
		apiGroup.POST("/check", symptomHandler.Check)

		apiGroup.GET("/specialists", catalogHandler.ListSpecialists)
		apiGroup.GET("/specialists/:key/schemes", catalogHandler.SpecialistSchemes)
		apiGroup.GET("/schemes", catalogHandler.ListSchemes)
		apiGroup.GET("/schemes/states", catalogHandler.ListStates)
		apiGroup.GET("/schemes/portability", catalogHandler.Portability)
		apiGroup.GET("/schemes/:id", catalogHandler.GetScheme)
	}

	// WebSocket check route, limited per connection
	router.GET("/ws/check", checkHandler.HandleCheck)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.WithField("port", cfg.Port).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server exited")
}
