package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/feescope/feescope-api/internal/client/bybit"
	"github.com/feescope/feescope-api/internal/client/etherscan"
	"github.com/feescope/feescope-api/internal/config"
	"github.com/feescope/feescope-api/internal/handlers"
	"github.com/feescope/feescope-api/internal/middleware"
	"github.com/feescope/feescope-api/internal/services"
)

// Handler definitions
var (
	analysisHandler *handlers.AnalysisHandler
	healthHandler   *handlers.HealthHandler
)

// InitializeHandlers wires clients, services and handlers from the
// configuration. Both upstream clients are constructed once and shared for
// the lifetime of the process.
func InitializeHandlers(cfg *config.Config) {
	explorerClient := etherscan.NewClient(cfg.EtherscanAPIKey,
		etherscan.WithBaseURL(cfg.EtherscanBaseURL),
		etherscan.WithTimeout(cfg.UpstreamTimeout),
	)
	exchangeClient := bybit.NewClient(
		bybit.WithBaseURL(cfg.BybitBaseURL),
		bybit.WithTimeout(cfg.UpstreamTimeout),
	)

	priceService := services.NewPriceService(exchangeClient)
	analysisService := services.NewAnalysisService(explorerClient, priceService, services.AnalysisConfig{
		NativePair:              cfg.NativePair,
		TargetPair:              cfg.TargetPair,
		MaxConcurrentValuations: cfg.MaxConcurrentValuations,
	})

	analysisHandler = handlers.NewAnalysisHandler(analysisService)
	healthHandler = handlers.NewHealthHandler()
}

// InitializeRoutes registers middleware, API routes and the static form.
func InitializeRoutes(r *gin.Engine) {
	r.Use(middleware.CorrelationIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.CorrelationIDHeader},
		ExposeHeaders:    []string{middleware.CorrelationIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", healthHandler.Health)
	r.POST("/analyze", analysisHandler.Analyze)

	// Browser form; thin collaborator around the API.
	r.Static("/app", "./web")
	r.GET("/", func(c *gin.Context) {
		c.Redirect(302, "/app/")
	})
}
