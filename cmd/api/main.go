package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/feescope/feescope-api/internal/config"
	"github.com/feescope/feescope-api/internal/logger"
	"github.com/feescope/feescope-api/internal/server"
)

func main() {
	// A missing .env file is fine; deployed stages set variables directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.InitLogger(cfg.Stage)
	defer func() { _ = logger.Sync() }()

	if cfg.Stage == config.StageProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	server.InitializeHandlers(cfg)
	server.InitializeRoutes(r)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
