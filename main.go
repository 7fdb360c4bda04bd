package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/brandforge/brandforge/api"
	"github.com/brandforge/brandforge/archive"
	"github.com/brandforge/brandforge/brand"
	"github.com/brandforge/brandforge/config"
	"github.com/brandforge/brandforge/openai"
	"github.com/brandforge/brandforge/policy"
	"github.com/brandforge/brandforge/proxy"
	"github.com/brandforge/brandforge/state"
	"github.com/brandforge/brandforge/store"
)

func main() {
	// Load .env if present, then configuration
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment")
	}
	cfg := config.Load()

	log.Printf("Starting brandforge...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Database: %s", cfg.DatabaseURL)
	log.Printf("Provider URL: %s", cfg.OpenAIBaseURL)

	// Initialize store
	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer db.Close()

	// Initialize provider clients
	textClient := openai.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.LLMTimeout)
	imageClient := openai.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.ImageTimeout)

	// Initialize policy engine
	ctx := context.Background()
	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		log.Fatalf("Failed to initialize policy engine: %v", err)
	}

	// Initialize pipeline
	strategyRequester, err := brand.NewStrategyRequester(textClient, cfg.TextModel)
	if err != nil {
		log.Fatalf("Failed to initialize strategy requester: %v", err)
	}
	clientState := state.NewStore()
	generator := brand.NewGenerator(strategyRequester, imageClient, cfg.ImageModel, db, clientState, policyEngine)

	// Initialize archiver
	relay := proxy.NewClient(cfg.ProxyTimeout)
	kits := archive.NewKitBuilder(relay)

	// Initialize handler
	h := api.NewHandler(generator, imageClient, cfg.ImageModel, relay, kits, db, clientState)

	// Create Echo server
	server := echo.New()
	server.HideBanner = true

	// Middleware
	server.Use(middleware.Logger())
	server.Use(middleware.Recover())
	server.Use(middleware.CORS())

	// Register routes
	h.RegisterRoutes(server)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("API started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down brandforge...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Brandforge stopped")
}
