package main

import (
	"fmt"
	"log"
	"os"

	"github.com/nutrilog/backend/config"
	httpDelivery "github.com/nutrilog/backend/internal/delivery/http"
	"github.com/nutrilog/backend/internal/domain"
	"github.com/nutrilog/backend/internal/infrastructure/cache"
	"github.com/nutrilog/backend/internal/infrastructure/clock"
	"github.com/nutrilog/backend/internal/infrastructure/openfoodfacts"
	"github.com/nutrilog/backend/internal/infrastructure/store"
	"github.com/nutrilog/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting NutriLog Backend v1.1.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Timezone: %s", cfg.Server.Timezone)

	// Initialize infrastructure dependencies
	fixedClock, err := clock.NewFixed(cfg.Server.Timezone)
	if err != nil {
		log.Fatalf("Failed to initialize clock: %v", err)
	}

	var entryStore domain.EntryStore
	storageEnabled := cfg.Storage.Type == "sqlite"
	if storageEnabled {
		sqliteStore, err := store.NewSQLite(cfg.Storage.Path)
		if err != nil {
			log.Fatalf("Failed to open log store: %v", err)
		}
		defer sqliteStore.Close()
		entryStore = sqliteStore
		log.Printf("Log store: sqlite at %s", cfg.Storage.Path)
	} else {
		entryStore = store.Disabled{}
		log.Printf("WARNING: Log store disabled - writes will report logged=false")
	}

	productCache := cache.NewMemoryCache()
	log.Printf("Product cache TTL: %s", cfg.Cache.TTL)

	offClient := openfoodfacts.NewClient(cfg.OpenFoodFacts.BaseURL, cfg.OpenFoodFacts.Timeout)
	log.Printf("Open Food Facts API: %s (timeout: %s)", cfg.OpenFoodFacts.BaseURL, cfg.OpenFoodFacts.Timeout)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		offClient.SetDebug(true)
		log.Printf("Open Food Facts client debug mode enabled")
	}

	// Initialize usecase layer
	scanService := usecase.NewScanService(
		offClient,
		entryStore,
		productCache,
		fixedClock,
		usecase.ScanServiceConfig{
			CacheTTL: cfg.Cache.TTL,
		},
	)
	totalsService := usecase.NewTotalsService(entryStore)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(scanService, totalsService, fixedClock, storageEnabled)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
