package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/jwaldner/tarpon/internal/config"
	"github.com/jwaldner/tarpon/internal/handlers"
	"github.com/jwaldner/tarpon/internal/logger"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()

	// Initialize proper logging with config level and file path
	if err := logger.InitWithConfig(cfg.Logging.LogLevel, cfg.Logging.LogFile); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger.Always.Printf("🐟 Tarpon Option Pricer starting - Port: %s", cfg.Port)

	if cfg.Logging.LogLevel == "verbose" {
		fmt.Printf("⚠️  VERBOSE LOGGING ENABLED - Per-request pricing detail will be logged to %s\n", cfg.Logging.LogFile)
	}

	logger.Info.Printf("📐 Pricing defaults: S=%.2f K=%.2f T=%.2f σ=%.2f r=%.2f",
		cfg.Pricing.Spot, cfg.Pricing.Strike, cfg.Pricing.Maturity, cfg.Pricing.Volatility, cfg.Pricing.Rate)
	logger.Info.Printf("🗺️  Sweep defaults: spot [%.0f, %.0f] vol [%.2f, %.2f] steps=%d (max %d)",
		cfg.Sweep.MinSpot, cfg.Sweep.MaxSpot, cfg.Sweep.MinVol, cfg.Sweep.MaxVol, cfg.Sweep.Steps, cfg.Sweep.MaxSteps)

	// Initialize handlers
	pricerHandler := handlers.NewPricerHandler(cfg)

	// Setup router
	r := mux.NewRouter()

	// Serve static files (CSS, JS) - NO REBUILD NEEDED
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("web/static/"))))

	// Main application endpoints
	r.HandleFunc("/", pricerHandler.HomeHandler).Methods("GET")
	r.HandleFunc("/api/price", pricerHandler.PriceHandler).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/health", pricerHandler.HealthHandler).Methods("GET")

	// Start server
	fmt.Printf("🌐 Server starting on http://localhost:%s\n", cfg.Port)
	logger.Always.Printf("🌐 Server starting on http://localhost:%s", cfg.Port)

	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
