package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jwaldner/tarpon/internal/config"
	"github.com/jwaldner/tarpon/internal/heatmap"
	"github.com/jwaldner/tarpon/internal/logger"
	"github.com/jwaldner/tarpon/internal/models"
	"github.com/jwaldner/tarpon/internal/pricing"
)

// Version reported by the health endpoint.
const Version = "1.2.0"

// PricerHandler serves the pricing page and API - DUMB HTTP layer only.
// All numeric work happens in internal/pricing; this layer validates,
// delegates, and formats.
type PricerHandler struct {
	config   *config.Config
	validate *validator.Validate
}

// NewPricerHandler creates a new pricer handler - just HTTP routing
func NewPricerHandler(cfg *config.Config) *PricerHandler {
	return &PricerHandler{
		config:   cfg,
		validate: validator.New(),
	}
}

// Validation failures mapped to the message shown to the user. Field names
// match the PriceRequest struct.
var fieldMessages = map[string]string{
	"Spot":       "Spot price must be greater than 0",
	"Strike":     "Strike price must be greater than 0",
	"Maturity":   "Time to maturity must be greater than 0",
	"Rate":       "Risk-free rate must be between -1 and 1",
	"Volatility": "Volatility must be greater than 0 and at most 5",
	"MinSpot":    "Min spot price must be greater than 0",
	"MaxSpot":    "Max spot price must be at least the min spot price",
	"MinVol":     "Min volatility must be above 0 and at most 1",
	"MaxVol":     "Max volatility must be between min volatility and 1",
	"Steps":      "Heatmap steps must be between 2 and 50",
}

// HomeHandler serves the main web interface
func (h *PricerHandler) HomeHandler(w http.ResponseWriter, r *http.Request) {
	// Template functions provide ALL frontend defaults from backend config
	funcMap := template.FuncMap{
		"appTitle": func() string {
			return "🐟 Tarpon - Black-Scholes Option Pricing"
		},
		"appDescription": func() string {
			return "European call and put prices with a spot/volatility sensitivity heatmap"
		},

		// Form defaults (calculated by backend config)
		"defaultSpot":       func() float64 { return h.config.Pricing.Spot },
		"defaultStrike":     func() float64 { return h.config.Pricing.Strike },
		"defaultMaturity":   func() float64 { return h.config.Pricing.Maturity },
		"defaultVolatility": func() float64 { return h.config.Pricing.Volatility },
		"defaultRate":       func() float64 { return h.config.Pricing.Rate },

		// Sweep defaults and bounds
		"defaultMinSpot": func() float64 { return h.config.Sweep.MinSpot },
		"defaultMaxSpot": func() float64 { return h.config.Sweep.MaxSpot },
		"defaultMinVol":  func() float64 { return h.config.Sweep.MinVol },
		"defaultMaxVol":  func() float64 { return h.config.Sweep.MaxVol },
		"defaultSteps":   func() int { return h.config.Sweep.Steps },
		"maxSteps":       func() int { return h.config.Sweep.MaxSteps },

		// The slider floor stays above zero so a degenerate sigma is not
		// reachable from the UI at all.
		"volSliderMin":  func() float64 { return 0.01 },
		"volSliderMax":  func() float64 { return 1.0 },
		"volSliderStep": func() float64 { return 0.01 },

		// Form labels (backend controlled)
		"spotLabel":       func() string { return "💵 Current Asset Price (S)" },
		"strikeLabel":     func() string { return "🎯 Strike Price (K)" },
		"maturityLabel":   func() string { return "📅 Time to Maturity (T, years)" },
		"volatilityLabel": func() string { return "🌊 Volatility (σ)" },
		"rateLabel":       func() string { return "🏦 Risk-Free Rate (r)" },
		"computeButtonText": func() string {
			return "🔍 Compute Prices"
		},

		// Error messages (backend controlled)
		"errorMessages": func() map[string]string {
			return map[string]string{
				"requestFailed": "Pricing request failed:",
				"badInput":      "Please correct the highlighted inputs",
				"copyFailed":    "Failed to copy to clipboard. Please copy manually:",
				"copySuccess":   "CSV data copied to clipboard",
			}
		},

		"exportButtonText": func() string { return "📋 Export CSV" },
		"loadingText":      func() string { return "Computing price grid..." },
	}

	tmpl, err := template.New("home.html").Funcs(funcMap).ParseFiles("web/templates/home.html")
	if err != nil {
		logger.Error.Printf("❌ Template error: %v", err)
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// Execute template with no data - everything comes from template functions
	if err := tmpl.Execute(w, nil); err != nil {
		logger.Error.Printf("❌ Template execution error: %v", err)
		http.Error(w, "Template execution error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	logger.Info.Printf("📄 Pricing page served")
}

// PriceHandler evaluates the closed form and the sensitivity sweep for one
// set of inputs and returns prices plus both annotated heatmaps.
func (h *PricerHandler) PriceHandler(w http.ResponseWriter, r *http.Request) {
	// CORS headers for browser compatibility
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only POST is supported")
		return
	}

	var req models.PriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn.Printf("⚠️ Rejected malformed request body: %v", err)
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "Request body is not valid JSON")
		return
	}

	if req.Steps == 0 {
		req.Steps = h.config.Sweep.Steps
	}

	// Bad input is rejected here, before the pricer runs: non-positive
	// model inputs, the sigma floor, min > max ranges.
	if err := h.validate.Struct(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			msg := fieldMessages[verrs[0].Field()]
			if msg == "" {
				msg = fmt.Sprintf("Invalid value for %s", verrs[0].Field())
			}
			logger.Warn.Printf("⚠️ Validation failed: %s (field %s, tag %s)", msg, verrs[0].Field(), verrs[0].Tag())
			writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", msg)
			return
		}
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}

	startTime := time.Now()

	logger.Debug.Printf("=== PRICING REQUEST ===")
	logger.Debug.Printf("S=%.4f K=%.4f T=%.4f r=%.4f σ=%.4f", req.Spot, req.Strike, req.Maturity, req.Rate, req.Volatility)
	logger.Debug.Printf("Sweep: spot [%.2f, %.2f] vol [%.2f, %.2f] steps=%d", req.MinSpot, req.MaxSpot, req.MinVol, req.MaxVol, req.Steps)

	inputs := pricing.Inputs{
		Spot:       req.Spot,
		Strike:     req.Strike,
		Maturity:   req.Maturity,
		Rate:       req.Rate,
		Volatility: req.Volatility,
	}

	call, err := pricing.Price(inputs, pricing.Call)
	if err != nil {
		logger.Error.Printf("❌ Call pricing failed after validation: %v", err)
		writeError(w, http.StatusBadRequest, "PRICING_FAILED", err.Error())
		return
	}
	put, err := pricing.Price(inputs, pricing.Put)
	if err != nil {
		logger.Error.Printf("❌ Put pricing failed after validation: %v", err)
		writeError(w, http.StatusBadRequest, "PRICING_FAILED", err.Error())
		return
	}

	grid, err := pricing.Sweep(
		req.Strike, req.Maturity, req.Rate,
		pricing.Range{Min: req.MinSpot, Max: req.MaxSpot},
		pricing.Range{Min: req.MinVol, Max: req.MaxVol},
		req.Steps,
	)
	if err != nil {
		logger.Error.Printf("❌ Sweep failed after validation: %v", err)
		writeError(w, http.StatusBadRequest, "SWEEP_FAILED", err.Error())
		return
	}

	duration := time.Since(startTime)
	evaluations := 2 + 2*req.Steps*req.Steps

	logger.Info.Printf("💰 Priced call=%s put=%s | %dx%d grid | %d evaluations | %.3fms",
		formatPrice(call), formatPrice(put), req.Steps, req.Steps, evaluations,
		float64(duration.Nanoseconds())/1e6)

	response := models.PriceResponse{
		Success: true,
		Data: models.PriceData{
			Call:    fieldValue(call),
			Put:     fieldValue(put),
			Heatmap: buildHeatmap(grid),
		},
		Meta: models.ResponseMetadata{
			Timestamp:      time.Now().Format(time.RFC3339),
			ProcessingTime: duration.Seconds(),
			Steps:          req.Steps,
			Evaluations:    evaluations,
		},
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error.Printf("❌ Failed to encode response: %v", err)
	}
}

// HealthHandler reports service status
func (h *PricerHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"version": Version,
	})
}

// buildHeatmap converts a sweep grid into the wire shape: raw values,
// 2-decimal annotations, per-cell colors (cividis for calls, magma for
// puts, matching the palettes of the reference charts), and rounded tick
// labels.
func buildHeatmap(grid *pricing.SweepGrid) models.Heatmap {
	return models.Heatmap{
		Spots:     grid.Spots,
		Vols:      grid.Vols,
		SpotTicks: formatAxis(grid.Spots),
		VolTicks:  formatAxis(grid.Vols),
		Call: models.HeatmapGrid{
			Values:  grid.Call,
			Display: formatGrid(grid.Call),
			Colors:  heatmap.Colorize(grid.Call, heatmap.Cividis),
		},
		Put: models.HeatmapGrid{
			Values:  grid.Put,
			Display: formatGrid(grid.Put),
			Colors:  heatmap.Colorize(grid.Put, heatmap.Magma),
		},
	}
}

// formatPrice rounds for display only; raw values stay untouched in the
// response so rounding never feeds back into the numbers.
func formatPrice(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func fieldValue(v float64) models.FieldValue {
	return models.FieldValue{Raw: v, Display: formatPrice(v)}
}

func formatAxis(samples []float64) []string {
	ticks := make([]string, len(samples))
	for i, v := range samples {
		ticks[i] = formatPrice(v)
	}
	return ticks
}

func formatGrid(values [][]float64) [][]string {
	display := make([][]string, len(values))
	for i, row := range values {
		display[i] = make([]string, len(row))
		for j, v := range row {
			display[i][j] = formatPrice(v)
		}
	}
	return display
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error:   code,
		Message: message,
	})
}
