package config

import (
	"os"
	"testing"
)

func TestDefaultPricingInputs(t *testing.T) {
	os.Unsetenv("DEFAULT_SPOT")
	os.Unsetenv("DEFAULT_VOLATILITY")

	cfg := Load()

	if cfg.Pricing.Spot != 100 {
		t.Errorf("Expected default spot 100, got %v", cfg.Pricing.Spot)
	}
	if cfg.Pricing.Strike != 100 {
		t.Errorf("Expected default strike 100, got %v", cfg.Pricing.Strike)
	}
	if cfg.Pricing.Maturity != 1 {
		t.Errorf("Expected default maturity 1, got %v", cfg.Pricing.Maturity)
	}
	if cfg.Pricing.Volatility != 0.2 {
		t.Errorf("Expected default volatility 0.2, got %v", cfg.Pricing.Volatility)
	}
	if cfg.Pricing.Rate != 0.05 {
		t.Errorf("Expected default rate 0.05, got %v", cfg.Pricing.Rate)
	}
}

func TestDefaultSweepSettings(t *testing.T) {
	os.Unsetenv("SWEEP_STEPS")

	cfg := Load()

	if cfg.Sweep.Steps != 10 {
		t.Errorf("Expected default sweep steps 10, got %d", cfg.Sweep.Steps)
	}
	if cfg.Sweep.MinSpot != 50 || cfg.Sweep.MaxSpot != 150 {
		t.Errorf("Expected default spot range [50,150], got [%v,%v]", cfg.Sweep.MinSpot, cfg.Sweep.MaxSpot)
	}
	if cfg.Sweep.MinVol != 0.1 || cfg.Sweep.MaxVol != 0.5 {
		t.Errorf("Expected default vol range [0.1,0.5], got [%v,%v]", cfg.Sweep.MinVol, cfg.Sweep.MaxVol)
	}
}

func TestSweepStepsEnvOverride(t *testing.T) {
	os.Setenv("SWEEP_STEPS", "25")
	defer os.Unsetenv("SWEEP_STEPS")

	cfg := Load()

	if cfg.Sweep.Steps != 25 {
		t.Errorf("Expected sweep steps 25 from env, got %d", cfg.Sweep.Steps)
	}
}

func TestStepsClampedToMaxSteps(t *testing.T) {
	os.Setenv("SWEEP_STEPS", "500")
	defer os.Unsetenv("SWEEP_STEPS")

	cfg := Load()

	if cfg.Sweep.Steps != cfg.Sweep.MaxSteps {
		t.Errorf("Expected steps clamped to max %d, got %d", cfg.Sweep.MaxSteps, cfg.Sweep.Steps)
	}
}

func TestPortEnvOverride(t *testing.T) {
	os.Setenv("PORT", "9191")
	defer os.Unsetenv("PORT")

	cfg := Load()

	if cfg.Port != "9191" {
		t.Errorf("Expected port 9191 from env, got %s", cfg.Port)
	}
}
