package main

import (
	"fmt"
	"log"
	"math"

	"github.com/jwaldner/tarpon/internal/pricing"
)

// Quick sanity harness for the closed form against the textbook reference
// case (call ~10.45, put ~5.57) and put-call parity.
func main() {
	fmt.Println("🎯 Checking Closed-Form Accuracy")
	fmt.Println("================================")

	in := pricing.Inputs{
		Spot:       100,
		Strike:     100,
		Maturity:   1,
		Rate:       0.05,
		Volatility: 0.20,
	}

	fmt.Printf("📊 Input Parameters:\n")
	fmt.Printf("   Spot (S): $%.2f\n", in.Spot)
	fmt.Printf("   Strike (K): $%.2f\n", in.Strike)
	fmt.Printf("   Maturity (T): %.2f years\n", in.Maturity)
	fmt.Printf("   Risk-free Rate (r): %.4f\n", in.Rate)
	fmt.Printf("   Volatility (σ): %.4f\n", in.Volatility)
	fmt.Println()

	call, err := pricing.Price(in, pricing.Call)
	if err != nil {
		log.Fatalf("❌ Call pricing failed: %v", err)
	}
	put, err := pricing.Price(in, pricing.Put)
	if err != nil {
		log.Fatalf("❌ Put pricing failed: %v", err)
	}

	fmt.Printf("Call price: %.6f (expected ~10.450584)\n", call)
	fmt.Printf("Put price:  %.6f (expected ~5.573526)\n", put)
	fmt.Println()

	parityGap := (call - put) - (in.Spot - in.Strike*math.Exp(-in.Rate*in.Maturity))
	fmt.Printf("Put-call parity gap: %.3e\n", parityGap)

	if math.Abs(call-10.450584) < 0.01 && math.Abs(put-5.573526) < 0.01 && math.Abs(parityGap) < 1e-9 {
		fmt.Println("✅ Closed form matches reference values")
	} else {
		fmt.Println("❌ MISMATCH - closed form drifted from reference values")
	}
}
