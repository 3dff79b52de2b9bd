package pricing

import (
	"errors"
	"fmt"
	"math"
)

// OptionKind selects which side of the closed form is evaluated. Keeping it
// an enum (rather than the wire string) means a third variant cannot fall
// through silently.
type OptionKind int

const (
	Call OptionKind = iota
	Put
)

func (k OptionKind) String() string {
	switch k {
	case Call:
		return "call"
	case Put:
		return "put"
	}
	return fmt.Sprintf("OptionKind(%d)", int(k))
}

// ParseKind converts the wire value ("call" or "put") into an OptionKind.
func ParseKind(s string) (OptionKind, error) {
	switch s {
	case "call":
		return Call, nil
	case "put":
		return Put, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// ErrInvalidKind reports an option kind outside {call, put}.
var ErrInvalidKind = errors.New("option kind must be \"call\" or \"put\"")

// DegenerateInputError reports an input that would put a zero or a negative
// number into a log, a square root, or a denominator of the closed form.
type DegenerateInputError struct {
	Field string
	Value float64
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("degenerate input: %s must be > 0, got %g", e.Field, e.Value)
}

// Inputs holds the five scalars of the Black-Scholes model. The struct has
// no identity beyond its field values; every evaluation takes a fresh copy.
type Inputs struct {
	Spot       float64 // S, current price of the underlying
	Strike     float64 // K
	Maturity   float64 // T, in years
	Rate       float64 // r, may be negative
	Volatility float64 // sigma, annualized
}

func (in Inputs) validate() error {
	switch {
	case in.Spot <= 0:
		return &DegenerateInputError{Field: "spot", Value: in.Spot}
	case in.Strike <= 0:
		return &DegenerateInputError{Field: "strike", Value: in.Strike}
	case in.Maturity <= 0:
		return &DegenerateInputError{Field: "maturity", Value: in.Maturity}
	case in.Volatility <= 0:
		return &DegenerateInputError{Field: "volatility", Value: in.Volatility}
	}
	return nil
}

// Price evaluates the Black-Scholes closed form for a European option.
//
//	d1 = (ln(S/K) + (r + sigma^2/2)*T) / (sigma*sqrt(T))
//	d2 = d1 - sigma*sqrt(T)
//	call = S*N(d1) - K*e^(-rT)*N(d2)
//	put  = K*e^(-rT)*N(-d2) - S*N(-d1)
//
// Degenerate inputs (sigma or T at or below zero would divide by zero) are
// rejected with a DegenerateInputError instead of propagating NaN.
func Price(in Inputs, kind OptionKind) (float64, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}

	sqrtT := math.Sqrt(in.Maturity)
	d1 := (math.Log(in.Spot/in.Strike) + (in.Rate+0.5*in.Volatility*in.Volatility)*in.Maturity) / (in.Volatility * sqrtT)
	d2 := d1 - in.Volatility*sqrtT
	discount := math.Exp(-in.Rate * in.Maturity)

	switch kind {
	case Call:
		return in.Spot*normCDF(d1) - in.Strike*discount*normCDF(d2), nil
	case Put:
		return in.Strike*discount*normCDF(-d2) - in.Spot*normCDF(-d1), nil
	}
	return 0, fmt.Errorf("%w: got %d", ErrInvalidKind, int(kind))
}

// normCDF is the standard normal CDF via the error function. No polynomial
// shortcuts; math.Erf is accurate to double precision.
func normCDF(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}
