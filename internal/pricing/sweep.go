package pricing

import "fmt"

// Range is an inclusive sweep interval.
type Range struct {
	Min float64
	Max float64
}

// InconsistentRangeError reports a sweep interval with min above max.
type InconsistentRangeError struct {
	Axis string
	Min  float64
	Max  float64
}

func (e *InconsistentRangeError) Error() string {
	return fmt.Sprintf("inconsistent %s range: min %g > max %g", e.Axis, e.Min, e.Max)
}

// SweepGrid holds call and put prices over a (volatility, spot) sampling.
// Rows follow ascending volatility, columns ascending spot, so
// Call[i][j] prices (Vols[i], Spots[j]) with strike/maturity/rate fixed.
type SweepGrid struct {
	Spots []float64
	Vols  []float64
	Call  [][]float64
	Put   [][]float64
}

// Linspace returns n evenly spaced samples across [min, max], both endpoints
// included. min == max yields a constant axis.
func Linspace(min, max float64, n int) []float64 {
	pts := make([]float64, n)
	if n == 1 {
		pts[0] = min
		return pts
	}
	step := (max - min) / float64(n-1)
	for i := range pts {
		pts[i] = min + float64(i)*step
	}
	pts[n-1] = max // land on the endpoint exactly
	return pts
}

// Sweep prices call and put across steps x steps combinations of spot and
// volatility, holding strike, maturity and rate fixed. 2*steps^2 closed-form
// evaluations in total. Ranges are validated up front so a bad interval is
// rejected before any cell is computed; the sweep has no partial-failure
// mode.
func Sweep(strike, maturity, rate float64, spots, vols Range, steps int) (*SweepGrid, error) {
	if steps < 1 {
		return nil, fmt.Errorf("sweep steps must be at least 1, got %d", steps)
	}
	if spots.Min > spots.Max {
		return nil, &InconsistentRangeError{Axis: "spot", Min: spots.Min, Max: spots.Max}
	}
	if vols.Min > vols.Max {
		return nil, &InconsistentRangeError{Axis: "volatility", Min: vols.Min, Max: vols.Max}
	}
	// A non-positive volatility sample would divide by zero inside the
	// closed form; refuse the whole sweep instead of rendering NaN cells.
	if vols.Min <= 0 {
		return nil, &DegenerateInputError{Field: "volatility", Value: vols.Min}
	}
	if spots.Min <= 0 {
		return nil, &DegenerateInputError{Field: "spot", Value: spots.Min}
	}

	grid := &SweepGrid{
		Spots: Linspace(spots.Min, spots.Max, steps),
		Vols:  Linspace(vols.Min, vols.Max, steps),
		Call:  make([][]float64, steps),
		Put:   make([][]float64, steps),
	}

	for i, sigma := range grid.Vols {
		grid.Call[i] = make([]float64, steps)
		grid.Put[i] = make([]float64, steps)
		for j, spot := range grid.Spots {
			in := Inputs{
				Spot:       spot,
				Strike:     strike,
				Maturity:   maturity,
				Rate:       rate,
				Volatility: sigma,
			}
			call, err := Price(in, Call)
			if err != nil {
				return nil, fmt.Errorf("sweep cell [%d][%d]: %w", i, j, err)
			}
			put, err := Price(in, Put)
			if err != nil {
				return nil, fmt.Errorf("sweep cell [%d][%d]: %w", i, j, err)
			}
			grid.Call[i][j] = call
			grid.Put[i][j] = put
		}
	}

	return grid, nil
}
