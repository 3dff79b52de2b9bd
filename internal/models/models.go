package models

// FieldValue represents a value with both raw data and formatted display
type FieldValue struct {
	Raw     float64 `json:"raw"`     // For recomputation/sorting: 10.450583...
	Display string  `json:"display"` // For UI: "10.45"
}

// PriceRequest is the JSON body accepted by /api/price. Validation tags
// enforce the input boundary: positive model inputs, ordered sweep ranges,
// and a strictly positive volatility floor so no degenerate value reaches
// the pricer.
type PriceRequest struct {
	Spot       float64 `json:"spot" validate:"gt=0"`
	Strike     float64 `json:"strike" validate:"gt=0"`
	Maturity   float64 `json:"maturity" validate:"gt=0"`
	Rate       float64 `json:"rate" validate:"gte=-1,lte=1"`
	Volatility float64 `json:"volatility" validate:"gt=0,lte=5"`

	MinSpot float64 `json:"min_spot" validate:"gt=0"`
	MaxSpot float64 `json:"max_spot" validate:"gtefield=MinSpot"`
	MinVol  float64 `json:"min_vol" validate:"gt=0,lte=1"`
	MaxVol  float64 `json:"max_vol" validate:"gtefield=MinVol,lte=1"`

	// 0 means "use the configured default"
	Steps int `json:"steps" validate:"omitempty,gte=2,lte=50"`
}

// HeatmapGrid carries one option side of the sweep: raw cell values, their
// 2-decimal annotations, and a background color per cell.
type HeatmapGrid struct {
	Values  [][]float64 `json:"values"`
	Display [][]string  `json:"display"`
	Colors  [][]string  `json:"colors"`
}

// Heatmap bundles both grids with their shared axes. Tick labels are the
// rounded sample values, rows ascending volatility, columns ascending spot.
type Heatmap struct {
	Spots     []float64   `json:"spots"`
	Vols      []float64   `json:"vols"`
	SpotTicks []string    `json:"spot_ticks"`
	VolTicks  []string    `json:"vol_ticks"`
	Call      HeatmapGrid `json:"call"`
	Put       HeatmapGrid `json:"put"`
}

// PriceData is the payload of a successful pricing response.
type PriceData struct {
	Call    FieldValue `json:"call"`
	Put     FieldValue `json:"put"`
	Heatmap Heatmap    `json:"heatmap"`
}

type ResponseMetadata struct {
	Timestamp      string  `json:"timestamp"`
	ProcessingTime float64 `json:"processing_time"`
	Steps          int     `json:"steps"`
	Evaluations    int     `json:"evaluations"`
}

// PriceResponse represents the complete API response
type PriceResponse struct {
	Success bool             `json:"success"`
	Data    PriceData        `json:"data"`
	Meta    ResponseMetadata `json:"meta"`
}

// ErrorResponse is the 4xx/5xx body shape
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
