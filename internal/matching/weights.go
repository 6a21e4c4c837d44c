package matching

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Weights defines the contribution of each matching signal. The defaults are
// the scoring contract; overriding them changes result ordering.
type Weights struct {
	CityMatch        float64 `json:"city_match"`
	BudgetExact      float64 `json:"budget_exact"`
	BudgetAdjacent   float64 `json:"budget_adjacent"`
	BudgetFarPricier float64 `json:"budget_far_pricier"`
	BudgetFarCheaper float64 `json:"budget_far_cheaper"`
	WeatherMatch     float64 `json:"weather_match"`
	MoodMatch        float64 `json:"mood_match"`
	ActivityMatch    float64 `json:"activity_match"`
	DurationFits     float64 `json:"duration_fits"`
	DurationOver     float64 `json:"duration_over"`
	HighlightStep    float64 `json:"highlight_step"`
	HighlightCap     float64 `json:"highlight_cap"`
}

// DefaultWeights returns the standard scoring constants. City dominates
// because it also gates inclusion; recommending a pricier band is penalized
// twice as hard as a cheaper one.
func DefaultWeights() Weights {
	return Weights{
		CityMatch:        2.0,
		BudgetExact:      1.0,
		BudgetAdjacent:   0.6,
		BudgetFarPricier: -0.4,
		BudgetFarCheaper: -0.2,
		WeatherMatch:     1.0,
		MoodMatch:        1.0,
		ActivityMatch:    0.5,
		DurationFits:     0.5,
		DurationOver:     -0.5,
		HighlightStep:    0.1,
		HighlightCap:     0.3,
	}
}

// LoadWeightsFromFile loads weights from a JSON file, returning the defaults
// alongside the error when the file cannot be used.
func LoadWeightsFromFile(path string) (Weights, error) {
	w := DefaultWeights()
	b, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("read weights file: %w", err)
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return DefaultWeights(), fmt.Errorf("unmarshal weights: %w", err)
	}
	return w, nil
}
