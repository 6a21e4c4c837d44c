package matching

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeights_Contract(t *testing.T) {
	w := DefaultWeights()

	assert.Equal(t, 2.0, w.CityMatch)
	assert.Equal(t, 1.0, w.BudgetExact)
	assert.Equal(t, 0.6, w.BudgetAdjacent)
	assert.Equal(t, -0.4, w.BudgetFarPricier)
	assert.Equal(t, -0.2, w.BudgetFarCheaper)
	assert.Equal(t, 1.0, w.WeatherMatch)
	assert.Equal(t, 1.0, w.MoodMatch)
	assert.Equal(t, 0.5, w.ActivityMatch)
	assert.Equal(t, 0.5, w.DurationFits)
	assert.Equal(t, -0.5, w.DurationOver)
	assert.Equal(t, 0.1, w.HighlightStep)
	assert.Equal(t, 0.3, w.HighlightCap)

	// The pricier miss is penalized exactly twice as hard as the cheaper one.
	assert.Equal(t, 2*w.BudgetFarCheaper, w.BudgetFarPricier)
}

func TestLoadWeightsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"city_match": 3.5}`), 0o600))

	w, err := LoadWeightsFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3.5, w.CityMatch)
	// Unset fields keep their defaults.
	assert.Equal(t, 1.0, w.BudgetExact)
}

func TestLoadWeightsFromFile_MissingFallsBackToDefaults(t *testing.T) {
	w, err := LoadWeightsFromFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Equal(t, DefaultWeights(), w)
}
