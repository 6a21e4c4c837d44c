package storage

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/denisok6893-rgb/date-outing-ai/internal/domain"
)

// LoadExperiencesFromFile reads a curated experience list from a JSON file.
// Used to override the built-in catalog without rebuilding the binary.
func LoadExperiencesFromFile(path string) ([]domain.Experience, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read experiences file: %w", err)
	}

	var exps []domain.Experience
	if err := json.Unmarshal(b, &exps); err != nil {
		return nil, fmt.Errorf("unmarshal experiences: %w", err)
	}
	return exps, nil
}

// LoadDetailsFromFile reads the title-to-detail mapping from a JSON file.
func LoadDetailsFromFile(path string) (map[string]domain.ExperienceDetail, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read details file: %w", err)
	}

	var details map[string]domain.ExperienceDetail
	if err := json.Unmarshal(b, &details); err != nil {
		return nil, fmt.Errorf("unmarshal details: %w", err)
	}
	return details, nil
}
