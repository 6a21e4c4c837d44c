package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExperiencesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiences.json")
	payload := `[
  {
    "city": "東京",
    "title": "テストプラン",
    "description": "テスト",
    "activity_type": "アウトドア",
    "budget": "¥¥",
    "weather": "晴れ",
    "mood": "リラックス",
    "duration_hours": 3,
    "highlights": ["眺め"],
    "ideal_season": "春",
    "ideal_time": "午後"
  }
]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	exps, err := LoadExperiencesFromFile(path)
	require.NoError(t, err)
	require.Len(t, exps, 1)
	assert.Equal(t, "テストプラン", exps[0].Title)
	assert.Equal(t, 3, exps[0].DurationHours)
	assert.Nil(t, exps[0].Detail)
}

func TestLoadExperiencesFromFile_Missing(t *testing.T) {
	_, err := LoadExperiencesFromFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadExperiencesFromFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiences.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "a list"`), 0o600))

	_, err := LoadExperiencesFromFile(path)
	require.Error(t, err)
}

func TestLoadDetailsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "details.json")
	payload := `{
  "テストプラン": {
    "neighborhood": "浅草",
    "languages": ["日本語"]
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	details, err := LoadDetailsFromFile(path)
	require.NoError(t, err)
	require.Contains(t, details, "テストプラン")
	assert.Equal(t, "浅草", details["テストプラン"].Neighborhood)
}
