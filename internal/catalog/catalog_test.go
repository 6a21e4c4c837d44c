package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denisok6893-rgb/date-outing-ai/internal/domain"
)

func TestNew_RequiresExperiences(t *testing.T) {
	_, err := New(nil, BuiltinBands(), nil)
	require.ErrorIs(t, err, ErrNoExperiences)

	_, err = New([]domain.Experience{}, BuiltinBands(), nil)
	require.ErrorIs(t, err, ErrNoExperiences)
}

func TestBuiltin_CatalogShape(t *testing.T) {
	cat, err := Builtin()
	require.NoError(t, err)

	assert.Equal(t, 28, cat.Len())
	require.Len(t, cat.Bands(), 5)

	// Band order is the price scale, cheapest first.
	codes := make([]string, 0, 5)
	for _, b := range cat.Bands() {
		codes = append(codes, b.Code)
	}
	assert.Equal(t, []string{"¥", "¥¥", "¥¥¥", "¥¥¥¥", "¥プレミアム"}, codes)
}

func TestBandLookups(t *testing.T) {
	cat, err := Builtin()
	require.NoError(t, err)

	band, ok := cat.BandByCode("¥¥¥")
	require.True(t, ok)
	assert.Equal(t, "ちょっと贅沢", band.Label)

	pos, ok := cat.BandPosition("¥¥¥")
	require.True(t, ok)
	assert.Equal(t, 2, pos)

	_, ok = cat.BandByCode("$$$")
	assert.False(t, ok)
	_, ok = cat.BandPosition("$$$")
	assert.False(t, ok)
}

func TestDetailJoinByTitle(t *testing.T) {
	cat, err := Builtin()
	require.NoError(t, err)

	var withDetail, withoutDetail *domain.Experience
	for i := range cat.Experiences() {
		exp := &cat.Experiences()[i]
		switch exp.Title {
		case "銀座ミシュランディナーと夜景バー":
			withDetail = exp
		case "隅田川沿いナイトピクニック":
			withoutDetail = exp
		}
	}

	require.NotNil(t, withDetail)
	require.NotNil(t, withDetail.Detail)
	assert.Equal(t, "銀座・丸の内", withDetail.Detail.Neighborhood)

	require.NotNil(t, withoutDetail)
	assert.Nil(t, withoutDetail.Detail)
}

func TestNew_DetailJoinIgnoresUnknownTitles(t *testing.T) {
	exps := []domain.Experience{{City: "東京", Title: "テストプラン", DurationHours: 1, Highlights: []string{"x"}}}
	details := map[string]domain.ExperienceDetail{
		"別のプラン": {Neighborhood: "どこか"},
	}

	cat, err := New(exps, BuiltinBands(), details)
	require.NoError(t, err)
	assert.Nil(t, cat.Experiences()[0].Detail)
}

func TestNew_DoesNotAliasInputSlice(t *testing.T) {
	exps := []domain.Experience{{City: "東京", Title: "テストプラン", DurationHours: 1, Highlights: []string{"x"}}}
	cat, err := New(exps, BuiltinBands(), nil)
	require.NoError(t, err)

	exps[0].Title = "書き換え"
	assert.Equal(t, "テストプラン", cat.Experiences()[0].Title)
}

func TestBuiltinExperiences_DataInvariants(t *testing.T) {
	bands := map[string]bool{}
	for _, b := range BuiltinBands() {
		bands[b.Code] = true
	}

	for _, exp := range BuiltinExperiences() {
		assert.NotEmpty(t, exp.City, exp.Title)
		assert.NotEmpty(t, exp.Title)
		assert.Positive(t, exp.DurationHours, exp.Title)
		assert.NotEmpty(t, exp.Highlights, exp.Title)
		assert.True(t, bands[exp.Budget], "unknown budget %q on %q", exp.Budget, exp.Title)
	}
}
