package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denisok6893-rgb/date-outing-ai/internal/catalog"
	"github.com/denisok6893-rgb/date-outing-ai/internal/domain"
)

func testExperience(title, city, budget string, hours int, highlights int) domain.Experience {
	hl := make([]string, 0, highlights)
	for i := 0; i < highlights; i++ {
		hl = append(hl, "見どころ")
	}
	return domain.Experience{
		City:          city,
		Title:         title,
		Description:   "テストプラン",
		ActivityType:  "アウトドア",
		Budget:        budget,
		Weather:       "晴れ",
		Mood:          "リラックス",
		DurationHours: hours,
		Highlights:    hl,
		IdealSeason:   "オールシーズン",
		IdealTime:     "終日",
	}
}

func newTestEngine(t *testing.T, exps []domain.Experience) *Engine {
	t.Helper()
	cat, err := catalog.New(exps, catalog.BuiltinBands(), nil)
	require.NoError(t, err)
	engine, err := NewEngine(cat, DefaultWeights())
	require.NoError(t, err)
	return engine
}

func TestNewEngine_EmptyCatalog(t *testing.T) {
	_, err := catalog.New(nil, catalog.BuiltinBands(), nil)
	require.ErrorIs(t, err, catalog.ErrNoExperiences)

	_, err = NewEngine(nil, DefaultWeights())
	require.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestRecommend_NoCityFilterKeepsEverything(t *testing.T) {
	engine := newTestEngine(t, []domain.Experience{
		testExperience("A", "東京", "¥¥", 3, 1),
		testExperience("B", "京都", "¥", 2, 1),
		testExperience("C", "大阪", "¥¥¥", 4, 1),
	})

	recs := engine.Recommend(domain.RecommendationRequest{Limit: 10})
	require.Len(t, recs, 3)
}

func TestRecommend_CityFilterIsSubstringMatch(t *testing.T) {
	engine := newTestEngine(t, []domain.Experience{
		testExperience("A", "東京", "¥¥", 3, 1),
		testExperience("B", "東京・奥多摩", "¥", 5, 1),
		testExperience("C", "京都", "¥¥", 2, 1),
	})

	recs := engine.Recommend(domain.RecommendationRequest{City: "東京", Limit: 10})
	require.Len(t, recs, 2)
	for _, rec := range recs {
		assert.Contains(t, rec.Experience.City, "東京")
	}
}

func TestRecommend_CityAliasMatchesLocalName(t *testing.T) {
	engine := newTestEngine(t, []domain.Experience{
		testExperience("A", "東京", "¥¥", 3, 1),
		testExperience("B", "京都", "¥", 2, 1),
	})

	byAlias := engine.Recommend(domain.RecommendationRequest{City: "tokyo", Limit: 10})
	byLocal := engine.Recommend(domain.RecommendationRequest{City: "東京", Limit: 10})

	require.Len(t, byAlias, 1)
	require.Len(t, byLocal, 1)
	assert.Equal(t, byLocal[0].Experience.Title, byAlias[0].Experience.Title)
	assert.Equal(t, byLocal[0].Score, byAlias[0].Score)
}

func TestCanonicalCity(t *testing.T) {
	assert.Equal(t, "東京", CanonicalCity("tokyo"))
	assert.Equal(t, "東京", CanonicalCity("  TOKYO "))
	assert.Equal(t, "金沢", CanonicalCity("kanazawa"))
	assert.Equal(t, "ならまち", CanonicalCity(" ならまち "))
	assert.Equal(t, "", CanonicalCity("   "))
	assert.Equal(t, "", CanonicalCity(""))
}

func TestRecommend_BudgetProximityOrdering(t *testing.T) {
	engine := newTestEngine(t, []domain.Experience{
		testExperience("far", "東京", "¥¥¥¥", 3, 1),
		testExperience("adjacent", "東京", "¥¥¥", 3, 1),
		testExperience("exact", "東京", "¥¥", 3, 1),
	})

	recs := engine.Recommend(domain.RecommendationRequest{City: "東京", Budget: "¥¥", Limit: 10})
	require.Len(t, recs, 3)

	assert.Equal(t, "exact", recs[0].Experience.Title)
	assert.Equal(t, "adjacent", recs[1].Experience.Title)
	assert.Equal(t, "far", recs[2].Experience.Title)

	// city 2.0 + highlight 0.1 as baseline.
	assert.InDelta(t, 3.1, recs[0].Score, 1e-9)
	assert.InDelta(t, 2.7, recs[1].Score, 1e-9)
	assert.InDelta(t, 1.7, recs[2].Score, 1e-9)
}

func TestRecommend_PricierGapPenalizedHarderThanCheaper(t *testing.T) {
	engine := newTestEngine(t, []domain.Experience{
		testExperience("pricier", "東京", "¥プレミアム", 3, 1),
		testExperience("cheaper", "東京", "¥", 3, 1),
	})

	recs := engine.Recommend(domain.RecommendationRequest{City: "東京", Budget: "¥¥¥", Limit: 10})
	require.Len(t, recs, 2)

	assert.Equal(t, "cheaper", recs[0].Experience.Title)
	assert.Equal(t, "pricier", recs[1].Experience.Title)
	assert.InDelta(t, 1.9, recs[0].Score, 1e-9)
	assert.InDelta(t, 1.7, recs[1].Score, 1e-9)
}

func TestRecommend_UnknownBudgetCodeAddsNoSignal(t *testing.T) {
	engine := newTestEngine(t, []domain.Experience{
		testExperience("A", "東京", "¥¥", 3, 1),
	})

	recs := engine.Recommend(domain.RecommendationRequest{City: "東京", Budget: "格安", Limit: 10})
	require.Len(t, recs, 1)
	assert.InDelta(t, 2.1, recs[0].Score, 1e-9)
	for _, reason := range recs[0].Rationale {
		assert.NotContains(t, reason, "予算帯")
	}
}

func TestRecommend_MismatchBudgetStillExplained(t *testing.T) {
	engine := newTestEngine(t, []domain.Experience{
		testExperience("far", "東京", "¥¥¥¥", 3, 1),
	})

	recs := engine.Recommend(domain.RecommendationRequest{City: "東京", Budget: "¥", Limit: 10})
	require.Len(t, recs, 1)

	var found bool
	for _, reason := range recs[0].Rationale {
		if strings.Contains(reason, "予算帯") && strings.Contains(reason, "3段階上") {
			found = true
		}
	}
	assert.True(t, found, "gap mismatch must still yield a budget rationale: %v", recs[0].Rationale)
}

func TestRecommend_HighlightBoostMonotonicAndCapped(t *testing.T) {
	engine := newTestEngine(t, []domain.Experience{
		testExperience("h0", "東京", "¥", 2, 0),
		testExperience("h1", "東京", "¥", 2, 1),
		testExperience("h2", "東京", "¥", 2, 2),
		testExperience("h3", "東京", "¥", 2, 3),
		testExperience("h5", "東京", "¥", 2, 5),
	})

	// No request signals at all: score is the highlight boost alone.
	recs := engine.Recommend(domain.RecommendationRequest{Limit: 10})

	scores := map[string]float64{}
	for _, rec := range recs {
		scores[rec.Experience.Title] = rec.Score
	}

	// Zero highlights means zero score, which is dropped.
	assert.NotContains(t, scores, "h0")
	assert.InDelta(t, 0.1, scores["h1"], 1e-9)
	assert.InDelta(t, 0.2, scores["h2"], 1e-9)
	assert.InDelta(t, 0.3, scores["h3"], 1e-9)
	assert.InDelta(t, 0.3, scores["h5"], 1e-9)
}

func TestRecommend_FallbackRationaleNeverEmpty(t *testing.T) {
	engine := newTestEngine(t, []domain.Experience{
		testExperience("A", "東京", "¥", 2, 2),
	})

	recs := engine.Recommend(domain.RecommendationRequest{Limit: 1})
	require.Len(t, recs, 1)
	require.NotEmpty(t, recs[0].Rationale)
	assert.Equal(t, []string{fallbackRationale}, recs[0].Rationale)
}

func TestRecommend_DurationOverageKeptWithPenalty(t *testing.T) {
	engine := newTestEngine(t, []domain.Experience{
		testExperience("long", "東京", "¥¥", 5, 1),
		testExperience("short", "東京", "¥¥", 2, 1),
	})

	recs := engine.Recommend(domain.RecommendationRequest{City: "東京", MaxDurationHours: 2, Limit: 10})
	require.Len(t, recs, 2)

	assert.Equal(t, "short", recs[0].Experience.Title)
	assert.Equal(t, "long", recs[1].Experience.Title)
	assert.InDelta(t, 1.0, recs[0].Score-recs[1].Score, 1e-9)

	var overage bool
	for _, reason := range recs[1].Rationale {
		if strings.Contains(reason, "5時間") && strings.Contains(reason, "2時間以内") {
			overage = true
		}
	}
	assert.True(t, overage, "overage rationale missing: %v", recs[1].Rationale)
}

func TestRecommend_NegativeScoreDropped(t *testing.T) {
	engine := newTestEngine(t, []domain.Experience{
		testExperience("pricey", "東京", "¥¥¥¥", 3, 1), // -0.4 + 0.1 without city signal
		testExperience("fit", "東京", "¥", 3, 1),
	})

	recs := engine.Recommend(domain.RecommendationRequest{Budget: "¥", Limit: 10})
	require.Len(t, recs, 1)
	assert.Equal(t, "fit", recs[0].Experience.Title)
}

func TestRecommend_LimitFlooredAndApplied(t *testing.T) {
	var exps []domain.Experience
	for _, title := range []string{"A", "B", "C", "D", "E"} {
		exps = append(exps, testExperience(title, "東京", "¥¥", 3, 2))
	}
	engine := newTestEngine(t, exps)

	req := domain.RecommendationRequest{City: "東京"}

	req.Limit = 3
	assert.Len(t, engine.Recommend(req), 3)

	req.Limit = 0
	assert.Len(t, engine.Recommend(req), 1)

	req.Limit = -5
	assert.Len(t, engine.Recommend(req), 1)

	req.Limit = 50
	assert.Len(t, engine.Recommend(req), 5)
}

func TestRecommend_LimitZeroBehavesLikeOne(t *testing.T) {
	engine := newTestEngine(t, []domain.Experience{
		testExperience("A", "東京", "¥¥", 3, 1),
		testExperience("B", "東京", "¥¥", 3, 1),
	})

	zero := engine.Recommend(domain.RecommendationRequest{City: "東京", Limit: 0})
	one := engine.Recommend(domain.RecommendationRequest{City: "東京", Limit: 1})
	assert.Equal(t, one, zero)
}

func TestRecommend_StableOrderForEqualScores(t *testing.T) {
	engine := newTestEngine(t, []domain.Experience{
		testExperience("first", "東京", "¥¥", 3, 2),
		testExperience("second", "東京", "¥¥", 3, 2),
		testExperience("winner", "東京", "¥¥", 3, 3),
	})

	recs := engine.Recommend(domain.RecommendationRequest{City: "東京", Limit: 10})
	require.Len(t, recs, 3)
	assert.Equal(t, "winner", recs[0].Experience.Title)
	assert.Equal(t, "first", recs[1].Experience.Title)
	assert.Equal(t, "second", recs[2].Experience.Title)
}

func TestRecommend_SortedDescending(t *testing.T) {
	cat, err := catalog.Builtin()
	require.NoError(t, err)
	engine, err := NewEngine(cat, DefaultWeights())
	require.NoError(t, err)

	recs := engine.Recommend(domain.RecommendationRequest{
		City:    "東京",
		Budget:  "¥¥",
		Weather: "晴れ",
		Limit:   10,
	})
	require.NotEmpty(t, recs)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Score, recs[i].Score)
	}
	for _, rec := range recs {
		assert.NotEmpty(t, rec.Rationale)
	}
}

func TestRecommend_ExactBudgetOutranksAdjacentOnBuiltinCatalog(t *testing.T) {
	cat, err := catalog.Builtin()
	require.NoError(t, err)
	engine, err := NewEngine(cat, DefaultWeights())
	require.NoError(t, err)

	recs := engine.Recommend(domain.RecommendationRequest{City: "東京", Budget: "¥¥", Limit: 2})
	require.Len(t, recs, 2)
	assert.Equal(t, "¥¥", recs[0].Experience.Budget)
}

func TestRecommend_NoMatchesReturnsEmptyNotError(t *testing.T) {
	engine := newTestEngine(t, []domain.Experience{
		testExperience("A", "東京", "¥¥", 3, 1),
	})

	recs := engine.Recommend(domain.RecommendationRequest{City: "存在しない街", Limit: 5})
	assert.Empty(t, recs)
}
