package matching

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/denisok6893-rgb/date-outing-ai/internal/catalog"
	"github.com/denisok6893-rgb/date-outing-ai/internal/domain"
)

// ErrEmptyCatalog is returned when an engine is constructed without any
// experiences to recommend from.
var ErrEmptyCatalog = errors.New("at least one experience is required")

// cityAliases maps common romanized city names to the local-script names
// used by the catalog. Fixed at build time; unrecognized input passes
// through unchanged.
var cityAliases = map[string]string{
	"tokyo":     "東京",
	"kyoto":     "京都",
	"osaka":     "大阪",
	"sapporo":   "札幌",
	"fukuoka":   "福岡",
	"yokohama":  "横浜",
	"nagoya":    "名古屋",
	"naha":      "那覇",
	"kobe":      "神戸",
	"sendai":    "仙台",
	"hiroshima": "広島",
	"kanazawa":  "金沢",
}

const fallbackRationale = "幅広いニーズに応えるおすすめプラン"

// Engine ranks catalog experiences against a request. It holds no mutable
// state, so a single engine is safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
	weights Weights
}

// NewEngine builds an engine over the given catalog. An empty or nil catalog
// is a configuration error.
func NewEngine(cat *catalog.Catalog, w Weights) (*Engine, error) {
	if cat == nil || cat.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	return &Engine{catalog: cat, weights: w}, nil
}

// Recommend applies the city hard filter, scores every surviving experience,
// and returns the top matches best first. Candidates whose net score is not
// positive are dropped; an empty result is the "no match" case, not an error.
func (e *Engine) Recommend(req domain.RecommendationRequest) []domain.Recommendation {
	city := normalize(CanonicalCity(req.City))

	var scored []domain.Recommendation
	for _, exp := range e.catalog.Experiences() {
		if city != "" && !strings.Contains(normalize(exp.City), city) {
			continue
		}

		score, rationale := e.scoreOne(req, exp, city != "")
		if score <= 0 {
			continue
		}
		if len(rationale) == 0 {
			rationale = []string{fallbackRationale}
		}
		scored = append(scored, domain.Recommendation{
			Experience: exp,
			Score:      score,
			Rationale:  rationale,
		})
	}

	// Equal scores keep catalog order.
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	limit := req.Limit
	if limit < 1 {
		limit = 1
	}
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

func (e *Engine) scoreOne(req domain.RecommendationRequest, exp domain.Experience, cityMatched bool) (float64, []string) {
	var (
		score     float64
		rationale []string
	)

	if cityMatched {
		score += e.weights.CityMatch
		rationale = append(rationale, fmt.Sprintf("リクエストのエリア（%s）にマッチ", exp.City))
	}

	if req.Budget != "" {
		delta, reason := e.scoreBudget(req.Budget, exp.Budget)
		score += delta
		if reason != "" {
			rationale = append(rationale, reason)
		}
	}

	if req.Weather != "" && req.Weather == exp.Weather {
		score += e.weights.WeatherMatch
		rationale = append(rationale, fmt.Sprintf("想定天気 %s に対応", exp.Weather))
	}

	if req.Mood != "" && req.Mood == exp.Mood {
		score += e.weights.MoodMatch
		rationale = append(rationale, fmt.Sprintf("ムード %s にフィット", exp.Mood))
	}

	if req.ActivityType != "" && req.ActivityType == exp.ActivityType {
		score += e.weights.ActivityMatch
		rationale = append(rationale, fmt.Sprintf("アクティビティ種別 %s が一致", exp.ActivityType))
	}

	if req.MaxDurationHours > 0 {
		if exp.DurationHours <= req.MaxDurationHours {
			score += e.weights.DurationFits
			rationale = append(rationale, "希望時間内で実現可能")
		} else {
			score += e.weights.DurationOver
			rationale = append(rationale, fmt.Sprintf(
				"所要時間が%d時間で、希望(%d時間以内)を少し超えます",
				exp.DurationHours, req.MaxDurationHours))
		}
	}

	// Light popularity boost from how richly the plan is documented.
	boost := float64(len(exp.Highlights)) * e.weights.HighlightStep
	if boost > e.weights.HighlightCap {
		boost = e.weights.HighlightCap
	}
	score += boost

	return score, rationale
}

// scoreBudget compares the requested band against the candidate's. Exact code
// match wins; otherwise the ordinal gap in the band sequence decides, with
// pricier misses penalized harder than cheaper ones. Unknown codes on either
// side contribute nothing.
func (e *Engine) scoreBudget(requested, candidate string) (float64, string) {
	if requested == candidate {
		return e.weights.BudgetExact, fmt.Sprintf("予算帯 %s が一致", candidate)
	}

	reqPos, okReq := e.catalog.BandPosition(requested)
	candPos, okCand := e.catalog.BandPosition(candidate)
	if !okReq || !okCand {
		return 0, ""
	}

	gap := candPos - reqPos
	switch {
	case gap == 1:
		return e.weights.BudgetAdjacent, fmt.Sprintf("予算帯 %s はご希望より1段階上ですが、近い価格帯です", candidate)
	case gap == -1:
		return e.weights.BudgetAdjacent, fmt.Sprintf("予算帯 %s はご希望より1段階下で、お得に楽しめます", candidate)
	case gap >= 2:
		return e.weights.BudgetFarPricier, fmt.Sprintf("予算帯 %s はご希望より%d段階上で、予算を超える可能性があります", candidate, gap)
	default:
		return e.weights.BudgetFarCheaper, fmt.Sprintf("予算帯 %s はご希望より%d段階下です", candidate, -gap)
	}
}

// CanonicalCity resolves a romanized city name to the catalog's local-script
// form. Unknown names are returned trimmed but otherwise untouched.
func CanonicalCity(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := cityAliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
