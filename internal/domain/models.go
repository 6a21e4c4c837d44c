package domain

import "strconv"

// Experience is one curated date or outing plan. Catalog entries are built
// once at startup and never mutated afterwards.
type Experience struct {
	City            string            `json:"city"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	ActivityType    string            `json:"activity_type"`
	Budget          string            `json:"budget"`
	Weather         string            `json:"weather"`
	Mood            string            `json:"mood"`
	DurationHours   int               `json:"duration_hours"`
	Highlights      []string          `json:"highlights"`
	IdealSeason     string            `json:"ideal_season"`
	IdealTime       string            `json:"ideal_time"`
	Tips            []string          `json:"tips,omitempty"`
	BookingRequired bool              `json:"booking_required"`
	Detail          *ExperienceDetail `json:"detail,omitempty"`
}

// ExperienceDetail carries the optional practical info for a plan. It is
// attached at catalog build by joining on the experience title; plans without
// an entry keep Detail nil.
type ExperienceDetail struct {
	Neighborhood       string   `json:"neighborhood,omitempty"`
	MeetingPoint       string   `json:"meeting_point,omitempty"`
	Access             string   `json:"access,omitempty"`
	Website            string   `json:"website,omitempty"`
	Contact            string   `json:"contact,omitempty"`
	Attire             string   `json:"attire,omitempty"`
	CancellationPolicy string   `json:"cancellation_policy,omitempty"`
	Languages          []string `json:"languages,omitempty"`
	SuitableFor        []string `json:"suitable_for,omitempty"`
}

// BudgetBand is one tier of the ordered per-person price scale. MinJPY and
// MaxJPY are guide amounts; nil means unbounded on that side.
type BudgetBand struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	MinJPY      *int   `json:"min_jpy,omitempty"`
	MaxJPY      *int   `json:"max_jpy,omitempty"`
	Description string `json:"description"`
}

// RangeLabel renders the per-person bounds as a display string like
// "¥3,000〜¥8,000". Either side may be open.
func (b BudgetBand) RangeLabel() string {
	switch {
	case b.MinJPY == nil && b.MaxJPY == nil:
		return "金額目安なし"
	case b.MinJPY == nil:
		return "〜" + formatYen(*b.MaxJPY)
	case b.MaxJPY == nil:
		return formatYen(*b.MinJPY) + "〜"
	default:
		return formatYen(*b.MinJPY) + "〜" + formatYen(*b.MaxJPY)
	}
}

func formatYen(v int) string {
	s := strconv.Itoa(v)
	if len(s) <= 3 {
		return "¥" + s
	}
	var out []byte
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	return "¥" + string(out)
}

// RecommendationRequest describes the desired outing. Every field is
// optional; zero values mean "no preference". Limit <= 0 is floored to 1 by
// the engine.
type RecommendationRequest struct {
	City             string `json:"city,omitempty"`
	Budget           string `json:"budget,omitempty"`
	Weather          string `json:"weather,omitempty"`
	Mood             string `json:"mood,omitempty"`
	ActivityType     string `json:"activity_type,omitempty"`
	MaxDurationHours int    `json:"max_duration_hours,omitempty"`
	Limit            int    `json:"limit,omitempty"`
}

// Recommendation is one ranked result with the rationale for each signal
// that contributed to the score. Rationale is never empty.
type Recommendation struct {
	Experience Experience `json:"experience"`
	Score      float64    `json:"score"`
	Rationale  []string   `json:"rationale"`
}
