package catalog

import (
	"errors"

	"github.com/denisok6893-rgb/date-outing-ai/internal/domain"
)

// ErrNoExperiences is returned when a catalog would contain no plans at all.
var ErrNoExperiences = errors.New("at least one experience is required")

// Catalog holds the immutable set of experiences and the ordered budget band
// sequence. Band ordinal positions are fixed at build time; gap comparisons
// in the matching engine depend on them.
type Catalog struct {
	experiences []domain.Experience
	bands       []domain.BudgetBand
	bandIndex   map[string]int
}

// New builds a catalog from the given experiences and bands, attaching detail
// blocks by title. Experiences without a detail entry keep Detail nil.
func New(experiences []domain.Experience, bands []domain.BudgetBand, details map[string]domain.ExperienceDetail) (*Catalog, error) {
	if len(experiences) == 0 {
		return nil, ErrNoExperiences
	}

	exps := make([]domain.Experience, len(experiences))
	copy(exps, experiences)
	for i := range exps {
		if d, ok := details[exps[i].Title]; ok {
			detail := d
			exps[i].Detail = &detail
		}
	}

	idx := make(map[string]int, len(bands))
	for i, b := range bands {
		idx[b.Code] = i
	}

	return &Catalog{
		experiences: exps,
		bands:       append([]domain.BudgetBand(nil), bands...),
		bandIndex:   idx,
	}, nil
}

// Builtin returns a catalog over the embedded curated data.
func Builtin() (*Catalog, error) {
	return New(BuiltinExperiences(), BuiltinBands(), BuiltinDetails())
}

// Experiences returns all plans in catalog order. Callers must treat the
// slice as read-only.
func (c *Catalog) Experiences() []domain.Experience { return c.experiences }

// Len reports the number of plans in the catalog.
func (c *Catalog) Len() int { return len(c.experiences) }

// Bands returns the budget bands from least to most expensive.
func (c *Catalog) Bands() []domain.BudgetBand { return c.bands }

// BandByCode looks up a band by its code. Unknown codes report ok=false.
func (c *Catalog) BandByCode(code string) (domain.BudgetBand, bool) {
	i, ok := c.bandIndex[code]
	if !ok {
		return domain.BudgetBand{}, false
	}
	return c.bands[i], true
}

// BandPosition reports a band's ordinal position in the price scale.
// Unknown codes report ok=false.
func (c *Catalog) BandPosition(code string) (int, bool) {
	i, ok := c.bandIndex[code]
	return i, ok
}
