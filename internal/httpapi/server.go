// Package httpapi exposes the recommender over HTTP.
package httpapi

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/denisok6893-rgb/date-outing-ai/internal/catalog"
	"github.com/denisok6893-rgb/date-outing-ai/internal/domain"
	"github.com/denisok6893-rgb/date-outing-ai/internal/matching"
)

const noMatchMessage = "条件に合うプランが見つかりませんでした。条件を緩めてみてください。"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Server wires the engine and catalog to the HTTP routes.
type Server struct {
	engine       *matching.Engine
	catalog      *catalog.Catalog
	logger       zerolog.Logger
	defaultLimit int
	maxLimit     int
}

// NewServer builds a server. defaultLimit is used when a request carries no
// limit; maxLimit caps whatever the caller asks for.
func NewServer(engine *matching.Engine, cat *catalog.Catalog, logger zerolog.Logger, defaultLimit, maxLimit int) *Server {
	if defaultLimit < 1 {
		defaultLimit = 3
	}
	if maxLimit < defaultLimit {
		maxLimit = 10
	}
	return &Server{
		engine:       engine,
		catalog:      cat,
		logger:       logger.With().Str("component", "httpapi").Logger(),
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// Routes returns the HTTP handler for the full API surface.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/health", s.handleHealth)
	r.Route("/recommend", func(r chi.Router) {
		r.Get("/", s.handleRecommendQuery)
		r.Post("/", s.handleRecommend)
	})
	r.Get("/budgets", s.handleBudgets)
	r.Get("/experiences", s.handleExperiencesList)
	r.Get("/experiences/{title}", s.handleExperienceByTitle)

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request handled")
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// RecommendRequest is the JSON body of POST /recommend. The numeric fields
// are shape-validated; enum-like strings are left to the engine, which
// degrades gracefully on unknown values.
type RecommendRequest struct {
	City             string `json:"city"`
	Budget           string `json:"budget"`
	Weather          string `json:"weather"`
	Mood             string `json:"mood"`
	ActivityType     string `json:"activity_type"`
	MaxDurationHours int    `json:"max_duration_hours" validate:"gte=0"`
	Limit            int    `json:"limit" validate:"gte=0"`
}

// RecommendationView flattens one result for clients: the experience fields
// plus score, rationale, and the resolved budget band's metadata.
type RecommendationView struct {
	domain.Experience
	Score      float64         `json:"score"`
	Rationale  []string        `json:"rationale"`
	BudgetInfo *BudgetBandView `json:"budget_info,omitempty"`
}

type BudgetBandView struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	Range       string `json:"range"`
	Description string `json:"description"`
}

type RecommendResponse struct {
	Results []RecommendationView `json:"results"`
	Message string               `json:"message,omitempty"`
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_json"})
		return
	}
	if err := validatorInstance().Struct(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "validation_failed", "detail": err.Error()})
		return
	}
	s.respondRecommend(w, req)
}

// handleRecommendQuery supports shareable links like
// /recommend?city=東京&limit=5. Unparseable numeric params fall back to
// their defaults rather than failing the request.
func (s *Server) handleRecommendQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := RecommendRequest{
		City:         strings.TrimSpace(q.Get("city")),
		Budget:       strings.TrimSpace(q.Get("budget")),
		Weather:      strings.TrimSpace(q.Get("weather")),
		Mood:         strings.TrimSpace(q.Get("mood")),
		ActivityType: strings.TrimSpace(q.Get("activity_type")),
	}
	if v := q.Get("max_duration_hours"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			req.MaxDurationHours = parsed
		}
	}
	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			req.Limit = parsed
		}
	}
	s.respondRecommend(w, req)
}

func (s *Server) respondRecommend(w http.ResponseWriter, req RecommendRequest) {
	recs := s.engine.Recommend(domain.RecommendationRequest{
		City:             req.City,
		Budget:           req.Budget,
		Weather:          req.Weather,
		Mood:             req.Mood,
		ActivityType:     req.ActivityType,
		MaxDurationHours: req.MaxDurationHours,
		Limit:            s.clampLimit(req.Limit),
	})

	resp := RecommendResponse{Results: make([]RecommendationView, 0, len(recs))}
	for _, rec := range recs {
		resp.Results = append(resp.Results, s.viewOf(rec))
	}
	if len(resp.Results) == 0 {
		resp.Message = noMatchMessage
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) viewOf(rec domain.Recommendation) RecommendationView {
	view := RecommendationView{
		Experience: rec.Experience,
		Score:      rec.Score,
		Rationale:  rec.Rationale,
	}
	if band, ok := s.catalog.BandByCode(rec.Experience.Budget); ok {
		view.BudgetInfo = &BudgetBandView{
			Code:        band.Code,
			Label:       band.Label,
			Range:       band.RangeLabel(),
			Description: band.Description,
		}
	}
	return view
}

// clampLimit applies the caller-side limit policy: default when unset,
// capped at the configured maximum. The engine itself only floors at 1.
func (s *Server) clampLimit(limit int) int {
	if limit <= 0 {
		return s.defaultLimit
	}
	if limit > s.maxLimit {
		return s.maxLimit
	}
	return limit
}

type BudgetsResponse struct {
	Bands []BudgetBandView `json:"bands"`
}

func (s *Server) handleBudgets(w http.ResponseWriter, r *http.Request) {
	bands := s.catalog.Bands()
	resp := BudgetsResponse{Bands: make([]BudgetBandView, 0, len(bands))}
	for _, band := range bands {
		resp.Bands = append(resp.Bands, BudgetBandView{
			Code:        band.Code,
			Label:       band.Label,
			Range:       band.RangeLabel(),
			Description: band.Description,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// ExperienceSummary is the list-view projection of a plan.
type ExperienceSummary struct {
	City            string `json:"city"`
	Title           string `json:"title"`
	ActivityType    string `json:"activity_type"`
	Budget          string `json:"budget"`
	Mood            string `json:"mood"`
	DurationHours   int    `json:"duration_hours"`
	BookingRequired bool   `json:"booking_required"`
}

type ExperiencesListResponse struct {
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
	Total  int                 `json:"total"`
	Items  []ExperienceSummary `json:"items"`
}

func (s *Server) handleExperiencesList(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r, 20, 0)

	cityFilter := strings.ToLower(strings.TrimSpace(matching.CanonicalCity(r.URL.Query().Get("city"))))

	var filtered []domain.Experience
	for _, exp := range s.catalog.Experiences() {
		if cityFilter != "" && !strings.Contains(strings.ToLower(exp.City), cityFilter) {
			continue
		}
		filtered = append(filtered, exp)
	}

	total := len(filtered)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	items := make([]ExperienceSummary, 0, end-offset)
	for _, exp := range filtered[offset:end] {
		items = append(items, ExperienceSummary{
			City:            exp.City,
			Title:           exp.Title,
			ActivityType:    exp.ActivityType,
			Budget:          exp.Budget,
			Mood:            exp.Mood,
			DurationHours:   exp.DurationHours,
			BookingRequired: exp.BookingRequired,
		})
	}

	writeJSON(w, http.StatusOK, ExperiencesListResponse{
		Limit:  limit,
		Offset: offset,
		Total:  total,
		Items:  items,
	})
}

func (s *Server) handleExperienceByTitle(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")
	if unescaped, err := url.PathUnescape(title); err == nil {
		title = unescaped
	}
	if title == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing_title"})
		return
	}

	for _, exp := range s.catalog.Experiences() {
		if exp.Title == title {
			writeJSON(w, http.StatusOK, exp)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
}

func parseLimitOffset(r *http.Request, defLimit, defOffset int) (int, int) {
	q := r.URL.Query()

	limit := defLimit
	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = defLimit
	}
	if limit > 200 {
		limit = 200
	}

	offset := defOffset
	if v := q.Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = defOffset
	}

	return limit, offset
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
