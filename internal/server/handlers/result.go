package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"trendtracker/internal/domain/trend"
)

// ResultHandler serves a computed result set
type ResultHandler struct {
	result *trend.Result
}

// NewResultHandler creates a new result handler
func NewResultHandler(result *trend.Result) *ResultHandler {
	return &ResultHandler{
		result: result,
	}
}

type aggregateResponse struct {
	Hashtag          string  `json:"hashtag"`
	Window           string  `json:"window"`
	TotalMentions    int64   `json:"total_mentions"`
	TotalReach       int64   `json:"total_reach"`
	AverageSentiment float64 `json:"average_sentiment"`
	RowCount         int     `json:"row_count"`
}

type scoreResponse struct {
	Hashtag          string  `json:"hashtag"`
	Window           string  `json:"window"`
	Growth           float64 `json:"growth"`
	TotalMentions    int64   `json:"total_mentions"`
	TotalReach       int64   `json:"total_reach"`
	AverageSentiment float64 `json:"average_sentiment"`
	TrendScore       float64 `json:"trend_score"`
}

type reportResponse struct {
	RunID            string `json:"run_id"`
	Granularity      string `json:"granularity"`
	TotalRows        int    `json:"total_rows"`
	ValidRows        int    `json:"valid_rows"`
	RejectedRows     int    `json:"rejected_rows"`
	BadDates         int    `json:"bad_dates"`
	MissingHashtags  int    `json:"missing_hashtags"`
	NegativeCounts   int    `json:"negative_counts"`
	ImputedMentions  int    `json:"imputed_mentions"`
	ImputedReach     int    `json:"imputed_reach"`
	ImputedSentiment int    `json:"imputed_sentiment"`
	ClampedSentiment int    `json:"clamped_sentiment"`
}

// GetReport returns the run's ingest diagnostics
func (h *ResultHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	rep := h.result.Report
	respondWithJSON(w, http.StatusOK, reportResponse{
		RunID:            h.result.RunID,
		Granularity:      string(h.result.Granularity),
		TotalRows:        rep.TotalRows,
		ValidRows:        rep.ValidRows,
		RejectedRows:     rep.RejectedRows,
		BadDates:         rep.BadDates,
		MissingHashtags:  rep.MissingHashtags,
		NegativeCounts:   rep.NegativeCounts,
		ImputedMentions:  rep.ImputedMentions,
		ImputedReach:     rep.ImputedReach,
		ImputedSentiment: rep.ImputedSentiment,
		ClampedSentiment: rep.ClampedSentiment,
	})
}

// GetAggregates returns every (hashtag, window) aggregate
func (h *ResultHandler) GetAggregates(w http.ResponseWriter, r *http.Request) {
	out := make([]aggregateResponse, 0, len(h.result.Aggregates))
	for _, m := range h.result.Aggregates {
		out = append(out, aggregateResponse{
			Hashtag:          m.Hashtag,
			Window:           m.Window.Label(),
			TotalMentions:    m.TotalMentions,
			TotalReach:       m.TotalReach,
			AverageSentiment: m.AverageSentiment,
			RowCount:         m.RowCount,
		})
	}
	respondWithJSON(w, http.StatusOK, out)
}

// GetTrends returns scored metrics, optionally filtered by min_score
func (h *ResultHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	var minScore float64
	var filtered bool
	if raw := r.URL.Query().Get("min_score"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid min_score", err)
			return
		}
		minScore = v
		filtered = true
	}

	out := make([]scoreResponse, 0, len(h.result.Scores))
	for _, s := range h.result.Scores {
		if filtered && s.TrendScore < minScore {
			continue
		}
		out = append(out, scoreResponse{
			Hashtag:          s.Hashtag,
			Window:           s.Window.Label(),
			Growth:           s.Growth,
			TotalMentions:    s.TotalMentions,
			TotalReach:       s.TotalReach,
			AverageSentiment: s.AverageSentiment,
			TrendScore:       s.TrendScore,
		})
	}
	respondWithJSON(w, http.StatusOK, out)
}

// GetWindows returns the window labels in chronological order
func (h *ResultHandler) GetWindows(w http.ResponseWriter, r *http.Request) {
	labels := make([]string, 0, len(h.result.TopK))
	for _, ranking := range h.result.TopK {
		labels = append(labels, ranking.Window.Label())
	}
	respondWithJSON(w, http.StatusOK, labels)
}

// GetWindowTop returns the top-K entries for one window
func (h *ResultHandler) GetWindowTop(w http.ResponseWriter, r *http.Request) {
	label := chi.URLParam(r, "window")
	if label == "" {
		respondWithError(w, http.StatusBadRequest, "Missing window label", nil)
		return
	}

	for _, ranking := range h.result.TopK {
		if ranking.Window.Label() != label {
			continue
		}
		out := make([]scoreResponse, 0, len(ranking.Entries))
		for _, e := range ranking.Entries {
			out = append(out, scoreResponse{
				Hashtag:          e.Hashtag,
				Window:           e.Window.Label(),
				Growth:           e.Growth,
				TotalMentions:    e.TotalMentions,
				TotalReach:       e.TotalReach,
				AverageSentiment: e.AverageSentiment,
				TrendScore:       e.TrendScore,
			})
		}
		respondWithJSON(w, http.StatusOK, out)
		return
	}

	respondWithError(w, http.StatusNotFound, "Window not found", nil)
}
