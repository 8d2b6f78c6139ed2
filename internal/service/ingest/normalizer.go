package ingest

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"trendtracker/internal/domain/trend"
)

// Row-level rejection reasons. Callers match with errors.Is; none of them
// aborts a run.
var (
	ErrBadDate        = errors.New("unparseable date")
	ErrMissingHashtag = errors.New("missing hashtag")
	ErrNegativeCount  = errors.New("negative count value")
)

// dateLayouts is the priority-ordered list of accepted date formats.
// The source data uses DD-MM-YYYY, so it goes first.
var dateLayouts = []string{
	"02-01-2006",
	"2006-01-02",
	"02/01/2006",
}

// RowNormalizer validates raw rows and accumulates diagnostic counters.
// It implements trend.Normalizer.
type RowNormalizer struct {
	report trend.IngestReport
}

// NewRowNormalizer creates a new row normalizer
func NewRowNormalizer() *RowNormalizer {
	return &RowNormalizer{}
}

// Normalize validates a single raw row. Unparseable dates, missing hashtags
// and negative counts reject the row; unparseable numerics are imputed to 0
// and counted; sentiment outside [-1, 1] is clamped, not rejected.
func (n *RowNormalizer) Normalize(row map[string]string) (trend.Record, error) {
	n.report.TotalRows++

	hashtag := strings.TrimSpace(row["hashtag"])
	if hashtag == "" {
		n.report.MissingHashtags++
		n.report.RejectedRows++
		return trend.Record{}, ErrMissingHashtag
	}

	ts, err := parseDate(row["date"])
	if err != nil {
		n.report.BadDates++
		n.report.RejectedRows++
		return trend.Record{}, err
	}

	mentions, imputed := parseCount(row["mentions"])
	if imputed {
		n.report.ImputedMentions++
	}
	reach, imputed := parseCount(row["estimated_reach"])
	if imputed {
		n.report.ImputedReach++
	}
	if mentions < 0 || reach < 0 {
		n.report.NegativeCounts++
		n.report.RejectedRows++
		return trend.Record{}, fmt.Errorf("%w: mentions=%d reach=%d", ErrNegativeCount, mentions, reach)
	}

	sentiment, imputed := parseSentiment(row["sentiment_score"])
	if imputed {
		n.report.ImputedSentiment++
	}
	if sentiment < -1 {
		sentiment = -1
		n.report.ClampedSentiment++
	} else if sentiment > 1 {
		sentiment = 1
		n.report.ClampedSentiment++
	}

	n.report.ValidRows++
	return trend.Record{
		Timestamp:      ts,
		Hashtag:        hashtag,
		Mentions:       mentions,
		EstimatedReach: reach,
		SentimentScore: sentiment,
		TopCountry:     strings.TrimSpace(row["top_country"]),
	}, nil
}

// Report returns a snapshot of the diagnostic counters.
func (n *RowNormalizer) Report() trend.IngestReport {
	return n.report
}

// parseDate tries each accepted layout in priority order.
func parseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, raw)
}

// parseCount parses a non-negative integer field. Unparseable and
// non-finite values are imputed to 0; fractional values are truncated.
// ParseFloat accepts "NaN" and "Inf", and converting those to int64 is
// undefined, so they count as imputed like any other garbage.
func parseCount(raw string) (value int64, imputed bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && isFinite(f) {
		return int64(f), false
	}
	return 0, true
}

// parseSentiment parses the sentiment field. Non-finite values would escape
// the clamp (NaN fails both range comparisons) and poison every downstream
// mean, score, and sort, so they are imputed to 0 like unparseable input.
func parseSentiment(raw string) (value float64, imputed bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && isFinite(v) {
		return v, false
	}
	return 0, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
