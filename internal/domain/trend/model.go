package trend

import (
	"fmt"
	"time"
)

// Granularity selects the time bucket size used to group records.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ParseGranularity validates a granularity string from config or flags.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityDay, GranularityWeek, GranularityMonth:
		return Granularity(s), nil
	default:
		return "", fmt.Errorf("invalid window granularity %q: must be day, week, or month", s)
	}
}

// Record is a single validated row of hashtag activity
type Record struct {
	Timestamp      time.Time
	Hashtag        string
	Mentions       int64
	EstimatedReach int64
	SentimentScore float64
	TopCountry     string
}

// WindowKey identifies one time bucket. Start is the first instant of the
// bucket in UTC, so chronological ordering never depends on label format.
type WindowKey struct {
	Granularity Granularity
	Start       time.Time
}

// Label returns the canonical identifier for the window:
// day "2025-04-21", week "2025-W17", month "2025-04".
func (w WindowKey) Label() string {
	switch w.Granularity {
	case GranularityWeek:
		year, week := w.Start.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case GranularityMonth:
		return w.Start.Format("2006-01")
	default:
		return w.Start.Format("2006-01-02")
	}
}

// Before reports whether w starts before other.
func (w WindowKey) Before(other WindowKey) bool {
	return w.Start.Before(other.Start)
}

// AggregatedMetric is the summary for one (hashtag, window) group.
// Immutable after the aggregator produces it.
type AggregatedMetric struct {
	Hashtag          string
	Window           WindowKey
	TotalMentions    int64
	TotalReach       int64
	AverageSentiment float64
	RowCount         int
}

// ScoredMetric extends an AggregatedMetric with growth versus the hashtag's
// previous window and the composite trend score.
type ScoredMetric struct {
	AggregatedMetric
	Growth     float64
	TrendScore float64
}

// WindowRanking is the ordered top-K selection for a single window.
type WindowRanking struct {
	Window  WindowKey
	Entries []ScoredMetric
}

// IngestReport collects row-level diagnostics from normalization. Counters
// are carried here explicitly rather than in package globals.
type IngestReport struct {
	TotalRows        int
	ValidRows        int
	RejectedRows     int
	BadDates         int
	MissingHashtags  int
	NegativeCounts   int
	ImputedMentions  int
	ImputedReach     int
	ImputedSentiment int
	ClampedSentiment int
}

// Result is the full output of one tracker run.
type Result struct {
	RunID       string
	Granularity Granularity
	Aggregates  []AggregatedMetric
	Scores      []ScoredMetric
	TopK        []WindowRanking
	Report      IngestReport
}
