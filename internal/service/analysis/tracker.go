package analysis

import (
	"github.com/google/uuid"

	"trendtracker/internal/domain/trend"
)

// TrackerConfig contains configuration for a tracker run
type TrackerConfig struct {
	Granularity   trend.Granularity
	TopK          int
	GrowthDefault float64
}

// Tracker runs the full pipeline: normalize, assign windows, aggregate,
// score, select top K. Each stage consumes the collection the previous one
// produced; there is no shared mutable state between stages.
type Tracker struct {
	normalizer trend.Normalizer
	config     TrackerConfig
}

// NewTracker creates a new tracker
func NewTracker(normalizer trend.Normalizer, config TrackerConfig) *Tracker {
	return &Tracker{
		normalizer: normalizer,
		config:     config,
	}
}

// Run processes the raw rows in one pass. Row-level failures are counted in
// the result's report and never abort the run; a run with zero valid rows
// returns trend.ErrNoValidRows.
func (t *Tracker) Run(rows []map[string]string) (*trend.Result, error) {
	records := make([]trend.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := t.normalizer.Normalize(row)
		if err != nil {
			continue
		}
		records = append(records, rec)
	}

	report := t.normalizer.Report()
	if len(records) == 0 {
		return nil, trend.ErrNoValidRows
	}

	aggregates := NewAggregator(t.config.Granularity).Aggregate(records)
	scores := NewScorer(t.config.GrowthDefault).Score(aggregates)
	topK := NewSelector(t.config.TopK).Select(scores)

	return &trend.Result{
		RunID:       uuid.NewString(),
		Granularity: t.config.Granularity,
		Aggregates:  aggregates,
		Scores:      scores,
		TopK:        topK,
		Report:      report,
	}, nil
}
