package analysis

import (
	"sort"

	"trendtracker/internal/domain/trend"
	"trendtracker/internal/service/window"
)

// Aggregator groups records by (hashtag, window) and computes summary
// statistics for each group.
type Aggregator struct {
	granularity trend.Granularity
}

// NewAggregator creates a new aggregator
func NewAggregator(granularity trend.Granularity) *Aggregator {
	return &Aggregator{granularity: granularity}
}

type accumulator struct {
	hashtag      string
	window       trend.WindowKey
	mentions     int64
	reach        int64
	sentimentSum float64
	rows         int
}

// Aggregate computes one AggregatedMetric per (hashtag, window) pair seen in
// the input. Accumulation is commutative, so the result is identical under
// any permutation of the records. A group exists iff at least one record
// maps to it. Output is sorted by window start, then hashtag.
func (a *Aggregator) Aggregate(records []trend.Record) []trend.AggregatedMetric {
	groups := make(map[string]*accumulator)
	for _, rec := range records {
		win := window.Assign(rec.Timestamp, a.granularity)
		key := rec.Hashtag + "\x00" + win.Label()
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{hashtag: rec.Hashtag, window: win}
			groups[key] = acc
		}
		acc.mentions += rec.Mentions
		acc.reach += rec.EstimatedReach
		acc.sentimentSum += rec.SentimentScore
		acc.rows++
	}

	metrics := make([]trend.AggregatedMetric, 0, len(groups))
	for _, acc := range groups {
		metrics = append(metrics, trend.AggregatedMetric{
			Hashtag:          acc.hashtag,
			Window:           acc.window,
			TotalMentions:    acc.mentions,
			TotalReach:       acc.reach,
			AverageSentiment: acc.sentimentSum / float64(acc.rows),
			RowCount:         acc.rows,
		})
	}

	sort.Slice(metrics, func(i, j int) bool {
		if !metrics[i].Window.Start.Equal(metrics[j].Window.Start) {
			return metrics[i].Window.Before(metrics[j].Window)
		}
		return metrics[i].Hashtag < metrics[j].Hashtag
	})
	return metrics
}
