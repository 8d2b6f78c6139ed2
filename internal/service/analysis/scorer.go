package analysis

import (
	"math"
	"sort"

	"trendtracker/internal/domain/trend"
)

// Scorer computes growth versus each hashtag's previous window and the
// composite trend score.
type Scorer struct {
	growthDefault float64
}

// NewScorer creates a new scorer. growthDefault is used when a hashtag has
// no prior window.
func NewScorer(growthDefault float64) *Scorer {
	return &Scorer{growthDefault: growthDefault}
}

// Score derives a ScoredMetric for every AggregatedMetric. The per-hashtag
// chronological window index is built once up front. Growth is relative
// change in total mentions versus the immediately preceding window for the
// same hashtag; when the previous window has zero mentions, growth is 0
// rather than a division by zero. trend_score = growth * ln(reach+1) *
// (1 + sentiment), never clamped. Output is sorted by window start
// ascending, then score descending.
func (s *Scorer) Score(metrics []trend.AggregatedMetric) []trend.ScoredMetric {
	byHashtag := make(map[string][]trend.AggregatedMetric)
	for _, m := range metrics {
		byHashtag[m.Hashtag] = append(byHashtag[m.Hashtag], m)
	}

	scored := make([]trend.ScoredMetric, 0, len(metrics))
	for _, series := range byHashtag {
		sort.Slice(series, func(i, j int) bool {
			return series[i].Window.Before(series[j].Window)
		})

		var prev *trend.AggregatedMetric
		for i := range series {
			m := series[i]
			growth := s.growthDefault
			if prev != nil {
				if prev.TotalMentions == 0 {
					growth = 0
				} else {
					growth = float64(m.TotalMentions-prev.TotalMentions) / float64(prev.TotalMentions)
				}
			}
			score := growth * math.Log(float64(m.TotalReach)+1) * (1 + m.AverageSentiment)
			scored = append(scored, trend.ScoredMetric{
				AggregatedMetric: m,
				Growth:           growth,
				TrendScore:       score,
			})
			prev = &series[i]
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		if !scored[i].Window.Start.Equal(scored[j].Window.Start) {
			return scored[i].Window.Before(scored[j].Window)
		}
		return rankBefore(scored[i], scored[j])
	})
	return scored
}

// rankBefore orders two metrics within one window: score descending, then
// total mentions descending, then hashtag ascending.
func rankBefore(a, b trend.ScoredMetric) bool {
	if a.TrendScore != b.TrendScore {
		return a.TrendScore > b.TrendScore
	}
	if a.TotalMentions != b.TotalMentions {
		return a.TotalMentions > b.TotalMentions
	}
	return a.Hashtag < b.Hashtag
}
