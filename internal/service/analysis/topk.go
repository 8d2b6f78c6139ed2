package analysis

import (
	"sort"

	"trendtracker/internal/domain/trend"
)

// Selector ranks hashtags within each window and truncates to the top K.
type Selector struct {
	k int
}

// NewSelector creates a new top-K selector
func NewSelector(k int) *Selector {
	return &Selector{k: k}
}

// Select partitions the scored metrics by window, orders each partition by
// score descending with the mentions-then-hashtag tie-break, and keeps the
// first K entries. Windows with fewer than K hashtags return all of them,
// fully ordered. Partitions come back in chronological window order.
func (s *Selector) Select(scored []trend.ScoredMetric) []trend.WindowRanking {
	partitions := make(map[string][]trend.ScoredMetric)
	windows := make(map[string]trend.WindowKey)
	for _, m := range scored {
		label := m.Window.Label()
		partitions[label] = append(partitions[label], m)
		windows[label] = m.Window
	}

	rankings := make([]trend.WindowRanking, 0, len(partitions))
	for label, entries := range partitions {
		sort.Slice(entries, func(i, j int) bool {
			return rankBefore(entries[i], entries[j])
		})
		if len(entries) > s.k {
			entries = entries[:s.k]
		}
		rankings = append(rankings, trend.WindowRanking{
			Window:  windows[label],
			Entries: entries,
		})
	}

	sort.Slice(rankings, func(i, j int) bool {
		return rankings[i].Window.Before(rankings[j].Window)
	})
	return rankings
}
