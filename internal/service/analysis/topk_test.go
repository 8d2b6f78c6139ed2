package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendtracker/internal/domain/trend"
)

func scoredEntry(start time.Time, hashtag string, score float64, mentions int64) trend.ScoredMetric {
	return trend.ScoredMetric{
		AggregatedMetric: trend.AggregatedMetric{
			Hashtag:       hashtag,
			Window:        trend.WindowKey{Granularity: trend.GranularityWeek, Start: start},
			TotalMentions: mentions,
			RowCount:      1,
		},
		TrendScore: score,
	}
}

func TestSelect_TruncatesToK(t *testing.T) {
	scored := []trend.ScoredMetric{
		scoredEntry(week1, "#a", 5, 10),
		scoredEntry(week1, "#b", 4, 10),
		scoredEntry(week1, "#c", 3, 10),
		scoredEntry(week1, "#d", 2, 10),
	}

	rankings := NewSelector(2).Select(scored)
	require.Len(t, rankings, 1)
	require.Len(t, rankings[0].Entries, 2)
	assert.Equal(t, "#a", rankings[0].Entries[0].Hashtag)
	assert.Equal(t, "#b", rankings[0].Entries[1].Hashtag)
}

func TestSelect_FewerThanKReturnsAllOrdered(t *testing.T) {
	scored := []trend.ScoredMetric{
		scoredEntry(week1, "#b", 2, 10),
		scoredEntry(week1, "#a", 3, 10),
		scoredEntry(week1, "#c", 1, 10),
	}

	rankings := NewSelector(10).Select(scored)
	require.Len(t, rankings, 1)
	require.Len(t, rankings[0].Entries, 3)
	assert.Equal(t, "#a", rankings[0].Entries[0].Hashtag)
	assert.Equal(t, "#b", rankings[0].Entries[1].Hashtag)
	assert.Equal(t, "#c", rankings[0].Entries[2].Hashtag)
}

func TestSelect_TieBreakByMentionsThenHashtag(t *testing.T) {
	scored := []trend.ScoredMetric{
		scoredEntry(week1, "#b", 3, 50),
		scoredEntry(week1, "#a", 3, 50),
		scoredEntry(week1, "#c", 3, 100),
	}

	rankings := NewSelector(3).Select(scored)
	require.Len(t, rankings, 1)

	entries := rankings[0].Entries
	assert.Equal(t, "#c", entries[0].Hashtag) // more mentions wins the tie
	assert.Equal(t, "#a", entries[1].Hashtag) // then lexical order
	assert.Equal(t, "#b", entries[2].Hashtag)
}

func TestSelect_WindowsInChronologicalOrder(t *testing.T) {
	scored := []trend.ScoredMetric{
		scoredEntry(week3, "#a", 1, 1),
		scoredEntry(week1, "#a", 1, 1),
		scoredEntry(week2, "#a", 1, 1),
	}

	rankings := NewSelector(5).Select(scored)
	require.Len(t, rankings, 3)
	assert.Equal(t, "2025-W16", rankings[0].Window.Label())
	assert.Equal(t, "2025-W17", rankings[1].Window.Label())
	assert.Equal(t, "2025-W18", rankings[2].Window.Label())
}

func TestSelect_SubsetOfWindowEntries(t *testing.T) {
	scored := []trend.ScoredMetric{
		scoredEntry(week1, "#a", 5, 1),
		scoredEntry(week1, "#b", 4, 1),
		scoredEntry(week2, "#c", 3, 1),
	}

	rankings := NewSelector(1).Select(scored)
	require.Len(t, rankings, 2)
	for _, ranking := range rankings {
		assert.LessOrEqual(t, len(ranking.Entries), 1)
		for _, e := range ranking.Entries {
			assert.Equal(t, ranking.Window, e.Window)
		}
	}
}
