package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(date, hashtag, mentions, reach, sentiment string) map[string]string {
	return map[string]string{
		"date":            date,
		"hashtag":         hashtag,
		"mentions":        mentions,
		"estimated_reach": reach,
		"sentiment_score": sentiment,
		"top_country":     "US",
	}
}

func TestNormalize_ValidRow(t *testing.T) {
	n := NewRowNormalizer()

	rec, err := n.Normalize(row("21-04-2025", "#AI", "100", "2000", "0.5"))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 4, 21, 0, 0, 0, 0, time.UTC), rec.Timestamp)
	assert.Equal(t, "#AI", rec.Hashtag)
	assert.Equal(t, int64(100), rec.Mentions)
	assert.Equal(t, int64(2000), rec.EstimatedReach)
	assert.Equal(t, 0.5, rec.SentimentScore)
	assert.Equal(t, "US", rec.TopCountry)

	report := n.Report()
	assert.Equal(t, 1, report.TotalRows)
	assert.Equal(t, 1, report.ValidRows)
	assert.Equal(t, 0, report.RejectedRows)
}

func TestNormalize_DateFormats(t *testing.T) {
	tests := []struct {
		name string
		date string
		want time.Time
	}{
		{"day first dashed", "01-05-2025", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"iso", "2025-05-01", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"day first slashed", "01/05/2025", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewRowNormalizer()
			rec, err := n.Normalize(row(tt.date, "#go", "1", "1", "0"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.Timestamp)
		})
	}
}

func TestNormalize_RejectsBadDate(t *testing.T) {
	n := NewRowNormalizer()

	_, err := n.Normalize(row("not-a-date", "#go", "1", "1", "0"))
	require.ErrorIs(t, err, ErrBadDate)

	report := n.Report()
	assert.Equal(t, 1, report.BadDates)
	assert.Equal(t, 1, report.RejectedRows)
	assert.Equal(t, 0, report.ValidRows)
}

func TestNormalize_RejectsMissingHashtag(t *testing.T) {
	n := NewRowNormalizer()

	_, err := n.Normalize(row("01-05-2025", "  ", "1", "1", "0"))
	require.ErrorIs(t, err, ErrMissingHashtag)
	assert.Equal(t, 1, n.Report().MissingHashtags)
}

func TestNormalize_RejectsNegativeCounts(t *testing.T) {
	n := NewRowNormalizer()

	_, err := n.Normalize(row("01-05-2025", "#go", "-5", "100", "0"))
	require.ErrorIs(t, err, ErrNegativeCount)

	_, err = n.Normalize(row("01-05-2025", "#go", "5", "-100", "0"))
	require.ErrorIs(t, err, ErrNegativeCount)

	assert.Equal(t, 2, n.Report().NegativeCounts)
	assert.Equal(t, 2, n.Report().RejectedRows)
}

func TestNormalize_ImputesUnparseableNumerics(t *testing.T) {
	tests := []struct {
		name     string
		mentions string
		reach    string
	}{
		{"garbage and empty", "abc", ""},
		{"nan", "nan", "NaN"},
		{"inf", "Inf", "-Inf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewRowNormalizer()

			rec, err := n.Normalize(row("01-05-2025", "#go", tt.mentions, tt.reach, "oops"))
			require.NoError(t, err)

			assert.Equal(t, int64(0), rec.Mentions)
			assert.Equal(t, int64(0), rec.EstimatedReach)
			assert.Equal(t, 0.0, rec.SentimentScore)

			report := n.Report()
			assert.Equal(t, 1, report.ImputedMentions)
			assert.Equal(t, 1, report.ImputedReach)
			assert.Equal(t, 1, report.ImputedSentiment)
			assert.Equal(t, 0, report.NegativeCounts)
			assert.Equal(t, 1, report.ValidRows)
		})
	}
}

func TestNormalize_ImputesNonFiniteSentiment(t *testing.T) {
	for _, raw := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf"} {
		t.Run(raw, func(t *testing.T) {
			n := NewRowNormalizer()

			rec, err := n.Normalize(row("01-05-2025", "#go", "1", "1", raw))
			require.NoError(t, err)

			assert.Equal(t, 0.0, rec.SentimentScore)
			assert.GreaterOrEqual(t, rec.SentimentScore, -1.0)
			assert.LessOrEqual(t, rec.SentimentScore, 1.0)

			report := n.Report()
			assert.Equal(t, 1, report.ImputedSentiment)
			assert.Equal(t, 0, report.ClampedSentiment)
			assert.Equal(t, 1, report.ValidRows)
		})
	}
}

func TestNormalize_TruncatesFractionalCounts(t *testing.T) {
	n := NewRowNormalizer()

	rec, err := n.Normalize(row("01-05-2025", "#go", "100.9", "2000.2", "0"))
	require.NoError(t, err)
	assert.Equal(t, int64(100), rec.Mentions)
	assert.Equal(t, int64(2000), rec.EstimatedReach)
	assert.Equal(t, 0, n.Report().ImputedMentions)
}

func TestNormalize_ClampsSentiment(t *testing.T) {
	n := NewRowNormalizer()

	rec, err := n.Normalize(row("01-05-2025", "#go", "1", "1", "3.5"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, rec.SentimentScore)

	rec, err = n.Normalize(row("01-05-2025", "#go", "1", "1", "-2"))
	require.NoError(t, err)
	assert.Equal(t, -1.0, rec.SentimentScore)

	assert.Equal(t, 2, n.Report().ClampedSentiment)
	assert.Equal(t, 2, n.Report().ValidRows)
}

func TestNormalize_CountsAccumulateAcrossRows(t *testing.T) {
	n := NewRowNormalizer()

	_, _ = n.Normalize(row("01-05-2025", "#go", "1", "1", "0"))
	_, _ = n.Normalize(row("bad", "#go", "1", "1", "0"))
	_, _ = n.Normalize(row("02-05-2025", "", "1", "1", "0"))

	report := n.Report()
	assert.Equal(t, 3, report.TotalRows)
	assert.Equal(t, 1, report.ValidRows)
	assert.Equal(t, 2, report.RejectedRows)
}
