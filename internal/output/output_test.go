package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"trendtracker/internal/domain/trend"
)

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinterWithWriter(&buf, false)

	p.PrintReport(trend.IngestReport{
		TotalRows:    10,
		ValidRows:    8,
		RejectedRows: 2,
		BadDates:     2,
	})

	out := buf.String()
	assert.Contains(t, out, "10 total")
	assert.Contains(t, out, "8 valid")
	assert.Contains(t, out, "2 bad dates")
}

func TestPrintReport_Quiet(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinterWithWriter(&buf, true)

	p.PrintReport(trend.IngestReport{TotalRows: 10})
	p.Successf("done")

	assert.Zero(t, buf.Len())
}

func TestRenderTopK(t *testing.T) {
	win := trend.WindowKey{
		Granularity: trend.GranularityDay,
		Start:       time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	rankings := []trend.WindowRanking{
		{
			Window: win,
			Entries: []trend.ScoredMetric{
				{
					AggregatedMetric: trend.AggregatedMetric{
						Hashtag:       "#AI",
						Window:        win,
						TotalMentions: 200,
						TotalReach:    5000,
					},
					TrendScore: 3.2,
				},
			},
		},
	}

	var buf bytes.Buffer
	RenderTopK(&buf, rankings, 20)

	out := buf.String()
	assert.Contains(t, out, "#AI")
	assert.Contains(t, out, "2025-05-01")
	assert.Contains(t, out, "3.2000")
}

func TestRenderTopK_RespectsLimit(t *testing.T) {
	win := trend.WindowKey{
		Granularity: trend.GranularityDay,
		Start:       time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	var entries []trend.ScoredMetric
	for _, h := range []string{"#a", "#b", "#c"} {
		entries = append(entries, trend.ScoredMetric{
			AggregatedMetric: trend.AggregatedMetric{Hashtag: h, Window: win},
		})
	}

	var buf bytes.Buffer
	RenderTopK(&buf, []trend.WindowRanking{{Window: win, Entries: entries}}, 2)

	out := buf.String()
	assert.Contains(t, out, "#a")
	assert.Contains(t, out, "#b")
	assert.NotContains(t, out, "#c")
}
