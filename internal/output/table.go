package output

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"trendtracker/internal/domain/trend"
)

// RenderTopK renders the top-K rankings as a console table, capped at limit
// rows overall so a long run does not flood the terminal.
func RenderTopK(w io.Writer, rankings []trend.WindowRanking, limit int) {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
		}),
	)

	var rows [][]string
	for _, ranking := range rankings {
		for _, e := range ranking.Entries {
			if limit > 0 && len(rows) >= limit {
				break
			}
			rows = append(rows, []string{
				ranking.Window.Label(),
				e.Hashtag,
				strconv.FormatFloat(e.TrendScore, 'f', 4, 64),
				strconv.FormatInt(e.TotalMentions, 10),
				strconv.FormatInt(e.TotalReach, 10),
				strconv.FormatFloat(e.AverageSentiment, 'f', 2, 64),
			})
		}
	}

	table.Header([]string{"window", "hashtag", "score", "mentions", "reach", "sentiment"})
	table.Bulk(rows)
	table.Render()
}
