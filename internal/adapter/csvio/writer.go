package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"trendtracker/internal/domain/trend"
)

// WriteAggregatesFile writes the aggregated counts collection.
func WriteAggregatesFile(path string, metrics []trend.AggregatedMetric) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteAggregates(w, metrics)
	})
}

// WriteScoresFile writes the trend scores collection.
func WriteScoresFile(path string, scores []trend.ScoredMetric) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteScores(w, scores)
	})
}

// WriteTopKFile writes the top-K per window collection.
func WriteTopKFile(path string, rankings []trend.WindowRanking) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteTopK(w, rankings)
	})
}

// WriteAggregates encodes columns
// {hashtag, window, total_mentions, total_reach, average_sentiment, row_count}.
func WriteAggregates(w io.Writer, metrics []trend.AggregatedMetric) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"hashtag", "window", "total_mentions", "total_reach", "average_sentiment", "row_count"}); err != nil {
		return err
	}
	for _, m := range metrics {
		record := []string{
			m.Hashtag,
			m.Window.Label(),
			strconv.FormatInt(m.TotalMentions, 10),
			strconv.FormatInt(m.TotalReach, 10),
			formatFloat(m.AverageSentiment),
			strconv.Itoa(m.RowCount),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteScores encodes columns
// {hashtag, window, growth, total_mentions, total_reach, average_sentiment, trend_score}.
func WriteScores(w io.Writer, scores []trend.ScoredMetric) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"hashtag", "window", "growth", "total_mentions", "total_reach", "average_sentiment", "trend_score"}); err != nil {
		return err
	}
	for _, s := range scores {
		record := []string{
			s.Hashtag,
			s.Window.Label(),
			formatFloat(s.Growth),
			strconv.FormatInt(s.TotalMentions, 10),
			strconv.FormatInt(s.TotalReach, 10),
			formatFloat(s.AverageSentiment),
			formatFloat(s.TrendScore),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTopK encodes columns
// {window, hashtag, trend_score, total_mentions, total_reach, average_sentiment, row_count},
// at most K rows per window, windows in chronological order.
func WriteTopK(w io.Writer, rankings []trend.WindowRanking) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"window", "hashtag", "trend_score", "total_mentions", "total_reach", "average_sentiment", "row_count"}); err != nil {
		return err
	}
	for _, ranking := range rankings {
		for _, e := range ranking.Entries {
			record := []string{
				ranking.Window.Label(),
				e.Hashtag,
				formatFloat(e.TrendScore),
				strconv.FormatInt(e.TotalMentions, 10),
				strconv.FormatInt(e.TotalReach, 10),
				formatFloat(e.AverageSentiment),
				strconv.Itoa(e.RowCount),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
