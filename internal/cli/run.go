package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"trendtracker/internal/adapter/csvio"
	"trendtracker/internal/adapter/events"
	"trendtracker/internal/adapter/storage"
	"trendtracker/internal/domain/trend"
	"trendtracker/internal/output"
	"trendtracker/internal/service/analysis"
	"trendtracker/internal/service/ingest"
)

// consoleTopLimit caps the rows echoed to the terminal after a run. The full
// selection always goes to the output files.
const consoleTopLimit = 20

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Aggregate, score, and rank hashtags from a CSV log",
	Long: `Run the full pipeline over an input CSV and write three output files:
<prefix>_agg_counts.csv, <prefix>_trend_scores.csv, <prefix>_topk_per_window.csv.

With --store and DB_HOST configured, results are also persisted to Postgres.
With NATS_URL configured, a summary event is published after the run.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("input", "i", "", "input CSV file (required)")
	runCmd.Flags().Bool("store", false, "persist results to the configured database")
	_ = runCmd.MarkFlagRequired("input")
}

func runRun(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	store, _ := cmd.Flags().GetBool("store")

	res, err := executePipeline(input)
	if err != nil {
		return err
	}

	prefix := cfg.Output.Prefix
	if err := csvio.WriteAggregatesFile(prefix+"_agg_counts.csv", res.Aggregates); err != nil {
		return err
	}
	if err := csvio.WriteScoresFile(prefix+"_trend_scores.csv", res.Scores); err != nil {
		return err
	}
	if err := csvio.WriteTopKFile(prefix+"_topk_per_window.csv", res.TopK); err != nil {
		return err
	}

	if store {
		if err := persistResult(cmd.Context(), res); err != nil {
			return err
		}
	}

	if cfg.NATS.PublishEnabled() {
		if err := publishResult(res); err != nil {
			return err
		}
	}

	printer := output.NewPrinter(cfg.Output.Quiet)
	printer.Successf("Run %s complete (%s windows, top %d)", res.RunID, res.Granularity, cfg.Pipeline.TopK)
	printer.PrintReport(res.Report)
	if !cfg.Output.Quiet {
		output.RenderTopK(os.Stdout, res.TopK, consoleTopLimit)
	}

	return nil
}

// executePipeline reads the input and runs all stages. Shared by run and
// serve.
func executePipeline(input string) (*trend.Result, error) {
	rows, err := csvio.ReadFile(input)
	if err != nil {
		return nil, err
	}

	granularity, err := trend.ParseGranularity(cfg.Pipeline.Granularity)
	if err != nil {
		return nil, err
	}

	tracker := analysis.NewTracker(ingest.NewRowNormalizer(), analysis.TrackerConfig{
		Granularity:   granularity,
		TopK:          cfg.Pipeline.TopK,
		GrowthDefault: cfg.Pipeline.GrowthDefault,
	})

	res, err := tracker.Run(rows)
	if errors.Is(err, trend.ErrNoValidRows) {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func persistResult(ctx context.Context, res *trend.Result) error {
	if !cfg.Database.StoreEnabled() {
		return fmt.Errorf("--store requires DB_HOST to be configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := storage.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	return storage.NewResultStore(db).SaveResult(ctx, *res)
}

func publishResult(res *trend.Result) error {
	nc, err := events.Connect(cfg.NATS)
	if err != nil {
		return err
	}
	defer nc.Close()

	publisher := events.NewTrendPublisher(nc, cfg.NATS.EventsTopic)
	if err := publisher.PublishComputed(*res); err != nil {
		return err
	}
	return nc.Flush()
}
