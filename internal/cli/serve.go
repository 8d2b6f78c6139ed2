package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"trendtracker/internal/output"
	"trendtracker/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the pipeline and serve the results over HTTP",
	Long: `Run the full pipeline over an input CSV, keep the computed result in
memory, and expose it read-only under /api/v1. Nothing is recomputed per
request; restart with fresh input to update the data.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("input", "i", "", "input CSV file (required)")
	_ = serveCmd.MarkFlagRequired("input")
}

func runServe(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")

	res, err := executePipeline(input)
	if err != nil {
		return err
	}

	printer := output.NewPrinter(cfg.Output.Quiet)
	printer.Successf("Run %s complete, serving results", res.RunID)
	printer.PrintReport(res.Report)

	httpServer := server.NewServer(cfg.Server, res)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on %s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-shutdown:
		log.Println("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
