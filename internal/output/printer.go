// Package output provides console formatting for the CLI.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"trendtracker/internal/domain/trend"
)

// Printer handles formatted output to the terminal
type Printer struct {
	out   io.Writer
	quiet bool
}

// NewPrinter creates a printer writing to stdout
func NewPrinter(quiet bool) *Printer {
	return &Printer{out: os.Stdout, quiet: quiet}
}

// NewPrinterWithWriter creates a printer with a custom writer
func NewPrinterWithWriter(w io.Writer, quiet bool) *Printer {
	return &Printer{out: w, quiet: quiet}
}

// Successf prints a green success line
func (p *Printer) Successf(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, color.GreenString(format, args...))
}

// Infof prints a plain informational line
func (p *Printer) Infof(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Warnf prints a yellow warning line
func (p *Printer) Warnf(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, color.YellowString(format, args...))
}

// PrintReport summarizes the ingest diagnostics after a run.
func (p *Printer) PrintReport(report trend.IngestReport) {
	if p.quiet {
		return
	}
	p.Infof("Rows: %d total, %d valid, %d rejected", report.TotalRows, report.ValidRows, report.RejectedRows)
	if report.RejectedRows > 0 {
		p.Warnf("Rejected: %d bad dates, %d missing hashtags, %d negative counts",
			report.BadDates, report.MissingHashtags, report.NegativeCounts)
	}
	imputed := report.ImputedMentions + report.ImputedReach + report.ImputedSentiment
	if imputed > 0 {
		p.Warnf("Imputed fields: %d mentions, %d reach, %d sentiment",
			report.ImputedMentions, report.ImputedReach, report.ImputedSentiment)
	}
	if report.ClampedSentiment > 0 {
		p.Warnf("Clamped sentiment values: %d", report.ClampedSentiment)
	}
}
