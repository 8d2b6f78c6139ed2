// Package cli contains the trendtracker commands.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"trendtracker/internal/config"
)

var cfg config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "trendtracker",
	Short: "Rank trending hashtags from a social-media activity log",
	Long: `trendtracker ingests a CSV log of hashtag activity, buckets it into
time windows (day, ISO week, or month), aggregates mentions, reach and
sentiment per hashtag and window, scores each hashtag's growth against its
previous window, and reports the top-K hashtags per window.

Example usage:
  trendtracker run -i posts.csv                # daily windows, top 10
  trendtracker run -i posts.csv -w week -k 5   # weekly windows, top 5
  trendtracker serve -i posts.csv -w month     # serve results over HTTP`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initConfig()
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("window", "w", "day", "window granularity (day, week, month)")
	flags.IntP("topk", "k", 10, "number of hashtags to keep per window")
	flags.Float64("growth-default", 0, "growth assigned when a hashtag has no prior window")
	flags.StringP("out-prefix", "o", "output", "output file prefix")
	flags.BoolP("quiet", "q", false, "suppress console output")

	_ = viper.BindPFlag("window", flags.Lookup("window"))
	_ = viper.BindPFlag("topk", flags.Lookup("topk"))
	_ = viper.BindPFlag("growth_default", flags.Lookup("growth-default"))
	_ = viper.BindPFlag("out_prefix", flags.Lookup("out-prefix"))
	_ = viper.BindPFlag("quiet", flags.Lookup("quiet"))
}

// initConfig loads environment configuration and overlays changed flags.
// Configuration errors are fatal before any row is processed.
func initConfig() error {
	c, err := config.Load()
	if err != nil {
		return err
	}

	flags := rootCmd.PersistentFlags()
	if flags.Changed("window") {
		c.Pipeline.Granularity = viper.GetString("window")
	}
	if flags.Changed("topk") {
		c.Pipeline.TopK = viper.GetInt("topk")
	}
	if flags.Changed("growth-default") {
		c.Pipeline.GrowthDefault = viper.GetFloat64("growth_default")
	}
	if flags.Changed("out-prefix") {
		c.Output.Prefix = viper.GetString("out_prefix")
	}
	if flags.Changed("quiet") {
		c.Output.Quiet = viper.GetBool("quiet")
	}

	if err := config.Validate(c); err != nil {
		return err
	}

	cfg = c
	return nil
}
