package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mrjoshuak/followdiff"
	"github.com/spf13/cobra"
)

var (
	debug        bool
	maxInputSize int64
)

var rootCmd = &cobra.Command{
	Use:   "followdiff",
	Short: "followdiff finds the accounts you follow on Instagram that don't follow you back.",
	Long: `followdiff reads the following.html and followers_1.html files of an
Instagram data export and writes unfollowers.html, a self-contained report
of every account you follow that doesn't follow you back.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Int64Var(&maxInputSize, "max-input-size", followdiff.DefaultOptions().MaxInputSize,
		"maximum number of bytes read from each input file (0 disables the limit)")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newExtractor() followdiff.Extractor {
	return followdiff.New(
		followdiff.WithLogger(newLogger()),
		followdiff.WithMaxInputSize(maxInputSize),
	)
}
