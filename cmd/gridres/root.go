package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gridres",
		Short: "Contingency resilience analysis for power networks",
		Long: "gridres enumerates or samples simultaneous branch outages, runs them\n" +
			"through a cascade simulator and reports per-branch criticality next to\n" +
			"structural metrics of the network.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	root.PersistentFlags().String("log-format", "text", "Log format on stderr: text or json")
	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newScenariosCmd())
	root.AddCommand(newSynthCmd())
	root.Version = version

	return root
}

// newLogger writes records to the command's stderr in the --log-format format;
// verbose lowers the level to Debug.
func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var (
		w       io.Writer = cmd.ErrOrStderr()
		handler slog.Handler
	)
	format := "text"
	if f := cmd.Flag("log-format"); f != nil {
		format = f.Value.String()
	}
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("component", "gridres"))
}
