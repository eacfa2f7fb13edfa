package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	colorGreen = "\x1b[32m"
	colorRed   = "\x1b[31m"
	colorReset = "\x1b[0m"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "typekit",
		Short:         "Class, enum and type-check scenario runner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newCheckCmd(&verbose))
	return root
}

func newCheckCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "check <scenario.yaml>...",
		Short: "Evaluate the checks declared in one or more scenario files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(*verbose)
			isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

			failed := 0
			for _, path := range args {
				sc, err := LoadScenario(path)
				if err != nil {
					return err
				}
				log.Debug().Str("file", path).
					Int("enums", len(sc.Enums)).
					Int("classes", len(sc.Classes)).
					Int("checks", len(sc.Checks)).
					Msg("scenario loaded")
				results, err := Run(sc)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				for _, res := range results {
					fmt.Println(formatResult(res, isTTY))
					if !res.Passed {
						failed++
					}
				}
			}
			if failed > 0 {
				log.Error().Int("failed", failed).Msg("checks failed")
				return fmt.Errorf("%d check(s) failed", failed)
			}
			log.Info().Msg("all checks passed")
			return nil
		},
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: !isatty.IsTerminal(os.Stderr.Fd())}
	return zerolog.New(out).Level(level).With().
		Timestamp().
		Str("run", uuid.NewString()).
		Logger()
}

func formatResult(res CheckResult, color bool) string {
	status := "PASS"
	if !res.Passed {
		status = "FAIL"
	}
	if color {
		if res.Passed {
			status = colorGreen + status + colorReset
		} else {
			status = colorRed + status + colorReset
		}
	}
	line := fmt.Sprintf("%s  %s", status, res.Desc)
	if !res.Passed && res.Detail != "" {
		line += "  (" + res.Detail + ")"
	}
	return line
}
