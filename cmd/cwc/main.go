package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	"github.com/CZERTAINLY/cwc/internal/log"
	"github.com/CZERTAINLY/cwc/internal/model"
	"github.com/CZERTAINLY/cwc/internal/report"
	"github.com/CZERTAINLY/cwc/internal/stats"
	"github.com/CZERTAINLY/cwc/internal/wc"

	"github.com/spf13/cobra"
)

// flags holds the values of command line flags of one invocation
type flags struct {
	bytes   bool
	lines   bool
	words   bool
	chars   bool
	verbose bool
	format  string
	width   int
}

func (f flags) metrics() model.Metrics {
	var s model.Metrics
	if f.lines {
		s = s.With(model.Lines)
	}
	if f.words {
		s = s.With(model.Words)
	}
	if f.bytes {
		s = s.With(model.Bytes)
	}
	if f.chars {
		s = s.With(model.Chars)
	}
	return s
}

// exitError carries a non zero exit status of a run which already reported its errors
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func newRootCmd(counter model.Stats) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:     "cwc [flags] [file ...]",
		Short:   "A copy of unix command line tool wc",
		Long:    "Print newline, word, and byte counts for each file, and a total line if more than one file is specified. With no file, read standard input.",
		Args:    cobra.ArbitraryArgs,
		Version: version(),
		// never print messages and usage
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return doCount(cmd, args, f, counter)
		},
	}
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	fl := cmd.Flags()
	fl.BoolVarP(&f.bytes, "bytes", "c", false, "print the byte counts")
	fl.BoolVarP(&f.lines, "lines", "l", false, "print the newline counts")
	fl.BoolVarP(&f.words, "words", "w", false, "print the word counts")
	fl.BoolVarP(&f.chars, "chars", "m", false, "print the character counts")
	fl.BoolVar(&f.verbose, "verbose", false, "verbose logging")
	fl.StringVar(&f.format, "format", report.FormatText, "output format: "+strings.Join(report.Formats(), ", "))
	fl.IntVar(&f.width, "width", 7, "minimum width of a count column")
	cmd.MarkFlagsMutuallyExclusive("bytes", "chars")

	return cmd
}

func doCount(cmd *cobra.Command, args []string, f flags, counter model.Stats) error {
	if f.width < 1 {
		return fmt.Errorf("--width must be at least 1, got %d", f.width)
	}
	slog.SetDefault(log.New(f.verbose))
	ctx := log.ContextAttrs(cmd.Context(), slog.Group("cwc",
		slog.Int("pid", os.Getpid()),
	))

	runner, err := wc.New(wc.Options{
		Metrics: f.metrics(),
		Format:  f.format,
		Width:   f.width,
	}, counter, wc.Streams{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	if code := runner.Run(ctx, args); code != 0 {
		return exitError{code: code}
	}
	return nil
}

// execute runs the root command and returns the process exit status.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer, counter model.Stats) int {
	cmd := newRootCmd(counter)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		var exit exitError
		if errors.As(err, &exit) {
			return exit.code
		}
		fmt.Fprintf(stderr, "%s: %s\n", wc.Name, err)
		return 1
	}
	return 0
}

func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return "unknown"
	}
	v := info.Main.Version
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			v += " commit " + s.Value
		case "vcs.modified":
			if s.Value == "true" {
				v += " (dirty)"
			}
		}
	}
	return v + " " + info.GoVersion
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, stats.New(wc.Name)))
}
