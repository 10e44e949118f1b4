// Package wc implements the counting run: it resolves input sources, counts
// them and prints one record per source plus the total.
package wc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/CZERTAINLY/cwc/internal/count"
	"github.com/CZERTAINLY/cwc/internal/input"
	"github.com/CZERTAINLY/cwc/internal/log"
	"github.com/CZERTAINLY/cwc/internal/model"
	"github.com/CZERTAINLY/cwc/internal/report"

	"github.com/creasty/defaults"
)

// Name prefixes every user facing error line.
const Name = "cwc"

// Options are the settings of a single run. Zero values are replaced by
// defaults, an empty Metrics selects model.DefaultMetrics. A zero Width means
// the default width, callers taking the width from a user must reject zero
// themselves.
type Options struct {
	Metrics model.Metrics
	Format  string `default:"text"`
	Width   int    `default:"7"`
}

// Streams are the standard streams of a run.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Runner counts input sources. It's meant for a single Run.
type Runner struct {
	opts     Options
	stats    model.Stats
	streams  Streams
	enc      report.Encoder
	failures int
}

func New(opts Options, counter model.Stats, streams Streams) (*Runner, error) {
	if err := defaults.Set(&opts); err != nil {
		return nil, fmt.Errorf("setting default options: %w", err)
	}
	if opts.Metrics.IsZero() {
		opts.Metrics = model.DefaultMetrics
	}
	if opts.Width < 1 {
		return nil, fmt.Errorf("width must be at least 1, got %d", opts.Width)
	}
	enc, err := report.NewEncoder(opts.Format, streams.Out, opts.Width)
	if err != nil {
		return nil, err
	}
	return &Runner{
		opts:    opts,
		stats:   counter,
		streams: streams,
		enc:     enc,
	}, nil
}

// Options returns the effective options after defaults were applied.
func (r *Runner) Options() Options {
	return r.opts
}

// Run processes paths, or stdin if paths is empty, and returns the exit
// status: 0 when every source was counted, 1 otherwise. A failing source is
// reported and skipped, it never stops processing of the others.
func (r *Runner) Run(ctx context.Context, paths []string) int {
	slog.DebugContext(ctx, "run", "metrics", r.opts.Metrics.String(), "format", r.opts.Format, "sources", len(paths))
	defer r.logStats(ctx)

	if len(paths) == 0 {
		r.processStdin(ctx)
		return r.exitCode()
	}

	// total carries every requested metric even if no source succeeds
	total := model.NewRecord(model.TotalLabel)
	for m := range r.opts.Metrics.All() {
		total.Set(m, 0)
	}
	for _, path := range paths {
		rec, ok := r.processFile(ctx, path)
		if !ok {
			continue
		}
		total.Add(rec)
	}
	if len(paths) > 1 {
		r.emit(ctx, total)
	}
	return r.exitCode()
}

func (r *Runner) processStdin(ctx context.Context) {
	r.stats.IncSources()
	r.stats.IncStdin()
	content, err := input.ReadStdin(r.streams.In)
	if err != nil {
		r.fail(ctx, "Error reading from stdin: "+cause(err), err)
		return
	}
	rec := count.Count("", content, r.opts.Metrics)
	r.stats.AddCounts(rec)
	r.emit(ctx, rec)
}

func (r *Runner) processFile(ctx context.Context, path string) (model.Record, bool) {
	ctx = log.ContextAttrs(ctx, slog.String("source", path))
	r.stats.IncSources()

	if !input.Validate(path) {
		err := &model.NotFoundError{Path: path}
		r.fail(ctx, err.Error(), err)
		return model.Record{}, false
	}
	content, err := input.ReadFile(path)
	if err != nil {
		r.fail(ctx, "Error reading file: "+cause(err), err)
		return model.Record{}, false
	}

	rec := count.Count(path, content, r.opts.Metrics)
	r.stats.AddCounts(rec)
	if !r.emit(ctx, rec) {
		return model.Record{}, false
	}
	return rec, true
}

func (r *Runner) emit(ctx context.Context, rec model.Record) bool {
	if err := r.enc.Encode(rec); err != nil {
		r.fail(ctx, "Error writing output: "+err.Error(), err)
		return false
	}
	slog.DebugContext(ctx, "counted", "label", rec.Label)
	return true
}

func (r *Runner) fail(ctx context.Context, msg string, err error) {
	r.failures++
	r.stats.IncErrSources()
	slog.DebugContext(ctx, "source failed", "error", err)
	fmt.Fprintf(r.streams.Err, "%s: %s\n", Name, msg)
}

func (r *Runner) exitCode() int {
	if r.failures > 0 {
		return 1
	}
	return 0
}

func (r *Runner) logStats(ctx context.Context) {
	if !slog.Default().Enabled(ctx, slog.LevelDebug) {
		return
	}
	for key, value := range r.stats.Stats() {
		slog.DebugContext(ctx, "stats", slog.String("key", key), slog.String("value", value))
	}
}

// cause returns the message of the error wrapped by *model.IOError.
func cause(err error) string {
	var ioErr *model.IOError
	if errors.As(err, &ioErr) && ioErr.Err != nil {
		return ioErr.Err.Error()
	}
	return err.Error()
}
