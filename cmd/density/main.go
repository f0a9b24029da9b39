// Command density clusters a JSON dataset with DBSCAN or OPTICS and prints
// the result as JSON.
//
// Usage:
//
//	density [flags] <dataset.json[.gz|.zst|.lz4] | ->
//
// The dataset is a JSON array of points, each an array of numbers. Use "-"
// to read from standard input.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/TrevorS/density"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "density:", err)
		}
		os.Exit(2)
	}
}

type options struct {
	algo      string
	epsilon   float64
	minPts    int
	metric    string
	extract   float64
	logLevel  string
	logFormat string
	input     string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("density", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.algo, "algo", "dbscan", `clustering algorithm: "dbscan" or "optics"`)
	fs.Float64Var(&opts.epsilon, "eps", 1, "neighborhood radius (exclusive)")
	fs.IntVar(&opts.minPts, "minpts", 0, "neighbors needed for a core point (default 2 for dbscan, 1 for optics)")
	fs.StringVar(&opts.metric, "metric", "euclidean", "distance metric: euclidean, manhattan, chebyshev, cosine or minkowski:<p>")
	fs.Float64Var(&opts.extract, "extract", 0, "optics only: also extract a flat clustering at this reachability threshold")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	fs.StringVar(&opts.logFormat, "log-format", "text", `log format: "text" or "json"`)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: density [flags] <dataset.json[.gz|.zst|.lz4] | ->")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, errors.New("expected exactly one dataset argument")
	}
	opts.input = fs.Arg(0)
	return opts, nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	handlerOpts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger, err := newLogger(stderr, opts.logLevel, opts.logFormat)
	if err != nil {
		return err
	}

	metric, err := density.MetricByName(opts.metric)
	if err != nil {
		return err
	}

	data, err := readDataset(opts.input, stdin)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "dataset loaded", "input", opts.input, "points", len(data))

	cfg := density.Config{
		Epsilon: opts.epsilon,
		MinPts:  opts.minPts,
		Metric:  metric,
		Logger:  logger,
	}

	var rep any
	switch strings.ToLower(opts.algo) {
	case "dbscan":
		result := density.NewDBSCAN(cfg).Run(data)
		logger.InfoContext(ctx, "dbscan finished", "clusters", len(result.Clusters), "noise", len(result.Noise))
		rep = newDBSCANReport(result)
	case "optics":
		result := density.NewOPTICS(cfg).Run(data)
		logger.InfoContext(ctx, "optics finished", "clusters", len(result.Clusters), "ordered", len(result.Ordering))
		rep = newOPTICSReport(result, opts.extract)
	default:
		return fmt.Errorf("unknown algorithm %q", opts.algo)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
