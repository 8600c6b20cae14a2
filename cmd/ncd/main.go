package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/obfm/ncd/internal/check"
	"github.com/obfm/ncd/internal/codec"
	"github.com/obfm/ncd/internal/compute"
	"github.com/obfm/ncd/internal/config"
	"github.com/obfm/ncd/internal/input"
	"github.com/obfm/ncd/internal/report"
)

// Exit codes.
const (
	exitOK          = 0
	exitError       = 1
	exitUsage       = 2
	exitCheckFailed = 3
)

const usageHeader = `usage: ncd [flags] FILE_X FILE_Y

Prints the complexity delta ΔK = C(Y) - C(X) and the normalized compression
distance NCD = (C(X‖Y) - min(C(X), C(Y))) / max(C(X), C(Y)), where C is the
compressed size under one pinned codec. Files after the second are ignored.

flags:
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ", ") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// run executes one invocation. In watch mode it blocks until ctx is done and
// returns the exit code of the last measurement.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ncd", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usageHeader)
		fs.PrintDefaults()
	}

	var checkExprs stringList
	configPath := fs.String("config", "", "path to an optional YAML config file")
	algo := fs.String("algo", config.DefaultAlgorithm, "compressor algorithm: "+strings.Join(codec.Algorithms(), " | "))
	level := fs.Int("level", config.DefaultLevel, "compressor level (range depends on -algo)")
	format := fs.String("format", config.DefaultFormat, "output format: "+strings.Join(report.Formats(), " | "))
	sizes := fs.Bool("sizes", false, "also print the three compressed sizes (text format)")
	fs.Var(&checkExprs, "check", `threshold that must hold, e.g. "ncd < 0.3" (repeatable)`)
	watch := fs.Bool("watch", false, "recompute whenever an input file changes")
	logLevel := fs.String("log-level", config.DefaultLogLevel, "stderr log level: debug | info | warn | error")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg := config.Defaults()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "ncd: %v\n", err)
			return exitUsage
		}
		cfg = loaded
	}

	// Flags given explicitly override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "algo":
			cfg.Compressor.Algorithm = *algo
		case "level":
			cfg.Compressor.Level = *level
		case "format":
			cfg.Output.Format = *format
		case "sizes":
			cfg.Output.Sizes = *sizes
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})
	for _, expr := range checkExprs {
		cfg.Checks = append(cfg.Checks, config.CheckConfig{Condition: expr})
	}

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(stderr, "ncd: %v\n", err)
		return exitUsage
	}

	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	slog.SetDefault(logger)

	paths := fs.Args()
	x, y, ignored, err := input.LoadPair(paths)
	if err != nil {
		fmt.Fprintf(stderr, "ncd: %v\n", err)
		if errors.Is(err, input.ErrTooFewInputs) {
			fs.Usage()
			return exitUsage
		}
		return exitError
	}
	if len(ignored) > 0 {
		slog.Warn("ignoring input files after the second", "paths", ignored)
	}

	c, err := codec.New(cfg.Compressor.Algorithm, cfg.Compressor.Level)
	if err != nil {
		fmt.Fprintf(stderr, "ncd: %v\n", err)
		return exitUsage
	}
	checks, err := cfg.ParsedChecks()
	if err != nil {
		fmt.Fprintf(stderr, "ncd: %v\n", err)
		return exitUsage
	}

	m := &measurer{
		calc:       compute.NewCalculator(c),
		checks:     checks,
		format:     cfg.Output.Format,
		diagnostic: cfg.Output.Sizes,
		stdout:     stdout,
		stderr:     stderr,
	}

	slog.Info("ncd starting",
		"x", x.Path,
		"x_bytes", x.Len(),
		"y", y.Path,
		"y_bytes", y.Len(),
		"algorithm", c.Name(),
		"level", c.Level(),
		"format", cfg.Output.Format,
		"checks", len(checks),
	)

	code := m.measure(x, y)
	if !*watch {
		return code
	}

	// Watch calls onChange on this goroutine, so code needs no locking.
	pair := paths[:2]
	if err := input.Watch(ctx, pair, func(string) {
		x, y, _, err := input.LoadPair(pair)
		if err != nil {
			// Mid-save states are expected; the next event retries.
			slog.Warn("reload failed, waiting for next change", "err", err)
			return
		}
		code = m.measure(x, y)
	}); err != nil {
		fmt.Fprintf(stderr, "ncd: watch: %v\n", err)
		return exitError
	}
	slog.Info("ncd shutting down", "exit_code", code)
	return code
}

// measurer runs one measurement, prints it and evaluates checks.
type measurer struct {
	calc       *compute.Calculator
	checks     []check.Check
	format     string
	diagnostic bool
	stdout     io.Writer
	stderr     io.Writer
}

func (m *measurer) measure(x, y *input.Document) int {
	res, err := m.calc.Measure(x.Data, y.Data)
	if err != nil {
		fmt.Fprintf(m.stderr, "ncd: %v\n", err)
		return exitError
	}

	c := m.calc.Codec()
	err = report.Write(m.stdout, m.format, m.diagnostic, report.Report{
		Result:    res,
		Algorithm: c.Name(),
		Level:     c.Level(),
		PathX:     x.Path,
		PathY:     y.Path,
	})
	if err != nil {
		fmt.Fprintf(m.stderr, "ncd: %v\n", err)
		return exitError
	}

	failed := check.Evaluate(m.checks, res)
	for _, f := range failed {
		fmt.Fprintf(m.stderr, "ncd: %s\n", f)
	}
	if len(failed) > 0 {
		return exitCheckFailed
	}
	return exitOK
}
