package exec

import (
	"context"
	"fmt"
	"os"

	"github.com/charj-lang/charj/internal/charj/diagnose"
	"github.com/charj-lang/charj/internal/charj/source"
	"github.com/charj-lang/charj/internal/defaults"
	"github.com/charj-lang/charj/internal/log/semconv"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	tracerName = "github.com/charj-lang/charj/internal/commands/check/exec"
)

// Report is the outcome of checking one file. Err is set when the file could
// not be read; Result is set otherwise.
type Report struct {
	Path   string
	Result *diagnose.Result
	Err    error
}

func (r Report) Failed() bool {
	return r.Err != nil || r.Result.Failed()
}

type Checker struct {
	concurrency int
	readFile    func(path string) ([]byte, error)
	tracer      trace.Tracer
}

func NewChecker(options ...func(*Checker)) *Checker {
	checker := Checker{
		concurrency: defaults.Concurrency,
		readFile:    os.ReadFile,
		tracer:      defaults.TracerProvider.Tracer(tracerName),
	}

	for _, apply := range options {
		apply(&checker)
	}

	return &checker
}

// Check checks paths concurrently. Reports keep the order of paths. The
// returned error is only set when ctx is cancelled.
func (c *Checker) Check(ctx context.Context, paths []string) ([]Report, error) {
	ctx, span := c.tracer.Start(ctx, "check files", trace.WithAttributes(
		attribute.Int(semconv.FileCount, len(paths)),
	))
	defer span.End()

	reports := make([]Report, len(paths))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(c.concurrency)

	for i, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			reports[i] = c.checkFile(ctx, path)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("check files: %w", err)
	}

	return reports, nil
}

func (c *Checker) checkFile(ctx context.Context, path string) Report {
	ctx, span := c.tracer.Start(ctx, "check file", trace.WithAttributes(
		attribute.String(semconv.FilePath, path),
	))
	defer span.End()

	logger := zerolog.Ctx(ctx).With().Str(semconv.FilePath, path).Logger()

	data, err := c.readFile(path)
	if err != nil {
		logger.Error().Err(err).Msg("read source file")
		span.SetStatus(codes.Error, err.Error())

		return Report{Path: path, Err: fmt.Errorf("read source file: %w", err)}
	}

	result := diagnose.File(source.NewFile(path, string(data)))

	span.SetAttributes(attribute.Int(semconv.DiagnosticCount, len(result.Diagnostics)))

	event := logger.Debug()
	if result.Failed() {
		first := result.Diagnostics[0]
		event = logger.Info().Int(semconv.ErrorOffset, first.Location.Start)
		span.SetStatus(codes.Error, first.Message)
	}
	if result.Program != nil {
		event = event.Int(semconv.UnitCount, len(result.Program.Units))
	}

	event.Int(semconv.DiagnosticCount, len(result.Diagnostics)).Msg("checked file")

	return Report{Path: path, Result: result}
}

func WithConcurrency(n int) func(*Checker) {
	return func(c *Checker) {
		c.concurrency = n
	}
}

func WithReadFile(readFile func(path string) ([]byte, error)) func(*Checker) {
	return func(c *Checker) {
		c.readFile = readFile
	}
}

func WithTracerProvider(tp trace.TracerProvider) func(*Checker) {
	return func(c *Checker) {
		c.tracer = tp.Tracer(tracerName)
	}
}
