package exec

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charj-lang/charj/internal/charjconfig"
	"github.com/charj-lang/charj/internal/defaults"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/charj-lang/charj/internal/commands/configure/exec"
)

var ErrConfigExists = errors.New("project file already exists")

type Config struct {
	ConfigFilePath string
	Sources        []string
	LogLevel       string
	Concurrency    int
	Force          bool
}

type Executor struct {
	tracer trace.Tracer
}

func NewExecutor(options ...func(*Executor)) *Executor {
	executor := Executor{
		tracer: defaults.TracerProvider.Tracer(tracerName),
	}

	for _, apply := range options {
		apply(&executor)
	}

	return &executor
}

func (e *Executor) Run(ctx context.Context, config Config) error {
	_, span := e.tracer.Start(ctx, "run")
	defer span.End()

	if !config.Force {
		_, err := os.Stat(config.ConfigFilePath)
		if err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, config.ConfigFilePath)
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat project file: %w", err)
		}
	}

	project := charjconfig.Project{
		Sources:     config.Sources,
		LogLevel:    config.LogLevel,
		Concurrency: config.Concurrency,
	}

	if err := charjconfig.SaveConfigFile(config.ConfigFilePath, &project); err != nil {
		return fmt.Errorf("save config file: %w", err)
	}

	return nil
}

func WithTracerProvider(tp trace.TracerProvider) func(*Executor) {
	return func(e *Executor) {
		e.tracer = tp.Tracer(tracerName)
	}
}
