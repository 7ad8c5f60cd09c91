package check

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charj-lang/charj/internal/commandinit"
	"github.com/charj-lang/charj/internal/commands/check/config"
	"github.com/charj-lang/charj/internal/commands/check/exec"
	"github.com/charj-lang/charj/internal/defaults"
	"github.com/charj-lang/charj/internal/log/semconv"
	"github.com/google/uuid"
	cli "github.com/urfave/cli/v2"
)

// ErrCheckFailed is returned when any file has diagnostics.
var ErrCheckFailed = errors.New("check failed")

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Parses source files and reports syntax errors.",
		ArgsUsage: "[FILES...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Project file listing the sources to check. Env: CHARJ_CONFIG.",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "Number of files checked at once.",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "Re-check files when they change.",
			},
			&cli.BoolFlag{
				Name:  "otel",
				Usage: "Export traces over OTLP.",
			},
		},
		Action: run,
	}
}

func run(cliCtx *cli.Context) error {
	ctx := cliCtx.Context

	cfg, err := config.Read(cliCtx, cliCtx.Args().Slice(), os.Getenv)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := commandinit.NewLogger(cliCtx.App.ErrWriter, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger = logger.With().
		Str(semconv.Command, "check").
		Str(semconv.RunID, uuid.NewString()).
		Logger()

	ctx = logger.WithContext(ctx)

	tracerProvider, tpShutdown, err := commandinit.NewTracerProvider(ctx, defaults.ServiceName, cfg.OTel)
	if err != nil {
		return fmt.Errorf("create OTEL provider: %w", err)
	}
	defer tpShutdown(context.WithoutCancel(ctx))

	checker := exec.NewChecker(
		exec.WithConcurrency(cfg.Concurrency),
		exec.WithTracerProvider(tracerProvider),
	)

	logger.Debug().Int(semconv.FileCount, len(cfg.Files)).Msg("checking files")

	reports, err := checker.Check(ctx, cfg.Files)
	if err != nil {
		return fmt.Errorf("run command: %w", err)
	}

	failed := exec.Print(cliCtx.App.Writer, reports)

	if !cfg.Watch {
		if failed {
			return ErrCheckFailed
		}

		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := exec.NewWatcher(checker, cfg.Files)
	if err != nil {
		return fmt.Errorf("run command: %w", err)
	}

	logger.Info().Msg("watching for changes")

	err = watcher.Run(ctx, func(reports []exec.Report) {
		if !exec.Print(cliCtx.App.Writer, reports) {
			logger.Info().Int(semconv.FileCount, len(reports)).Msg("no errors")
		}
	})
	if err != nil {
		return fmt.Errorf("run command: %w", err)
	}

	logger.Info().Msg("received cancel signal")

	return nil
}
