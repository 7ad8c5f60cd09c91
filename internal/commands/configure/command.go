package configure

import (
	"fmt"
	"os"

	"github.com/charj-lang/charj/internal/commandinit"
	"github.com/charj-lang/charj/internal/commands/configure/config"
	"github.com/charj-lang/charj/internal/commands/configure/exec"
	"github.com/charj-lang/charj/internal/defaults"
	cli "github.com/urfave/cli/v2"
)

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "configure",
		Usage: "Writes a charj.json project file.",
		Flags: []cli.Flag{
			// required
			&cli.StringSliceFlag{
				Name:     "source",
				Usage:    "Source file or glob pattern, relative to the project file. Repeatable.",
				Required: true,
			},

			// optional
			&cli.StringFlag{
				Name:  "config-file",
				Usage: "Destination path for the project file. Env: CHARJ_CONFIG.",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "Number of files checked at once.",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing project file.",
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

	cfg, err := config.Read(cliCtx, os.Getenv)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	config.Print(cliCtx.App.Writer, cfg)

	tracerProvider, tpShutdown, err := commandinit.NewTracerProvider(ctx, defaults.ServiceName, cliCtx.Bool("otel"))
	if err != nil {
		return fmt.Errorf("create OTEL provider: %w", err)
	}
	defer tpShutdown(ctx)

	execConfig := exec.Config{
		ConfigFilePath: cfg.ConfigFilePath,
		Sources:        cfg.Sources,
		LogLevel:       cfg.LogLevel,
		Concurrency:    cfg.Concurrency,
		Force:          cfg.Force,
	}

	executor := exec.NewExecutor(exec.WithTracerProvider(tracerProvider))
	if err := executor.Run(ctx, execConfig); err != nil {
		return fmt.Errorf("run command: %w", err)
	}

	return nil
}
