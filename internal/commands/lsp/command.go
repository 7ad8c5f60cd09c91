package lsp

import (
	"fmt"
	"os"

	"github.com/charj-lang/charj/internal/commandinit"
	"github.com/charj-lang/charj/internal/defaults"
	"github.com/charj-lang/charj/internal/log/semconv"
	"github.com/tliron/commonlog"
	cli "github.com/urfave/cli/v2"

	_ "github.com/tliron/commonlog/simple"
)

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "lsp",
		Usage: "Runs a language server on stdio that reports syntax errors.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "verbosity",
				Usage: "Verbosity of the protocol log; 0 disables it.",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Write the protocol log to a file instead of stderr.",
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

	// stdout carries the protocol, so every log goes to stderr
	logger, err := commandinit.NewLogger(
		os.Stderr,
		firstOf(cliCtx.String("log-level"), os.Getenv("CHARJ_LOG_LEVEL"), defaults.LogLevel),
		firstOf(cliCtx.String("log-format"), os.Getenv("CHARJ_LOG_FORMAT"), defaults.LogFormat),
	)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger = logger.With().Str(semconv.Command, "lsp").Logger()
	ctx = logger.WithContext(ctx)

	var logFile *string
	if path := cliCtx.String("log-file"); path != "" {
		logFile = &path
	}

	commonlog.Configure(cliCtx.Int("verbosity"), logFile)

	tracerProvider, tpShutdown, err := commandinit.NewTracerProvider(ctx, defaults.ServiceName, cliCtx.Bool("otel"))
	if err != nil {
		return fmt.Errorf("create OTEL provider: %w", err)
	}
	defer tpShutdown(ctx)

	logger.Info().Msg("starting language server")

	if err := NewServer(ctx, WithTracerProvider(tracerProvider)).RunStdio(); err != nil {
		return fmt.Errorf("run language server: %w", err)
	}

	return nil
}

func firstOf(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}
