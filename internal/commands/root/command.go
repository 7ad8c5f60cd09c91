package root

import (
	"github.com/charj-lang/charj/internal/commands/check"
	"github.com/charj-lang/charj/internal/commands/configure"
	"github.com/charj-lang/charj/internal/commands/grammar"
	"github.com/charj-lang/charj/internal/commands/lsp"
	"github.com/charj-lang/charj/internal/commands/parse"
	"github.com/charj-lang/charj/internal/defaults"
	cli "github.com/urfave/cli/v2"
)

func NewCommand() *cli.App {
	return &cli.App{
		Name:    "charj",
		Usage:   "Syntactic front end of the Charj language.",
		Version: defaults.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "One of trace, debug, info, warn or error. Env: CHARJ_LOG_LEVEL.",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "console or json. Env: CHARJ_LOG_FORMAT.",
			},
		},
		Commands: []*cli.Command{
			check.NewCommand(),
			configure.NewCommand(),
			grammar.NewCommand(),
			lsp.NewCommand(),
			parse.NewCommand(),
		},
	}
}
