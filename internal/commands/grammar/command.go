package grammar

import (
	"fmt"
	"os"

	"github.com/charj-lang/charj/internal/charj/grammar"
	cli "github.com/urfave/cli/v2"
)

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "grammar",
		Usage:     "Prints the Charj grammar in EBNF.",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verify",
				Usage: "Verify the grammar, or FILE when given, instead of printing it.",
			},
			&cli.BoolFlag{
				Name:  "list",
				Usage: "List production names instead of the grammar text.",
			},
		},
		Action: run,
	}
}

func run(cliCtx *cli.Context) error {
	w := cliCtx.App.Writer

	if cliCtx.Bool("verify") {
		if err := verify(cliCtx.Args().First()); err != nil {
			return err
		}

		fmt.Fprintln(w, "ok")

		return nil
	}

	if cliCtx.Bool("list") {
		g, err := grammar.Load()
		if err != nil {
			return err
		}

		for _, name := range grammar.Productions(g) {
			fmt.Fprintln(w, name)
		}

		return nil
	}

	_, err := fmt.Fprint(w, grammar.Source())

	return err
}

func verify(path string) error {
	if path == "" {
		return grammar.Verify()
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return grammar.Check(path, f)
}
