package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charj-lang/charj/internal/charj/diagnose"
	"github.com/charj-lang/charj/internal/charj/source"
	"github.com/kr/pretty"
	cli "github.com/urfave/cli/v2"
)

var ErrParseFailed = errors.New("parse failed")

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Prints the syntax tree of a source file.",
		ArgsUsage: "FILE|-",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: json or pretty.",
				Value: "json",
			},
		},
		Action: run,
	}
}

func run(cliCtx *cli.Context) error {
	if cliCtx.NArg() != 1 {
		return fmt.Errorf("expected exactly one FILE argument, got %d", cliCtx.NArg())
	}

	format := cliCtx.String("format")
	if format != "json" && format != "pretty" {
		return fmt.Errorf("unknown format %q", format)
	}

	path := cliCtx.Args().First()

	content, err := readSource(cliCtx.App.Reader, path)
	if err != nil {
		return fmt.Errorf("read source file: %w", err)
	}

	result := diagnose.File(source.NewFile(path, string(content)))
	if result.Failed() {
		for _, diagnostic := range result.Diagnostics {
			fmt.Fprintf(cliCtx.App.ErrWriter, "%s: %s\n", result.File.Describe(diagnostic.Location), diagnostic.Message)
		}

		return ErrParseFailed
	}

	w := cliCtx.App.Writer

	if format == "pretty" {
		_, err := pretty.Fprintf(w, "%# v\n", result.Program)
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(Dump(result.Program)); err != nil {
		return fmt.Errorf("encode syntax tree: %w", err)
	}

	return nil
}

func readSource(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}
