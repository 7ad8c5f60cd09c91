package main

import (
	"fmt"
	"os"

	"github.com/charj-lang/charj/internal/commands/root"
)

func main() {
	rootCmd := root.NewCommand()

	if err := rootCmd.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
