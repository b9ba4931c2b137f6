package main

import (
	"os"

	"github.com/idilsaglam/packlist/internal/cli"
)

func main() {
	// Flags, config and subcommands are all handled by the CLI runner.
	os.Exit(cli.Run(os.Args[1:]))
}
