package main

import (
	"os"
	"path"

	"github.com/spf13/cobra"
)

// RootCommand is the base command that all subcommands are added to.
var RootCommand = &cobra.Command{
	Use:          path.Base(os.Args[0]),
	Short:        "Format instants and convert between time units",
	SilenceUsage: true,
}

func main() {
	if err := RootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
