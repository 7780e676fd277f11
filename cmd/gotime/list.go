package main

import (
	"fmt"
	"io"
	"time"

	"github.com/ordishs/gotime/formatter"
	"github.com/ordishs/gotime/timeunit"
	"github.com/ordishs/gotime/utils"
	"github.com/spf13/cobra"
)

func init() {
	patternsCommand := &cobra.Command{
		Use:   "patterns",
		Short: "List the patterns with their templates and the current time in each",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			listPatterns(cmd.OutOrStdout(), time.Now())
		},
	}

	unitsCommand := &cobra.Command{
		Use:   "units",
		Short: "List the time units and their size in nanoseconds",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			listUnits(cmd.OutOrStdout())
		},
	}

	RootCommand.AddCommand(patternsCommand, unitsCommand)
}

func listPatterns(out io.Writer, t time.Time) {
	for _, p := range formatter.Patterns() {
		fmt.Fprintf(out, "%-36s %-20s %s\n", p, p.Template(), formatter.Format(t, p))
	}
}

func listUnits(out io.Writer) {
	for _, u := range timeunit.Units() {
		fmt.Fprintf(out, "%-14s %26s ns\n", u, utils.Thousands(u.Scale()))
	}
}
