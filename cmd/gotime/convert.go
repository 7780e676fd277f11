package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ordishs/gotime/timeunit"
	"github.com/ordishs/gotime/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	var from, to string

	convertCommand := &cobra.Command{
		Use:   "convert AMOUNT",
		Short: "Convert an amount from one time unit to another",
		Long: `Convert an amount from one time unit to another.

Converting to a coarser unit truncates. Unit names ignore case.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.OutOrStdout(), args[0], from, to)
		},
	}

	convertCommand.Flags().StringVarP(&from, "from", "f", "Milliseconds", "unit of AMOUNT")
	convertCommand.Flags().StringVarP(&to, "to", "t", "Seconds", "unit to convert to")

	RootCommand.AddCommand(convertCommand)
}

func runConvert(out io.Writer, amountArg string, fromArg string, toArg string) error {
	amount, err := strconv.ParseUint(amountArg, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "AMOUNT %q", amountArg)
	}

	from, err := parseUnit(fromArg)
	if err != nil {
		return err
	}

	to, err := parseUnit(toArg)
	if err != nil {
		return err
	}

	res, err := from.Convert(amount, to)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s = %s %s\n", utils.Thousands(amount), from, utils.Thousands(res), to)

	return nil
}

func parseUnit(s string) (timeunit.TimeUnit, error) {
	u, ok := timeunit.FromNameCaseInsensitive(s)
	if !ok {
		return 0, errors.Wrapf(timeunit.ErrInvalidUnit, "%q, see 'units'", s)
	}

	return u, nil
}
