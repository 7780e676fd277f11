package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ordishs/gotime"
	"github.com/ordishs/gotime/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var logger = gotime.Log("gotime")

func init() {
	var unit string

	sleepCommand := &cobra.Command{
		Use:   "sleep AMOUNT",
		Short: "Block for AMOUNT of a time unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSleep(cmd.OutOrStdout(), args[0], unit, time.Sleep)
		},
	}

	sleepCommand.Flags().StringVarP(&unit, "unit", "u", "Milliseconds", "unit of AMOUNT")

	RootCommand.AddCommand(sleepCommand)
}

func runSleep(out io.Writer, amountArg string, unitArg string, sleep func(time.Duration)) error {
	amount, err := strconv.ParseUint(amountArg, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "AMOUNT %q", amountArg)
	}

	u, err := parseUnit(unitArg)
	if err != nil {
		return err
	}

	logger.Debugf("sleeping for %d %s", amount, u)

	start := time.Now()

	if err := u.SleepWith(amount, sleep); err != nil {
		return err
	}

	elapsed := time.Since(start)
	logger.Infof("slept %d %s in %s", amount, u, utils.HumanTimeUnit(elapsed))

	fmt.Fprintf(out, "slept %s %s\n", utils.Thousands(amount), u)

	return nil
}
