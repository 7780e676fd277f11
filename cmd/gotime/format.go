package main

import (
	"fmt"
	"io"
	"time"

	"github.com/ncruces/go-strftime"
	"github.com/ordishs/gotime"
	"github.com/ordishs/gotime/formatter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type formatParams struct {
	pattern  string
	at       string
	epoch    int64
	epochSet bool
	naive    bool
}

func init() {
	var params formatParams

	formatCommand := &cobra.Command{
		Use:   "format",
		Short: "Print an instant using one of the patterns",
		Long: `Print an instant using one of the patterns.

The pattern may be given by name (YearMonthDay) or by template (%Y-%m-%d).
Without --pattern the formatter_pattern setting is used. Without --at or
--epoch the current time is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params.epochSet = cmd.Flags().Changed("epoch")
			return runFormat(cmd.OutOrStdout(), params, time.Now)
		},
	}

	formatCommand.Flags().StringVarP(&params.pattern, "pattern", "p", "", "pattern name or template")
	formatCommand.Flags().StringVar(&params.at, "at", "", `UTC instant as "YYYY-MM-DD HH:MM:SS"`)
	formatCommand.Flags().Int64Var(&params.epoch, "epoch", 0, "instant as seconds since 1970-01-01T00:00:00Z")
	formatCommand.Flags().BoolVar(&params.naive, "naive", false, "use the wall clock of the local zone instead of UTC")
	formatCommand.MarkFlagsMutuallyExclusive("at", "epoch")

	RootCommand.AddCommand(formatCommand)
}

func runFormat(out io.Writer, params formatParams, now func() time.Time) error {
	p, err := resolvePattern(params.pattern)
	if err != nil {
		return err
	}

	t := now()

	switch {
	case params.at != "" && params.epochSet:
		return errors.New("--at and --epoch cannot be used together")
	case params.at != "":
		t, err = strftime.Parse(formatter.TemplateYearMonthDayHourMinuteSecond, params.at)
		if err != nil {
			return errors.Wrapf(err, "parsing --at %q", params.at)
		}
	case params.epochSet:
		t = time.Unix(params.epoch, 0)
	}

	if params.naive {
		fmt.Fprintln(out, formatter.FormatNaive(t, p))
	} else {
		fmt.Fprintln(out, formatter.Format(t, p))
	}

	return nil
}

func resolvePattern(s string) (formatter.Pattern, error) {
	if s == "" {
		p, _ := gotime.Config().GetPattern("formatter_pattern", formatter.YearMonthDayHourMinuteSecond)
		return p, nil
	}

	if p, ok := formatter.FromName(s); ok {
		return p, nil
	}

	if p, ok := formatter.FromTemplate(s); ok {
		return p, nil
	}

	return 0, errors.Errorf("unknown pattern %q, see 'patterns'", s)
}
