package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/warp/paydate-engine/calendar"
	"github.com/warp/paydate-engine/paydate"
)

func newNextCmd(a *app) *cobra.Command {
	var annualGross string
	c := &cobra.Command{
		Use:   "next KIND FIRST_PAYDATE COUNT",
		Short: "Print the next COUNT paydates after FIRST_PAYDATE",
		Long: `Print the next COUNT paydates after FIRST_PAYDATE, one per line.
KIND is one of WEEKLY, BIWEEKLY, MONTHLY. FIRST_PAYDATE is YYYY-MM-DD.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := paydate.ParseRequest(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			if annualGross == "" {
				for _, d := range a.engine.Generate(req) {
					fmt.Fprintln(cmd.OutOrStdout(), d)
				}
				return nil
			}

			annual, err := paydate.ParseAmount(annualGross)
			if err != nil {
				return err
			}
			for _, p := range a.engine.Schedule(req, annual) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p.Date, p.Gross.StringFixed(2))
			}
			return nil
		},
	}
	c.Flags().StringVar(&annualGross, "annual-gross", "", "annual gross pay; prints the per-period amount next to each date")
	return c
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check DATE",
		Short: "Classify DATE as holiday, weekend or valid paydate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := paydate.ParseDate("date", args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			e := a.engine
			fmt.Fprintf(out, "date:          %s (%s)\n", d, d.Weekday())
			if h, ok := e.Holidays.Lookup(d); ok && h.Name != "" {
				fmt.Fprintf(out, "holiday:       true (%s)\n", h.Name)
			} else if ok {
				fmt.Fprintln(out, "holiday:       true")
			} else {
				fmt.Fprintln(out, "holiday:       false")
			}
			fmt.Fprintf(out, "weekend:       %t\n", e.IsWeekend(d))
			fmt.Fprintf(out, "valid paydate: %t\n", e.IsValidPaydate(d))
			fmt.Fprintf(out, "corrected:     %s\n", e.Correct(d))
			return nil
		},
	}
}

func newShiftCmd(a *app) *cobra.Command {
	var unitName string
	var backward bool
	c := &cobra.Command{
		Use:   "shift DATE COUNT",
		Short: "Shift DATE by COUNT days or months",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := paydate.ParseDate("date", args[0])
			if err != nil {
				return err
			}
			count, err := paydate.ParseCount(args[1])
			if err != nil {
				return err
			}
			unit, err := paydate.ParseUnit(unitName)
			if err != nil {
				return err
			}
			shifted := paydate.IncreaseDate(d, count, unit)
			if backward {
				shifted = paydate.DecreaseDate(d, count, unit)
			}
			fmt.Fprintln(cmd.OutOrStdout(), shifted)
			return nil
		},
	}
	c.Flags().StringVar(&unitName, "unit", "day", "shift unit: day or month")
	c.Flags().BoolVar(&backward, "backward", false, "shift into the past")
	return c
}

func newHolidaysCmd(a *app) *cobra.Command {
	var from, to string
	c := &cobra.Command{
		Use:   "holidays",
		Short: "List holidays, optionally within --from/--to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var period calendar.Period
			var err error
			if from != "" {
				if period.Start, err = paydate.ParseDate("from", from); err != nil {
					return err
				}
			}
			if to != "" {
				if period.End, err = paydate.ParseDate("to", to); err != nil {
					return err
				}
			}
			if err := period.Validate(); err != nil {
				return err
			}
			for _, h := range a.engine.Holidays.Between(period) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%-9s\t%s\n", h.Date, h.Date.Weekday(), h.Name)
			}
			return nil
		},
	}
	c.Flags().StringVar(&from, "from", "", "first date of the window (YYYY-MM-DD)")
	c.Flags().StringVar(&to, "to", "", "last date of the window (YYYY-MM-DD)")
	return c
}
