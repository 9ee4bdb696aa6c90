package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ympay/payroll-calculator/internal/calculation"
	"github.com/ympay/payroll-calculator/internal/domain"
	"github.com/ympay/payroll-calculator/pkg/dateutil"
)

type holidaysOptions struct {
	year  int
	month int
}

func newHolidaysCommand(root *rootOptions) *cobra.Command {
	opts := &holidaysOptions{}

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "List public holidays for a year or a pay cycle",
		Example: `  paycalc holidays --year 2026
  paycalc holidays --year 2025 --month 2 --holidays data/holidays`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				entries []domain.HolidayEntry
				rules   = domain.DefaultPayrollRules()
			)
			if input, _ := cmd.Flags().GetString("input"); input != "" {
				ts, err := loadTimesheet(input, "")
				if err != nil {
					return err
				}
				entries = append(entries, ts.Holidays...)
				if ts.Rules != nil {
					rules = *ts.Rules
				}
			}
			if path := stringFlagOrEnv(cmd, "holidays", EnvHolidays); path != "" {
				extra, err := loadHolidayEntries(path)
				if err != nil {
					return err
				}
				entries = append(entries, extra...)
			}

			calendar := calculation.DefaultCalendar().WithEntries(entries)
			cycles := calculation.NewCycleResolver(rules.WithDefaults().Cycle)

			var start, end time.Time
			switch {
			case opts.month != 0:
				year, month, err := resolveTarget(cycles, opts.year, opts.month)
				if err != nil {
					return err
				}
				c := cycles.Resolve(year, month)
				start, end = c.Start, c.End
			default:
				year := opts.year
				if year == 0 {
					year = cycles.Current().Year
				}
				start, end = dateutil.Date(year, 1, 1), dateutil.Date(year, 12, 31)
			}

			holidays := calendar.HolidaysBetween(start, end)
			root.sugar().Debugf("%d holidays between %s and %s", len(holidays), dateutil.DateKey(start), dateutil.DateKey(end))

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, h := range holidays {
				kind := "movable"
				if h.Fixed {
					kind = "fixed"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", dateutil.DateKey(h.Date), h.Date.Weekday().String()[:3], h.Name, kind)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringP("input", "i", "", "timesheet whose holidays and cycle rules are included")
	cmd.Flags().String("holidays", "", "holiday CSV file or directory of CSV files")
	cmd.Flags().IntVar(&opts.year, "year", 0, "calendar year (default: current)")
	cmd.Flags().IntVar(&opts.month, "month", 0, "list the pay cycle of this month instead of the whole year")
	return cmd
}
