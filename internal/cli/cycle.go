package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ympay/payroll-calculator/internal/calculation"
	"github.com/ympay/payroll-calculator/internal/domain"
	"github.com/ympay/payroll-calculator/pkg/dateutil"
)

type cycleOptions struct {
	year   int
	month  int
	date   string
	asJSON bool
}

func newCycleCommand(root *rootOptions) *cobra.Command {
	opts := &cycleOptions{}

	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "Show pay-cycle boundaries",
		Example: `  paycalc cycle --year 2025 --month 1
  paycalc cycle --date 2025-01-25`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := rulesFromInput(cmd)
			if err != nil {
				return err
			}
			cycles := calculation.NewCycleResolver(rules.WithDefaults().Cycle)

			var cycle calculation.PayCycle
			if opts.date != "" {
				d, err := dateutil.ParseDate(opts.date)
				if err != nil {
					return fmt.Errorf("invalid --date %q: %w", opts.date, err)
				}
				cycle = cycles.Containing(d)
			} else {
				year, month, err := resolveTarget(cycles, opts.year, opts.month)
				if err != nil {
					return err
				}
				cycle = cycles.Resolve(year, month)
			}
			root.sugar().Debugf("resolved cycle %s with start day %d", cycle, cycles.Rule.StartDay)

			if opts.asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(cycle)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s, %d days\n", cycle, len(cycle.Days()))
			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "", "timesheet whose rules override the cycle start day")
	cmd.Flags().IntVar(&opts.year, "year", 0, "pay year")
	cmd.Flags().IntVar(&opts.month, "month", 0, "pay month 1-12")
	cmd.Flags().StringVar(&opts.date, "date", "", "show the cycle containing this YYYY-MM-DD date")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print as JSON")
	return cmd
}

// rulesFromInput returns the rule overrides of the --input timesheet, or the defaults.
func rulesFromInput(cmd *cobra.Command) (domain.PayrollRules, error) {
	input, _ := cmd.Flags().GetString("input")
	if input == "" {
		return domain.DefaultPayrollRules(), nil
	}
	ts, err := loadTimesheet(input, "")
	if err != nil {
		return domain.PayrollRules{}, err
	}
	if ts.Rules == nil {
		return domain.DefaultPayrollRules(), nil
	}
	return *ts.Rules, nil
}
