package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ympay/payroll-calculator/internal/calculation"
	"github.com/ympay/payroll-calculator/internal/config"
	"github.com/ympay/payroll-calculator/internal/domain"
	"github.com/ympay/payroll-calculator/internal/output"
)

type calculateOptions struct {
	year      int
	month     int
	outputDir string
}

func newCalculateCommand(root *rootOptions) *cobra.Command {
	opts := &calculateOptions{}

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate the payslip for one pay cycle",
		Example: `  paycalc calculate --input timesheet.yaml --year 2025 --month 1
  paycalc calculate -i timesheet.yaml -f detailed-csv --output-dir reports`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := stringFlagOrEnv(cmd, "input", EnvInput)
			if input == "" {
				return fmt.Errorf("an input timesheet is required (--input or %s)", EnvInput)
			}
			format := stringFlagOrEnv(cmd, "format", EnvFormat)
			if output.NormalizeFormatName(format) == "all" && opts.outputDir == "" {
				return fmt.Errorf("format %q writes several files and requires --output-dir", format)
			}
			holidays := stringFlagOrEnv(cmd, "holidays", EnvHolidays)

			ts, err := loadTimesheet(input, holidays)
			if err != nil {
				return err
			}

			engine := calculation.NewCalculationEngineForTimesheet(ts)
			engine.SetLogger(root.sugar())

			year, month, err := resolveTarget(engine.Cycles, opts.year, opts.month)
			if err != nil {
				return err
			}

			summary := engine.CalculateTimesheet(ts, year, month)
			summary.Assumptions = output.GenerateAssumptions(engine.Rules)

			if opts.outputDir != "" {
				paths, err := output.GenerateReport(&summary, format, opts.outputDir)
				if err != nil {
					return err
				}
				for _, p := range paths {
					fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
				}
				return nil
			}
			return output.WriteReport(cmd.OutOrStdout(), &summary, format)
		},
	}

	cmd.Flags().StringP("input", "i", "", "timesheet file (YAML or JSON)")
	cmd.Flags().StringP("format", "f", "console", "output format")
	cmd.Flags().String("holidays", "", "holiday CSV file or directory of CSV files")
	cmd.Flags().IntVar(&opts.year, "year", 0, "pay year (default: the current cycle)")
	cmd.Flags().IntVar(&opts.month, "month", 0, "pay month 1-12 (default: the current cycle)")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", "", "write the report to a file in this directory instead of stdout")
	return cmd
}

// loadTimesheet reads the timesheet and merges holiday data files into it.
func loadTimesheet(input, holidays string) (*domain.Timesheet, error) {
	ts, err := config.NewInputParser().LoadFromFile(input)
	if err != nil {
		return nil, err
	}
	if holidays != "" {
		entries, err := loadHolidayEntries(holidays)
		if err != nil {
			return nil, err
		}
		ts.Holidays = append(ts.Holidays, entries...)
	}
	return ts, nil
}

func loadHolidayEntries(path string) ([]domain.HolidayEntry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("holiday data: %w", err)
	}
	if info.IsDir() {
		return config.NewHolidayLoader(path).LoadAll()
	}
	return config.NewHolidayLoader("").LoadFile(path)
}

// resolveTarget picks the pay month; an unset month means the cycle containing today.
func resolveTarget(cycles calculation.CycleResolver, year, month int) (int, time.Month, error) {
	if month == 0 {
		current := cycles.Current()
		if year == 0 {
			return current.Year, current.Month, nil
		}
		return year, current.Month, nil
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	if year == 0 {
		year = cycles.Current().Year
	}
	return year, time.Month(month), nil
}
