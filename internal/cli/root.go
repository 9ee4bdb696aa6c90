// Package cli implements the paycalc command line interface.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment variables consulted when the matching flag is not set.
const (
	EnvInput    = "PAYCALC_INPUT"
	EnvFormat   = "PAYCALC_FORMAT"
	EnvHolidays = "PAYCALC_HOLIDAYS"
)

type rootOptions struct {
	verbose bool
	envFile string
	logger  *zap.Logger
}

// NewRootCommand builds the paycalc command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "paycalc",
		Short:         "Monthly payroll calculator for shift workers",
		Long:          "paycalc computes base pay, overtime, allowances, insurance and personal income tax for one pay cycle from a timesheet.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEnvFile(opts.envFile); err != nil {
				return err
			}
			logger, err := newLogger(opts.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			zap.ReplaceGlobals(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "file with PAYCALC_* defaults")

	cmd.AddCommand(
		newCalculateCommand(opts),
		newHolidaysCommand(opts),
		newCycleCommand(opts),
		newExampleCommand(),
	)
	return cmd
}

// sugar returns the command logger, or a no-op logger before PersistentPreRunE ran.
func (o *rootOptions) sugar() *zap.SugaredLogger {
	if o.logger == nil {
		return zap.NewNop().Sugar()
	}
	return o.logger.Sugar()
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// stringFlagOrEnv returns the flag value unless it was left unset and the environment provides one.
func stringFlagOrEnv(cmd *cobra.Command, name, env string) string {
	v, _ := cmd.Flags().GetString(name)
	if cmd.Flags().Changed(name) {
		return v
	}
	if e, ok := os.LookupEnv(env); ok && e != "" {
		return e
	}
	return v
}
