/*
main.go - Application entry point

PURPOSE:
  Command-line front end for the paydate engine. Every subcommand shares
  one configuration, logger and engine built in the root command's
  PersistentPreRunE.

COMMANDS:
  next KIND FIRST_PAYDATE COUNT   Print the next COUNT paydates
  check DATE                      Classify a date
  shift DATE COUNT                Shift a date by days or months
  holidays                        List holidays
  serve                           Run the HTTP API

GLOBAL FLAGS:
  --config      YAML config file (optional)
  --log-level   debug, info, warn, error
  --log-format  json, console

EXIT STATUS:
  0 on success, 1 on any error. Validation errors print nothing to
  stdout.

SEE ALSO:
  - config/config.go: settings and environment variables
  - api/server.go: routes served by `serve`
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/warp/paydate-engine/config"
	"github.com/warp/paydate-engine/paydate"
)

// app is the state shared by all subcommands.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	conf   *config.Configuration
	logger *zap.Logger
	engine *paydate.Engine
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "paydate",
		Short:         "Compute employee paydates",
		Long:          `Compute upcoming paydates, moving dates that fall on weekends or holidays to a business day.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format override (json, console)")

	root.AddCommand(
		newNextCmd(a),
		newCheckCmd(a),
		newShiftCmd(a),
		newHolidaysCmd(a),
		newServeCmd(a),
	)
	return root
}

func (a *app) init() error {
	conf, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logFormat != "" {
		conf.Logging.Format = a.logFormat
	}
	logger, err := config.NewLogger(conf.Logging, a.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	holidays, err := conf.HolidaySet()
	if err != nil {
		return err
	}

	a.conf = conf
	a.logger = logger
	a.engine = paydate.NewEngine(holidays, logger)
	logger.Debug("engine ready",
		zap.String("op", "main.init"),
		zap.Int("holidays", holidays.Len()),
	)
	return nil
}
