/*
main.go - Application entry point

PURPOSE:
  Command-line front end for the leave planner. Loads configuration,
  wires the calendar, store, engine, and metrics, then either serves the
  HTTP API or prints plans for a single payload.

COMMANDS:
  leave-planner serve                      Start the HTTP server
  leave-planner plan --payload prefs.json  Print plans as indented JSON

GLOBAL FLAGS:
  --config, -c   YAML or JSON config file (optional)

ENVIRONMENT:
  Every config key can be overridden with LEAVE_<SECTION>__<KEY>,
  e.g. LEAVE_SERVER__PORT=9090. See config/config.go.

EXAMPLES:
  # Serve with defaults on :8080
  ./leave-planner serve

  # Serve with an in-memory custom holiday store
  LEAVE_DATABASE__PATH=":memory:" ./leave-planner serve

  # One-shot plans for 2026
  ./leave-planner plan --payload prefs.json --year 2026

SEE ALSO:
  - serve.go: HTTP server and graceful shutdown
  - plan.go: one-shot planning
  - config/config.go: configuration keys
*/
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/warp/leave-planner/calendar"
	"github.com/warp/leave-planner/config"
	"github.com/warp/leave-planner/planner"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries what every subcommand needs after config is loaded.
type app struct {
	cfgPath string
	cfg     *config.Config
	logger  zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "leave-planner",
		Short:         "Annual leave planning engine",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			a.cfg = cfg
			a.logger = cfg.Logging.NewLogger(cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "configuration file (yaml or json)")

	root.AddCommand(newServeCmd(a), newPlanCmd(a))
	return root
}

func (a *app) newEngine(cal calendar.Provider) *planner.Engine {
	normalizer := planner.NewNormalizer(nil, a.cfg.Planner.StandardAllocation, a.cfg.Planner.DefaultRegion)
	return planner.NewEngine(cal, normalizer, a.logger.With().Str("component", "planner").Logger())
}
