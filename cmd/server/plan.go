package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/warp/leave-planner/calendar"
	"github.com/warp/leave-planner/generic"
	"github.com/warp/leave-planner/planner"
	"github.com/warp/leave-planner/store/sqlite"
)

type planFlags struct {
	payload string
	year    int
	today   string
}

func newPlanCmd(a *app) *cobra.Command {
	var f planFlags
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print recommended plans for a preference payload",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := a.plan(f)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(plans)
		},
	}
	cmd.Flags().StringVarP(&f.payload, "payload", "p", "", "JSON preference payload file")
	cmd.Flags().IntVar(&f.year, "year", 0, "plan year (default: current year)")
	cmd.Flags().StringVar(&f.today, "today", "", "override today's date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("payload")
	return cmd
}

func (a *app) plan(f planFlags) (map[string]planner.RecommendedPlan, error) {
	raw, err := os.ReadFile(f.payload)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	var payload planner.Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	var sources []calendar.Source
	// Custom holidays are only read when the database already exists.
	if _, err := os.Stat(a.cfg.Database.Path); err == nil {
		store, err := sqlite.New(a.cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		defer store.Close()
		sources = append(sources, store)
	}
	cal := calendar.NewLayered(calendar.NewStatic(), a.logger.With().Str("component", "calendar").Logger(), sources...)
	engine := a.newEngine(cal)

	if f.today != "" {
		today, err := generic.ParseDate(f.today)
		if err != nil {
			return nil, err
		}
		engine.Now = func() time.Time { return today.Time }
	}

	return engine.GenerateAllPlans(payload, f.year)
}
