package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/aurceive/d2-crafting-cost/internal/config"
	"github.com/aurceive/d2-crafting-cost/internal/costs"
	"github.com/aurceive/d2-crafting-cost/internal/domain"
	"github.com/aurceive/d2-crafting-cost/internal/logging"
	"github.com/aurceive/d2-crafting-cost/internal/output"
	"github.com/aurceive/d2-crafting-cost/internal/sources"
)

// Main runs the calculator with command line args and returns the process exit code.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	appRoot, err := FindRoot()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return MainIn(ctx, appRoot, args, stdout, stderr)
}

// MainIn is Main with an explicit app root.
func MainIn(ctx context.Context, appRoot string, args []string, stdout, stderr io.Writer) int {
	err := run(ctx, appRoot, args, stdout, stderr)
	if err == nil {
		return 0
	}
	if ee, ok := asExitError(err); ok {
		if ee.Err != nil && ee.Code != 0 {
			fmt.Fprintln(stderr, ee.Err)
		}
		return ee.Code
	}
	fmt.Fprintln(stderr, err)
	return 1
}

func run(ctx context.Context, appRoot string, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(appRoot, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			config.PrintUsage(stderr)
			return Exit(0)
		}
		return ExitWithError(2, err)
	}
	if err := logging.Setup(stderr, cfg.LogLevel); err != nil {
		return ExitWithError(2, err)
	}
	return Run(ctx, appRoot, cfg, stdout)
}

// Run computes the plan for cfg, prints it to stdout and optionally exports it.
func Run(ctx context.Context, appRoot string, cfg config.Config, stdout io.Writer) error {
	log := logging.Module("app")
	if cfg.ConfigPath != "" {
		log.Debug().Str("path", cfg.ConfigPath).Msg("loaded config")
	}

	resolver, err := sources.Load(resolvePath(appRoot, cfg.SourcesPath))
	if err != nil {
		return fmt.Errorf("load sources: %w", err)
	}

	levels := cfg.Levels
	if levels.StartLevel > levels.EndLevel {
		log.Warn().Int("from", levels.StartLevel).Int("to", levels.EndLevel).Msg("start level is above end level, nothing to craft")
	}

	if cfg.Steps && costs.StepCount(levels.StartLevel, levels.EndLevel) > costs.MaxSteps {
		log.Warn().Int("max", costs.MaxSteps).Msg("level range too long for a per-level breakdown, skipping steps")
	}

	plan := costs.BuildPlan(levels, resolver, costs.PlanOptions{IncludeSteps: cfg.Steps})
	if cfg.Resource != nil {
		plan.Sources = []domain.ResourceSources{resourceSources(plan, resolver, *cfg.Resource, cfg.Amount)}
	}
	log.Debug().Int("resources", len(plan.Totals)).Int("from", levels.StartLevel).Int("to", levels.EndLevel).Msg("computed cost")

	switch cfg.Format {
	case config.FormatJSON:
		if err := output.WritePlanJSON(stdout, plan); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
	default:
		output.PrintPlan(stdout, plan)
	}

	if !cfg.XLSX {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	path := resolvePath(appRoot, cfg.OutPath)
	if path == "" {
		path = output.DefaultXLSXPath(resolvePath(appRoot, cfg.OutDir), levels, time.Now())
	}
	if err := output.ExportPlanXLSX(path, plan); err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("exported xlsx")
	return nil
}

func resourceSources(plan domain.Plan, resolver costs.SourceResolver, r domain.Resource, amount *int) domain.ResourceSources {
	want := costs.CostOf(plan.Totals, r)
	if amount != nil {
		want = *amount
	}
	return domain.ResourceSources{Resource: r, Amount: want, Sources: resolver.GetSources(r, want)}
}
