package costs

import "github.com/aurceive/d2-crafting-cost/internal/domain"

// SourceResolver suggests source uses for an amount of a resource.
type SourceResolver interface {
	GetSources(resource domain.Resource, targetAmount int) []domain.ResourceSourceWithAmount
}

type PlanOptions struct {
	// IncludeSteps keeps the per-level breakdown in the plan.
	// Ranges longer than MaxSteps are planned without it.
	IncludeSteps bool
}

// BuildPlan computes totals for cfg and resolves sources for every resource in the totals.
// Resources without any known source are still listed, with no sources.
func BuildPlan(cfg domain.Configuration, resolver SourceResolver, opts PlanOptions) domain.Plan {
	plan := domain.Plan{
		Config:  cfg,
		Totals:  ComputeCost(cfg.StartLevel, cfg.EndLevel),
		Sources: []domain.ResourceSources{},
	}
	if opts.IncludeSteps && StepCount(cfg.StartLevel, cfg.EndLevel) <= MaxSteps {
		plan.Steps = CostSteps(cfg.StartLevel, cfg.EndLevel)
	}
	for _, t := range plan.Totals {
		plan.Sources = append(plan.Sources, domain.ResourceSources{
			Resource: t.Resource,
			Amount:   t.Cost,
			Sources:  resolver.GetSources(t.Resource, t.Cost),
		})
	}
	return plan
}
