package costs

import (
	"math"

	"github.com/aurceive/d2-crafting-cost/internal/domain"
)

// MaxSteps bounds the per-level breakdown callers should ask CostSteps for.
const MaxSteps = 10000

// StepCount is the number of levels in [from, to]; 0 for an inverted range.
func StepCount(from, to int) uint64 {
	if from > to {
		return 0
	}
	n := uint64(to) - uint64(from) + 1
	if n == 0 {
		// [math.MinInt, math.MaxInt] wraps around.
		return math.MaxUint64
	}
	return n
}

// CostSteps returns the cost of every level in [from, to], lowest level first.
// An inverted range yields no steps. Check StepCount first for untrusted ranges.
func CostSteps(from, to int) []domain.LevelStep {
	steps := make([]domain.LevelStep, 0, min(StepCount(from, to), MaxSteps))
	if from > to {
		return steps
	}
	for lvl := from; ; lvl++ {
		steps = append(steps, domain.LevelStep{Level: lvl, Costs: LevelCost(lvl)})
		if lvl == to {
			break
		}
	}
	return steps
}

// ComputeCost sums the per-level costs of [from, to] by resource.
// Resources appear in the order they are first seen. Levels sharing a cost bracket
// are added in one go, so the range size does not matter; totals saturate at math.MaxInt.
func ComputeCost(from, to int) []domain.ResourceCost {
	total := []domain.ResourceCost{}
	if from > to {
		return total
	}
	for lvl := from; ; {
		rule, ok := ruleFor(lvl)
		if !ok {
			// Unreachable while the last rule is a catch-all.
			break
		}
		end := min(rule.maxLevel, to)
		n := StepCount(lvl, end)
		for _, c := range rule.costs {
			total = addCost(total, domain.ResourceCost{Resource: c.Resource, Cost: mulSat(c.Cost, n)})
		}
		if end == to {
			break
		}
		lvl = end + 1
	}
	return total
}

// SumSteps folds an explicit per-level breakdown into totals, like ComputeCost.
func SumSteps(steps []domain.LevelStep) []domain.ResourceCost {
	total := []domain.ResourceCost{}
	for _, step := range steps {
		for _, c := range step.Costs {
			total = addCost(total, c)
		}
	}
	return total
}

func addCost(total []domain.ResourceCost, c domain.ResourceCost) []domain.ResourceCost {
	for i := range total {
		if total[i].Resource == c.Resource {
			total[i].Cost = addSat(total[i].Cost, c.Cost)
			return total
		}
	}
	return append(total, c)
}

// Costs are never negative, so only the upper bound needs clamping.
func addSat(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func mulSat(cost int, n uint64) int {
	if cost <= 0 || n == 0 {
		return 0
	}
	if n > uint64(math.MaxInt/cost) {
		return math.MaxInt
	}
	return cost * int(n)
}

// CostOf returns the amount of r in costs, or 0.
func CostOf(costs []domain.ResourceCost, r domain.Resource) int {
	for _, c := range costs {
		if c.Resource == r {
			return c.Cost
		}
	}
	return 0
}
