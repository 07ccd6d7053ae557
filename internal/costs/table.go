package costs

import (
	"math"

	"github.com/aurceive/d2-crafting-cost/internal/domain"
)

// costRule applies to every level up to and including maxLevel that an earlier rule did not take.
type costRule struct {
	maxLevel int
	costs    []domain.ResourceCost
}

// Evaluated in order, first match wins. The last rule (levels above 20) catches everything left.
// There is no lower bound: levels <= 0 cost the same as level 1.
var levelRules = []costRule{
	{maxLevel: 10, costs: []domain.ResourceCost{
		{Resource: domain.Glimmer, Cost: 3000},
		{Resource: domain.EnhancementCore, Cost: 2},
	}},
	{maxLevel: 15, costs: []domain.ResourceCost{
		{Resource: domain.Glimmer, Cost: 5000},
		{Resource: domain.EnhancementCore, Cost: 3},
	}},
	{maxLevel: 20, costs: []domain.ResourceCost{
		{Resource: domain.Glimmer, Cost: 7500},
		{Resource: domain.EnhancementCore, Cost: 4},
	}},
	{maxLevel: math.MaxInt, costs: []domain.ResourceCost{
		{Resource: domain.Glimmer, Cost: 15000},
		{Resource: domain.EnhancementCore, Cost: 5},
	}},
}

func ruleFor(level int) (costRule, bool) {
	for _, rule := range levelRules {
		if level <= rule.maxLevel {
			return rule, true
		}
	}
	return costRule{}, false
}

// LevelCost returns the resources needed to reach targetLevel from the level below it.
// The returned slice is a copy.
func LevelCost(targetLevel int) []domain.ResourceCost {
	if rule, ok := ruleFor(targetLevel); ok {
		return append([]domain.ResourceCost(nil), rule.costs...)
	}
	// Unreachable while the last rule is a catch-all.
	return []domain.ResourceCost{}
}
