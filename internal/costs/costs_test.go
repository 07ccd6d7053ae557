package costs_test

import (
	"math"
	"slices"
	"testing"

	"github.com/aurceive/d2-crafting-cost/internal/costs"
	"github.com/aurceive/d2-crafting-cost/internal/domain"
)

func bracket(glimmer, cores int) []domain.ResourceCost {
	return []domain.ResourceCost{
		{Resource: domain.Glimmer, Cost: glimmer},
		{Resource: domain.EnhancementCore, Cost: cores},
	}
}

func TestLevelCost_Brackets(t *testing.T) {
	cases := []struct {
		level int
		want  []domain.ResourceCost
	}{
		{-5, bracket(3000, 2)},
		{0, bracket(3000, 2)},
		{1, bracket(3000, 2)},
		{10, bracket(3000, 2)},
		{11, bracket(5000, 3)},
		{15, bracket(5000, 3)},
		{16, bracket(7500, 4)},
		{20, bracket(7500, 4)},
		{21, bracket(15000, 5)},
		{100, bracket(15000, 5)},
	}
	for _, tc := range cases {
		if got := costs.LevelCost(tc.level); !slices.Equal(got, tc.want) {
			t.Fatalf("LevelCost(%d): expected %#v, got %#v", tc.level, tc.want, got)
		}
	}
}

func TestLevelCost_ReturnsCopy(t *testing.T) {
	c := costs.LevelCost(1)
	c[0].Cost = 1
	if got := costs.LevelCost(1)[0].Cost; got != 3000 {
		t.Fatalf("expected table to be unchanged, got glimmer=%d", got)
	}
}

func TestComputeCost_SingleLevel(t *testing.T) {
	if got, want := costs.ComputeCost(1, 1), costs.LevelCost(1); !slices.Equal(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestComputeCost_OneToTwenty(t *testing.T) {
	got := costs.ComputeCost(1, 20)
	want := bracket(92500, 55)
	if !slices.Equal(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}

	// Summing must not leak into the table.
	if c := costs.LevelCost(1); c[0].Cost != 3000 {
		t.Fatalf("expected level 1 glimmer=3000 after summing, got %d", c[0].Cost)
	}
}

func TestComputeCost_MatchesPerLevelSum(t *testing.T) {
	for from := -2; from <= 25; from += 3 {
		for to := from; to <= 30; to += 4 {
			wantG, wantC := 0, 0
			for lvl := from; lvl <= to; lvl++ {
				c := costs.LevelCost(lvl)
				wantG += costs.CostOf(c, domain.Glimmer)
				wantC += costs.CostOf(c, domain.EnhancementCore)
			}
			got := costs.ComputeCost(from, to)
			if g := costs.CostOf(got, domain.Glimmer); g != wantG {
				t.Fatalf("[%d,%d] glimmer: expected %d, got %d", from, to, wantG, g)
			}
			if c := costs.CostOf(got, domain.EnhancementCore); c != wantC {
				t.Fatalf("[%d,%d] cores: expected %d, got %d", from, to, wantC, c)
			}
			if len(got) != 2 {
				t.Fatalf("[%d,%d] expected 2 resources, got %#v", from, to, got)
			}
		}
	}
}

func TestComputeCost_InvertedRangeIsEmpty(t *testing.T) {
	got := costs.ComputeCost(5, 1)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
}

func TestComputeCost_Idempotent(t *testing.T) {
	a := costs.ComputeCost(3, 22)
	b := costs.ComputeCost(3, 22)
	if !slices.Equal(a, b) {
		t.Fatalf("expected identical results, got %#v and %#v", a, b)
	}
}

func TestCostSteps(t *testing.T) {
	steps := costs.CostSteps(9, 11)
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	for i, s := range steps {
		if s.Level != 9+i {
			t.Fatalf("expected step[%d].Level=%d, got %d", i, 9+i, s.Level)
		}
		if !slices.Equal(s.Costs, costs.LevelCost(s.Level)) {
			t.Fatalf("step %d: unexpected costs %#v", s.Level, s.Costs)
		}
	}
	if got := costs.CostSteps(2, 1); len(got) != 0 {
		t.Fatalf("expected no steps, got %#v", got)
	}
}

type fakeResolver map[domain.Resource]int

func (f fakeResolver) GetSources(r domain.Resource, amount int) []domain.ResourceSourceWithAmount {
	per, ok := f[r]
	if !ok {
		return []domain.ResourceSourceWithAmount{}
	}
	return []domain.ResourceSourceWithAmount{{
		Source: domain.ResourceSource{Resource: r, Source: "fake", Amount: per},
		Amount: amount / per,
	}}
}

func TestBuildPlan(t *testing.T) {
	res := fakeResolver{domain.Glimmer: 100}
	cfg := domain.Configuration{StartLevel: 1, EndLevel: 2}

	plan := costs.BuildPlan(cfg, res, costs.PlanOptions{})
	if plan.Config != cfg {
		t.Fatalf("unexpected config %#v", plan.Config)
	}
	if !slices.Equal(plan.Totals, bracket(6000, 4)) {
		t.Fatalf("unexpected totals %#v", plan.Totals)
	}
	if plan.Steps != nil {
		t.Fatalf("expected no steps without IncludeSteps, got %#v", plan.Steps)
	}
	if len(plan.Sources) != 2 {
		t.Fatalf("expected sources for 2 resources, got %#v", plan.Sources)
	}
	g := plan.Sources[0]
	if g.Resource != domain.Glimmer || g.Amount != 6000 || len(g.Sources) != 1 || g.Sources[0].Amount != 60 {
		t.Fatalf("unexpected glimmer sources %#v", g)
	}
	if c := plan.Sources[1]; c.Resource != domain.EnhancementCore || len(c.Sources) != 0 {
		t.Fatalf("expected cores without sources, got %#v", c)
	}

	withSteps := costs.BuildPlan(cfg, res, costs.PlanOptions{IncludeSteps: true})
	if len(withSteps.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(withSteps.Steps))
	}
}

func TestComputeCost_HugeRange(t *testing.T) {
	got := costs.ComputeCost(1, 1<<50)
	// Glimmer overflows int and saturates; cores are 55 for levels 1..20, then 5 per level.
	wantG := math.MaxInt
	wantC := 55 + 5*(1<<50-20)
	if !slices.Equal(got, bracket(wantG, wantC)) {
		t.Fatalf("expected %#v, got %#v", bracket(wantG, wantC), got)
	}
}

func TestComputeCost_Saturates(t *testing.T) {
	got := costs.ComputeCost(math.MinInt, math.MaxInt)
	if !slices.Equal(got, bracket(math.MaxInt, math.MaxInt)) {
		t.Fatalf("expected saturated totals, got %#v", got)
	}

	// Ends at math.MaxInt without wrapping around.
	got = costs.ComputeCost(math.MaxInt-1, math.MaxInt)
	if !slices.Equal(got, bracket(30000, 10)) {
		t.Fatalf("expected two top-bracket levels, got %#v", got)
	}
}

func TestCostSteps_EndsAtMaxInt(t *testing.T) {
	steps := costs.CostSteps(math.MaxInt-2, math.MaxInt)
	if len(steps) != 3 || steps[2].Level != math.MaxInt {
		t.Fatalf("expected 3 steps ending at MaxInt, got %#v", steps)
	}
}

func TestStepCount(t *testing.T) {
	cases := []struct {
		from, to int
		want     uint64
	}{
		{1, 20, 20},
		{5, 1, 0},
		{0, 0, 1},
		{math.MinInt, -1, 1 << 63},
		{math.MinInt, math.MaxInt, math.MaxUint64},
	}
	for _, tc := range cases {
		if got := costs.StepCount(tc.from, tc.to); got != tc.want {
			t.Fatalf("StepCount(%d, %d): expected %d, got %d", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestBuildPlan_HugeRangeSkipsSteps(t *testing.T) {
	cfg := domain.Configuration{StartLevel: 1, EndLevel: 1 << 50}
	plan := costs.BuildPlan(cfg, fakeResolver{}, costs.PlanOptions{IncludeSteps: true})
	if plan.Steps != nil {
		t.Fatalf("expected no steps for a huge range, got %d", len(plan.Steps))
	}
	if len(plan.Totals) != 2 {
		t.Fatalf("expected totals, got %#v", plan.Totals)
	}
}
