package domain_test

import (
	"testing"

	"github.com/aurceive/d2-crafting-cost/internal/domain"
)

func TestResourceNames(t *testing.T) {
	want := map[domain.Resource]string{
		domain.Glimmer:           "Glimmer",
		domain.LegendaryShards:   "Legendary Shards",
		domain.EnhancementCore:   "Enhancement Core",
		domain.EnhancementPrisms: "Enhancement Prisms",
		domain.AscendantShards:   "Ascendant Shards",
		domain.ExoticShards:      "Exotic Shards",
	}
	for r, name := range want {
		if got := domain.Name(r); got != name {
			t.Fatalf("expected %q, got %q", name, got)
		}
	}
	if len(domain.AllResources) != len(want) {
		t.Fatalf("expected %d resources, got %d", len(want), len(domain.AllResources))
	}
}

func TestIcon(t *testing.T) {
	if p, ok := domain.Icon(domain.Glimmer); !ok || p != "assets/resource_icons/glimmer.png" {
		t.Fatalf("unexpected glimmer icon %q ok=%v", p, ok)
	}
	if p, ok := domain.Icon(domain.EnhancementCore); !ok || p != "assets/resource_icons/enhancement_core.jpg" {
		t.Fatalf("unexpected core icon %q ok=%v", p, ok)
	}
	if _, ok := domain.Icon(domain.ExoticShards); ok {
		t.Fatalf("expected no icon for exotic shards")
	}
}

func TestParseResource(t *testing.T) {
	cases := map[string]domain.Resource{
		"glimmer":             domain.Glimmer,
		"Glimmer":             domain.Glimmer,
		"glim":                domain.Glimmer,
		"enhancement_core":    domain.EnhancementCore,
		"Enhancement Core":    domain.EnhancementCore,
		"enh core":            domain.EnhancementCore,
		"exotic-shards":       domain.ExoticShards,
		"  legendary shards ": domain.LegendaryShards,
	}
	for in, want := range cases {
		got, err := domain.ParseResource(in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}

	for _, in := range []string{"", "   ", "zzz", "shards", "shard", "s", "e", "enh", "enhancement"} {
		if _, err := domain.ParseResource(in); err == nil {
			t.Fatalf("%q: expected error", in)
		}
	}
}

func TestResourceText(t *testing.T) {
	b, err := domain.AscendantShards.MarshalText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "ascendant_shards" {
		t.Fatalf("expected ascendant_shards, got %q", b)
	}

	var r domain.Resource
	if err := r.UnmarshalText([]byte("enhancement_prisms")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != domain.EnhancementPrisms {
		t.Fatalf("expected enhancement prisms, got %v", r)
	}
	if err := r.UnmarshalText([]byte("enh")); err == nil {
		t.Fatalf("expected strict keys to reject abbreviations")
	}
	if _, err := domain.Resource(99).MarshalText(); err == nil {
		t.Fatalf("expected error for unknown resource")
	}
}
