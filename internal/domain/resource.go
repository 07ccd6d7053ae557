package domain

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

type Resource int

const (
	Glimmer Resource = iota
	LegendaryShards
	EnhancementCore
	EnhancementPrisms
	AscendantShards
	ExoticShards
)

// AllResources lists every resource in declaration order.
var AllResources = []Resource{
	Glimmer,
	LegendaryShards,
	EnhancementCore,
	EnhancementPrisms,
	AscendantShards,
	ExoticShards,
}

var resourceKeys = map[Resource]string{
	Glimmer:           "glimmer",
	LegendaryShards:   "legendary_shards",
	EnhancementCore:   "enhancement_core",
	EnhancementPrisms: "enhancement_prisms",
	AscendantShards:   "ascendant_shards",
	ExoticShards:      "exotic_shards",
}

var resourceNames = map[Resource]string{
	Glimmer:           "Glimmer",
	LegendaryShards:   "Legendary Shards",
	EnhancementCore:   "Enhancement Core",
	EnhancementPrisms: "Enhancement Prisms",
	AscendantShards:   "Ascendant Shards",
	ExoticShards:      "Exotic Shards",
}

// Only resources the calculator actually spends have artwork.
var resourceIcons = map[Resource]string{
	Glimmer:         "assets/resource_icons/glimmer.png",
	EnhancementCore: "assets/resource_icons/enhancement_core.jpg",
}

func (r Resource) Valid() bool {
	_, ok := resourceKeys[r]
	return ok
}

// Key is the stable snake_case identifier used in config and data files.
func (r Resource) Key() string {
	if k, ok := resourceKeys[r]; ok {
		return k
	}
	return fmt.Sprintf("resource(%d)", int(r))
}

// String returns the display name.
func (r Resource) String() string {
	if n, ok := resourceNames[r]; ok {
		return n
	}
	return r.Key()
}

func Name(r Resource) string { return r.String() }

// Icon returns the asset path for r, if there is one.
func Icon(r Resource) (string, bool) {
	p, ok := resourceIcons[r]
	return p, ok
}

func (r Resource) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("unknown resource %d", int(r))
	}
	return []byte(r.Key()), nil
}

func (r *Resource) UnmarshalText(b []byte) error {
	v, err := ParseResourceKey(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	return s
}

// ParseResourceKey accepts a key ("enhancement_core") or a display name ("Enhancement Core").
func ParseResourceKey(s string) (Resource, error) {
	want := normalizeKey(s)
	if want == "" {
		return 0, fmt.Errorf("empty resource")
	}
	for _, r := range AllResources {
		if resourceKeys[r] == want || normalizeKey(resourceNames[r]) == want {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown resource %q", s)
}

type resourceSearchItems []Resource

func (items resourceSearchItems) Len() int { return len(items) }

func (items resourceSearchItems) String(i int) string {
	return strings.ToLower(resourceNames[items[i]])
}

// ParseResource resolves user input to a Resource. Exact keys and names win;
// otherwise the input is fuzzy matched against display names ("enh core", "glim")
// and must match exactly one of them.
func ParseResource(query string) (Resource, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return 0, fmt.Errorf("empty resource")
	}
	if r, err := ParseResourceKey(q); err == nil {
		return r, nil
	}

	items := resourceSearchItems(AllResources)
	matches := fuzzy.FindFrom(strings.ToLower(q), items)
	if len(matches) == 0 {
		return 0, fmt.Errorf("unknown resource %q", query)
	}
	if len(matches) > 1 {
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, items[m.Index].String())
		}
		return 0, fmt.Errorf("ambiguous resource %q (matches %s)", query, strings.Join(names, ", "))
	}
	return items[matches[0].Index], nil
}
