package domain

// ResourceCost is an amount of a single resource, either for one level or summed over a range.
type ResourceCost struct {
	Resource Resource
	Cost     int
}

// ResourceSource is an in-game activity that yields Amount of Resource per use.
type ResourceSource struct {
	Resource Resource
	Source   string
	Amount   int
}

// ResourceSourceWithAmount pairs a source with the number of uses needed to cover a target amount.
type ResourceSourceWithAmount struct {
	Source ResourceSource
	Amount int
}

// Configuration is the level range to calculate. Both ends are inclusive.
type Configuration struct {
	StartLevel int
	EndLevel   int
}

// DefaultConfiguration matches a fresh weapon being crafted up to level 20.
func DefaultConfiguration() Configuration {
	return Configuration{StartLevel: 1, EndLevel: 20}
}

// LevelStep is the cost of reaching Level from the level below it.
type LevelStep struct {
	Level int
	Costs []ResourceCost
}

// ResourceSources lists the source suggestions for gathering Amount of Resource.
type ResourceSources struct {
	Resource Resource
	Amount   int
	Sources  []ResourceSourceWithAmount
}

// Plan is everything the renderers need for one run.
type Plan struct {
	Config  Configuration
	Totals  []ResourceCost
	Steps   []LevelStep
	Sources []ResourceSources
}
