package sources

import (
	"fmt"

	"github.com/aurceive/d2-crafting-cost/internal/domain"
)

// Resolver suggests how often each known source must be used to gather an amount.
// It is immutable and safe for concurrent use.
type Resolver struct {
	sources []domain.ResourceSource
}

func NewResolver(list []domain.ResourceSource) (*Resolver, error) {
	if err := Validate(list); err != nil {
		return nil, err
	}
	return &Resolver{sources: append([]domain.ResourceSource(nil), list...)}, nil
}

// Default resolves against the compiled-in table only.
func Default() *Resolver {
	return &Resolver{sources: Builtin()}
}

// Load resolves against the compiled-in table followed by the entries in extraPath.
// An empty extraPath is the same as Default.
func Load(extraPath string) (*Resolver, error) {
	if extraPath == "" {
		return Default(), nil
	}
	extra, err := LoadFile(extraPath)
	if err != nil {
		return nil, err
	}
	r, err := NewResolver(append(Builtin(), extra...))
	if err != nil {
		return nil, fmt.Errorf("sources file (%s): %w", extraPath, err)
	}
	return r, nil
}

func (r *Resolver) Sources() []domain.ResourceSource {
	return append([]domain.ResourceSource(nil), r.sources...)
}

// GetSources returns, in table order, every source of resource with the number of
// uses needed to reach targetAmount. A partial last use counts as a full one.
func (r *Resolver) GetSources(resource domain.Resource, targetAmount int) []domain.ResourceSourceWithAmount {
	out := []domain.ResourceSourceWithAmount{}
	for _, s := range r.sources {
		if s.Resource != resource {
			continue
		}
		out = append(out, domain.ResourceSourceWithAmount{Source: s, Amount: ceilDiv(targetAmount, s.Amount)})
	}
	return out
}

// ceilDiv rounds n/d up for d > 0. Go division truncates toward zero, which is
// already the ceiling for negative n.
func ceilDiv(n, d int) int {
	q := n / d
	if n%d != 0 && n > 0 {
		q++
	}
	return q
}
