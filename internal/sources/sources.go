package sources

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aurceive/d2-crafting-cost/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed sources.yaml
var builtinYAML []byte

var builtin = mustParseBuiltin()

type rawSource struct {
	Resource string `yaml:"resource"`
	Source   string `yaml:"source"`
	Amount   int    `yaml:"amount"`
}

func mustParseBuiltin() []domain.ResourceSource {
	out, err := Parse(builtinYAML)
	if err != nil {
		panic(fmt.Sprintf("builtin sources.yaml: %v", err))
	}
	if err := Validate(out); err != nil {
		panic(fmt.Sprintf("builtin sources.yaml: %v", err))
	}
	return out
}

// Parse decodes a YAML list of {resource, source, amount} entries.
func Parse(b []byte) ([]domain.ResourceSource, error) {
	var raw []rawSource
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	out := make([]domain.ResourceSource, 0, len(raw))
	for i, r := range raw {
		res, err := domain.ParseResourceKey(r.Resource)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, domain.ResourceSource{
			Resource: res,
			Source:   strings.TrimSpace(r.Source),
			Amount:   r.Amount,
		})
	}
	return out, nil
}

// Validate rejects entries the resolver cannot divide by and duplicate labels per resource.
func Validate(list []domain.ResourceSource) error {
	type key struct {
		res    domain.Resource
		source string
	}
	seen := make(map[key]struct{}, len(list))
	for _, s := range list {
		if !s.Resource.Valid() {
			return fmt.Errorf("source %q: unknown resource %d", s.Source, int(s.Resource))
		}
		if s.Source == "" {
			return fmt.Errorf("resource=%s: source label is empty", s.Resource.Key())
		}
		if s.Amount <= 0 {
			return fmt.Errorf("resource=%s source=%q: amount must be > 0, got %d", s.Resource.Key(), s.Source, s.Amount)
		}
		k := key{res: s.Resource, source: strings.ToLower(s.Source)}
		if _, ok := seen[k]; ok {
			return fmt.Errorf("resource=%s: duplicate source %q", s.Resource.Key(), s.Source)
		}
		seen[k] = struct{}{}
	}
	return nil
}

// Builtin returns a copy of the compiled-in source table.
func Builtin() []domain.ResourceSource {
	return append([]domain.ResourceSource(nil), builtin...)
}

// LoadFile reads extra sources from path.
func LoadFile(path string) ([]domain.ResourceSource, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources file (%s): %w", path, err)
	}
	list, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parse sources file (%s): %w", path, err)
	}
	return list, nil
}
