package examples

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed catalog.yaml
var catalogBytes []byte

// ErrUnknownExample is returned by Lookup for names outside the registry.
var ErrUnknownExample = errors.New("unknown example")

// Example is the catalog entry for one registered notebook.
type Example struct {
	Name        Name     `yaml:"name" json:"name"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Notebook    string   `yaml:"notebook" json:"notebook"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Requires    string   `yaml:"requires,omitempty" json:"requires,omitempty"`
}

type catalogFile struct {
	Examples []Example `yaml:"examples"`
}

var (
	catalogOnce    sync.Once
	catalogEntries []Example
	catalogErr     error
)

// Catalog returns the catalog entries in registry order.
func Catalog() ([]Example, error) {
	catalogOnce.Do(func() {
		catalogEntries, catalogErr = parseCatalog(catalogBytes, available[:])
	})
	if catalogErr != nil {
		return nil, catalogErr
	}
	out := make([]Example, len(catalogEntries))
	copy(out, catalogEntries)
	return out, nil
}

// Lookup returns the catalog entry for name.
func Lookup(name string) (Example, error) {
	if !IsRegistered(Name(name)) {
		return Example{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownExample, name, joinNames(available[:]))
	}
	entries, err := Catalog()
	if err != nil {
		return Example{}, err
	}
	for _, e := range entries {
		if e.Name == Name(name) {
			return e, nil
		}
	}
	// parseCatalog guarantees every registered name has an entry.
	return Example{}, fmt.Errorf("%w %q", ErrUnknownExample, name)
}

// parseCatalog validates and decodes a catalog document. The decoded entries
// must name exactly the registry, in registry order.
func parseCatalog(data []byte, registry []Name) ([]Example, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating catalog: %w", err)
	}
	if !result.Valid {
		msgs := make([]string, len(result.Issues))
		for i, issue := range result.Issues {
			msgs[i] = issue.String()
		}
		return nil, fmt.Errorf("invalid catalog: %s", strings.Join(msgs, "; "))
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	if len(f.Examples) != len(registry) {
		return nil, fmt.Errorf("catalog has %d entries, registry has %d", len(f.Examples), len(registry))
	}
	for i, e := range f.Examples {
		if e.Name != registry[i] {
			return nil, fmt.Errorf("catalog entry %d is %q, want %q", i, e.Name, registry[i])
		}
		if e.Requires != "" {
			if _, err := parseConstraint(e.Requires); err != nil {
				return nil, fmt.Errorf("catalog entry %q: %w", e.Name, err)
			}
		}
	}
	return f.Examples, nil
}

func joinNames(names []Name) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	return strings.Join(parts, ", ")
}
