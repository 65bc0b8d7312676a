package examples

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Supports reports whether the example runs on the given ISOPRO version.
// A leading "v" is tolerated. An example without a requirement supports
// every version.
func (e Example) Supports(version string) (bool, error) {
	if e.Requires == "" {
		return true, nil
	}
	c, err := parseConstraint(e.Requires)
	if err != nil {
		return false, err
	}
	v, err := parseSemver(version)
	if err != nil {
		return false, fmt.Errorf("parsing ISOPRO version %q: %w", version, err)
	}
	return c.Check(v), nil
}

// Compatible returns the registered names whose examples support version.
func Compatible(version string) ([]Name, error) {
	entries, err := Catalog()
	if err != nil {
		return nil, err
	}
	var names []Name
	for _, e := range entries {
		ok, err := e.Supports(version)
		if err != nil {
			return nil, err
		}
		if ok {
			names = append(names, e.Name)
		}
	}
	return names, nil
}

func parseConstraint(s string) (*semver.Constraints, error) {
	c, err := semver.NewConstraint(s)
	if err != nil {
		return nil, fmt.Errorf("parsing version constraint %q: %w", s, err)
	}
	return c, nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
