// Package examples owns the fixed registry of ISOPRO example notebooks.
//
// The registry is an ordered, immutable list of notebook names. Catalog
// metadata for each name (title, description, tags, version requirement) is
// embedded as YAML and validated against a JSON schema on first use.
package examples
