// Package cli defines the Cobra command tree for the isopro-examples CLI.
// Each file registers one top-level command with the root command and
// delegates to internal/examples for the registry itself.
package cli
