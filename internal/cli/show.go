package cli

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/isopro-labs/isopro-examples/internal/config"
	"github.com/isopro-labs/isopro-examples/internal/examples"
	"github.com/spf13/cobra"
)

var showVersion string

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Describe one example notebook",
	Long: `Describe an example notebook and print the path of its .ipynb file.

The path is resolved against notebook_dir (config key or ISOPRO_NOTEBOOK_DIR).
When an ISOPRO version is given with --isopro-version or set as isopro_version,
compatibility with that version is reported too.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showVersion, "isopro-version", "", "Check compatibility with this ISOPRO version (default: config isopro_version)")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	e, err := examples.Lookup(args[0])
	if err != nil {
		return err
	}

	version := showVersion
	if version == "" {
		version = config.ISOPROVersion()
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "%s (%s)\n", e.Title, e.Name)
	fmt.Fprintf(&b, "  %s\n\n", e.Description)
	fmt.Fprintf(&b, "Notebook: %s\n", filepath.Join(config.NotebookDir(), e.Notebook))
	if len(e.Tags) > 0 {
		fmt.Fprintf(&b, "Tags:     %s\n", strings.Join(e.Tags, ", "))
	}
	requires := e.Requires
	if requires == "" {
		requires = "any"
	}
	fmt.Fprintf(&b, "Requires: ISOPRO %s\n", requires)

	if version != "" {
		ok, err := e.Supports(version)
		if err != nil {
			return err
		}
		status := "supported"
		if !ok {
			status = "not supported"
		}
		fmt.Fprintf(&b, "ISOPRO %s: %s\n", version, status)
	}

	// One write: a failing stdout surfaces as ErrOutput.
	if _, err := b.WriteTo(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("%w: %w", examples.ErrOutput, err)
	}
	return nil
}
