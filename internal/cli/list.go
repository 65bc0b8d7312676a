package cli

import (
	"encoding/json"
	"fmt"

	"github.com/isopro-labs/isopro-examples/internal/ctxlog"
	"github.com/isopro-labs/isopro-examples/internal/examples"
	"github.com/spf13/cobra"
)

var (
	listTagFilter     string
	listVersionFilter string
	listJSON          bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available example notebooks",
	Long: `List the available ISOPRO example notebooks in display order.

--tag keeps examples carrying the tag; --isopro-version keeps examples that
support that ISOPRO version. --json prints the catalog entries instead.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listTagFilter, "tag", "", "Filter by tag (e.g., claude, analysis)")
	listCmd.Flags().StringVar(&listVersionFilter, "isopro-version", "", "Only examples that support this ISOPRO version")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	filtered := listTagFilter != "" || listVersionFilter != ""

	if !filtered && !listJSON {
		return examples.List(out)
	}

	entries, err := filterEntries(listTagFilter, listVersionFilter)
	if err != nil {
		return err
	}
	ctxlog.FromContext(cmd.Context()).Debug("filtered examples",
		"tag", listTagFilter, "isopro_version", listVersionFilter, "matched", len(entries))

	if listJSON {
		return printListJSON(cmd, entries)
	}

	names := make([]examples.Name, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return examples.ListNames(out, names)
}

// filterEntries returns catalog entries matching tag and supporting version.
// Empty arguments disable the corresponding filter.
func filterEntries(tag, version string) ([]examples.Example, error) {
	entries, err := examples.Catalog()
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	var tags []string
	if tag != "" {
		tags = []string{tag}
	}

	var supported map[examples.Name]bool
	if version != "" {
		names, err := examples.Compatible(version)
		if err != nil {
			return nil, err
		}
		supported = make(map[examples.Name]bool, len(names))
		for _, n := range names {
			supported[n] = true
		}
	}

	result := []examples.Example{}
	for _, e := range entries {
		if supported != nil && !supported[e.Name] {
			continue
		}
		if examples.Match(e, "", tags) {
			result = append(result, e)
		}
	}
	return result, nil
}

func printListJSON(cmd *cobra.Command, entries []examples.Example) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(data)); err != nil {
		return fmt.Errorf("%w: %w", examples.ErrOutput, err)
	}
	return nil
}
