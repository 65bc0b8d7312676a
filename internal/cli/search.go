package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/isopro-labs/isopro-examples/internal/examples"
	"github.com/spf13/cobra"
)

var (
	searchTagFilter string
	searchJSON      bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the example notebooks",
	Long: `Search example notebooks by name, title, and description
(case-insensitive substring). Use --tag to filter by tags.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchTagFilter, "tag", "", "Filter by tags (comma-separated, matches any)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	entries, err := examples.Catalog()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	tags := parseTags(searchTagFilter)

	var matches []examples.Example
	for _, e := range entries {
		if examples.Match(e, query, tags) {
			matches = append(matches, e)
		}
	}

	if len(matches) == 0 {
		msg := "No examples found"
		if query != "" {
			msg += fmt.Sprintf(" matching %q", query)
		}
		if searchTagFilter != "" {
			msg += fmt.Sprintf(" with --tag=%s", searchTagFilter)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	}

	if searchJSON {
		return printListJSON(cmd, matches)
	}
	return printSearchTable(cmd, matches)
}

// parseTags splits a comma-separated tag filter, dropping empty items.
func parseTags(filter string) []string {
	var tags []string
	for _, t := range strings.Split(filter, ",") {
		if tag := strings.TrimSpace(t); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func printSearchTable(cmd *cobra.Command, entries []examples.Example) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tTAGS")
	for _, e := range entries {
		tags := strings.Join(e.Tags, ",")
		if tags == "" {
			tags = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Title, tags)
	}
	return w.Flush()
}
