package examples

import "strings"

// Match reports whether e matches a search. query is a case-insensitive
// substring of the name, title or description; tags match if any tag equals
// one of e's tags, ignoring case. Empty filters match everything.
func Match(e Example, query string, tags []string) bool {
	if len(tags) > 0 && !matchesAnyTag(e.Tags, tags) {
		return false
	}
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(string(e.Name)), q) ||
		strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Description), q)
}

func matchesAnyTag(exampleTags, filterTags []string) bool {
	for _, ft := range filterTags {
		for _, et := range exampleTags {
			if strings.EqualFold(et, ft) {
				return true
			}
		}
	}
	return false
}
