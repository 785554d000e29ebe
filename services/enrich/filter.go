package enrich

import (
	"strings"
)

// FilterRows narrows an already-refreshed view to rows matching the
// query text (number, name, organization or location, case-insensitive).
// filtering happens after statistics are computed: percentiles and the
// summary always reflect the unfiltered set.
func FilterRows(rows []TeamView, query string) []TeamView {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rows
	}

	var out []TeamView
	for _, row := range rows {
		haystack := strings.ToLower(strings.Join([]string{
			row.Number, row.DisplayName, row.Organization, row.Location,
		}, " "))
		if strings.Contains(haystack, query) {
			out = append(out, row)
		}
	}
	return out
}
