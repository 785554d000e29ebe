package roster

import (
	"context"
	"log/slog"
	"strings"

	"vexscout-backend/lib/htmlutil"
	"vexscout-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// ExtractTeams scrapes the team list out of an event page. two
// heuristics are tried in order:
//
//  1. a table whose header row names a team/number column, columns
//     mapped by header text.
//  2. any table whose first column mostly looks like team numbers,
//     columns taken positionally.
//
// the page renders asynchronously upstream, so an empty result here
// usually means "not rendered yet", which callers surface as a status
// message rather than an error dialog.
func ExtractTeams(ctx context.Context, pageHtml string) ([]TeamIdentity, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHtml))
	if err != nil {
		return nil, err
	}

	var teams []TeamIdentity
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		teams = extractFromHeadedTable(ctx, table)
		if teams == nil {
			teams = extractFromBareTable(ctx, table)
		}
		return teams == nil
	})

	if teams == nil {
		return nil, ErrRosterNotFound
	}
	return teams, nil
}

func extractFromHeadedTable(ctx context.Context, table *goquery.Selection) []TeamIdentity {
	headers := htmlutil.CellTexts(table.Find("thead th, tr:first-child th"))
	if len(headers) == 0 {
		return nil
	}

	numberCol, nameCol, orgCol, locationCol := -1, -1, -1, -1
	for i, h := range headers {
		switch {
		case strings.Contains(strings.ToLower(h), "number"), strings.EqualFold(h, "team"):
			numberCol = i
		case strings.Contains(strings.ToLower(h), "name"):
			nameCol = i
		case strings.Contains(strings.ToLower(h), "organization"), strings.Contains(strings.ToLower(h), "school"):
			orgCol = i
		case strings.Contains(strings.ToLower(h), "location"), strings.Contains(strings.ToLower(h), "city"):
			locationCol = i
		}
	}
	if numberCol < 0 {
		return nil
	}

	var teams []TeamIdentity
	table.Find("tbody tr, tr").Each(func(_ int, row *goquery.Selection) {
		cells := htmlutil.CellTexts(row.Find("td"))
		if len(cells) <= numberCol {
			return
		}
		number := textutil.CanonicalTeamNumber(cells[numberCol])
		if number == "" {
			return
		}
		teams = append(teams, TeamIdentity{
			Number:       number,
			DisplayName:  cellAt(cells, nameCol),
			Organization: cellAt(cells, orgCol),
			Location:     cellAt(cells, locationCol),
		})
	})

	if len(teams) == 0 {
		return nil
	}
	slog.DebugContext(ctx, "extracted roster via headed table", "teams", len(teams))
	return teams
}

func extractFromBareTable(ctx context.Context, table *goquery.Selection) []TeamIdentity {
	var teams []TeamIdentity
	plausible := 0

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := htmlutil.CellTexts(row.Find("td"))
		if len(cells) == 0 {
			return
		}
		number := textutil.CanonicalTeamNumber(cells[0])
		if textutil.IsTeamNumber(number) {
			plausible++
		}
		teams = append(teams, TeamIdentity{
			Number:       number,
			DisplayName:  cellAt(cells, 1),
			Organization: cellAt(cells, 2),
			Location:     cellAt(cells, 3),
		})
	})

	// demand a mostly-numeric first column before trusting a headerless table
	if len(teams) == 0 || plausible*2 < len(teams) {
		return nil
	}
	slog.DebugContext(ctx, "extracted roster via bare table", "teams", len(teams))
	return teams
}

func cellAt(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}
