package enrich

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// rendering consumes engine output read-only. excludedAwards is the
// session-scoped award-name exclusion set; it is never persisted and
// resets with the process.

func RenderTable(w io.Writer, result Result, excludedAwards map[string]struct{}) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{
		"#", "Team", "Name", "Combined", "Auto", "Driver",
		"Rank", "Pctl", "Avg", "Max", "Matches", "Awards", "Mark",
	})

	for _, row := range result.Rows {
		t.AppendRow(table.Row{
			row.LocalRank,
			row.Number,
			row.DisplayName,
			blankZero(row.Ranking.Combined),
			blankZero(row.Ranking.Autonomous),
			blankZero(row.Ranking.Driver),
			blankZero(row.Ranking.GlobalRank),
			percentileCell(row),
			blankZero(row.Aggregate.Average),
			blankZero(row.Aggregate.Max),
			blankZero(row.Aggregate.Count),
			awardsCell(row, excludedAwards),
			markCell(row.Highlight),
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Name", WidthMax: 24},
		{Name: "Awards", WidthMax: 36},
		{Name: "Combined", Align: text.AlignRight},
		{Name: "Avg", Align: text.AlignRight},
		{Name: "Max", Align: text.AlignRight},
	})
	t.Render()
}

func RenderSummary(w io.Writer, s Summary) {
	if s.Count == 0 {
		fmt.Fprintln(w, "no scored teams")
		return
	}
	fmt.Fprintf(
		w,
		"teams scored: %d  avg: %d  max: %d  median: %d  avg auto: %d  avg driver: %d\n",
		s.Count, s.Average, s.Max, s.Median, s.AverageAutonomous, s.AverageDriver,
	)
}

// RenderMatchDetails prints one team's retained matches, most recent
// first, with both alliances and the final scores.
func RenderMatchDetails(w io.Writer, row TeamView) {
	if !row.HasMatches {
		fmt.Fprintf(w, "%s: no matches in the selected window\n", row.Number)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(fmt.Sprintf("%s — %d matches, avg %d, max %d",
		row.Number, row.Aggregate.Count, row.Aggregate.Average, row.Aggregate.Max))
	t.AppendHeader(table.Row{"Date", "Event", "Match", "Alliance", "Score", "Opposing", "Score"})

	for _, detail := range row.Aggregate.Matches {
		t.AppendRow(table.Row{
			detail.Date.Format("2006-01-02"),
			detail.EventName,
			detail.Name,
			strings.Join(detail.TeamAlliance.Teams, " "),
			detail.TeamAlliance.Score,
			strings.Join(detail.Opposing.Teams, " "),
			detail.Opposing.Score,
		})
	}
	t.Render()
}

func blankZero(v int) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%d", v)
}

func percentileCell(row TeamView) string {
	if !row.HasRanking {
		return ""
	}
	return fmt.Sprintf("%d%%", row.Percentile)
}

func awardsCell(row TeamView, excluded map[string]struct{}) string {
	var names []string
	for _, award := range row.Awards {
		if _, skip := excluded[award.Name]; skip {
			continue
		}
		names = append(names, award.Name)
	}
	return strings.Join(names, ", ")
}

func markCell(class HighlightClass) string {
	switch class {
	case HighlightCompetition:
		return "C"
	case HighlightManual:
		return "M"
	case HighlightBoth:
		return "CM"
	default:
		return ""
	}
}
