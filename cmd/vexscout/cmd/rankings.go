package cmd

import (
	"fmt"
	"os"
	"strings"

	"vexscout-backend/services/enrich"
	"vexscout-backend/services/roster"
	"vexscout-backend/services/skills"

	"github.com/spf13/cobra"
)

var rankingsFlags struct {
	postSeason bool
	sortKey    string
	filter     string
	export     string
}

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Show the seasonal skills rankings with captured-roster highlighting",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		settings := store.Load(ctx)

		fetcher := skills.Fetcher{Client: client}
		records := fetcher.Global(ctx, rankingsFlags.postSeason)
		if len(records) == 0 {
			fmt.Println("no ranking data available")
			return nil
		}

		engine := enrich.Context{
			Roster:             rosterFromRankings(records),
			Rankings:           records,
			Population:         skills.Population(records),
			CompetitionMembers: settings.CompetitionMembers(),
			Highlighted:        highlightSet(settings.HighlightedTeams),
			SortKey:            enrich.SortKey(rankingsFlags.sortKey),
		}

		result := engine.Refresh()
		result.Rows = enrich.FilterRows(result.Rows, rankingsFlags.filter)
		return output(result, rankingsFlags.export, nil)
	},
}

// the rankings page has no scraped roster; the ranking set itself is
// the row source
func rosterFromRankings(records map[string]skills.Record) []roster.TeamIdentity {
	rows := make([]roster.TeamIdentity, 0, len(records))
	for _, record := range records {
		rows = append(rows, roster.TeamIdentity{
			Number:       record.TeamNumber,
			DisplayName:  record.TeamName,
			Organization: record.Organization,
			Location:     joinLocation(record.City, record.Region, record.Country),
		})
	}
	return rows
}

func joinLocation(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}

func highlightSet(numbers []string) map[string]struct{} {
	set := make(map[string]struct{}, len(numbers))
	for _, number := range numbers {
		set[number] = struct{}{}
	}
	return set
}

func output(result enrich.Result, export string, excludedAwards map[string]struct{}) error {
	switch export {
	case "json":
		return enrich.ExportJSON(os.Stdout, result)
	case "csv":
		return enrich.ExportCSV(os.Stdout, result)
	}
	enrich.RenderTable(os.Stdout, result, excludedAwards)
	enrich.RenderSummary(os.Stdout, result.Summary)
	return nil
}

func init() {
	rankingsCmd.Flags().BoolVar(&rankingsFlags.postSeason, "post-season", false, "query post-season standings")
	rankingsCmd.Flags().StringVar(&rankingsFlags.sortKey, "sort", string(enrich.SortCombined), "sort column")
	rankingsCmd.Flags().StringVar(&rankingsFlags.filter, "filter", "", "filter rows by text")
	rankingsCmd.Flags().StringVar(&rankingsFlags.export, "export", "", "export as json or csv instead of a table")
	rootCmd.AddCommand(rankingsCmd)
}
