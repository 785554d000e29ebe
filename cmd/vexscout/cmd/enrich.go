package cmd

import (
	"context"
	"fmt"
	"os"

	"vexscout-backend/lib/robotevents"
	"vexscout-backend/lib/textutil"
	"vexscout-backend/services/awards"
	"vexscout-backend/services/enrich"
	"vexscout-backend/services/matches"
	"vexscout-backend/services/roster"
	"vexscout-backend/services/skills"

	"github.com/spf13/cobra"
)

var enrichFlags struct {
	sortKey       string
	filter        string
	export        string
	detailTeam    string
	excludeAwards []string
}

var enrichCmd = &cobra.Command{
	Use:   "enrich <competition-id> <page.html>",
	Short: "Enrich an event's roster with rankings, match history and awards",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		sku := args[0]

		pageHtml, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		teams, err := roster.ExtractTeams(ctx, string(pageHtml))
		if err != nil {
			fmt.Printf("enrichment skipped: %s\n", err)
			return nil
		}

		settings := store.Load(ctx)

		// each stage degrades on its own: a failed fetch leaves its map
		// empty and the merge proceeds with whatever subset succeeded
		var event *robotevents.Event
		if client.HasCredential() {
			event, err = client.EventBySku(ctx, sku)
			if err != nil {
				fmt.Printf("event lookup failed, continuing unscoped: %s\n", err)
			}
		}
		finalized := event != nil && event.AwardsFinalized

		skillsFetcher := skills.Fetcher{Client: client}
		var records map[string]skills.Record
		var population []int
		if finalized {
			records = skillsFetcher.EventScoped(ctx, event.Id)
		} else {
			records = skillsFetcher.Global(ctx, false)
			population = skills.Population(records)
		}

		teamIds := resolveTeamIds(ctx, teams, records)

		filter := matches.FilterFromSettings(settings)
		if finalized {
			filter.EventCode = sku
		}
		aggregates := matches.Fetcher{Client: client}.ForTeams(ctx, teamIds, filter)

		awardsFetcher := awards.Fetcher{Client: client}
		var awardIndex map[string][]awards.Award
		if finalized {
			awardIndex = awardsFetcher.EventScoped(ctx, event.Id)
		} else {
			awardIndex = awardsFetcher.SeasonScoped(ctx, teamIds)
		}

		engine := enrich.Context{
			Roster:             teams,
			Rankings:           records,
			Population:         population,
			Matches:            aggregates,
			Awards:             awardIndex,
			CompetitionMembers: settings.CompetitionMembers(),
			Highlighted:        highlightSet(settings.HighlightedTeams),
			SortKey:            enrich.SortKey(enrichFlags.sortKey),
		}
		result := engine.Refresh()

		if enrichFlags.detailTeam != "" {
			return detailView(result, enrichFlags.detailTeam)
		}

		result.Rows = enrich.FilterRows(result.Rows, enrichFlags.filter)
		return output(result, enrichFlags.export, excludedAwardSet())
	},
}

// ranking records already carry opaque ids; anything left over is
// resolved through the teams endpoint in one query.
func resolveTeamIds(ctx context.Context, teams []roster.TeamIdentity, records map[string]skills.Record) map[string]int {
	ids := map[string]int{}
	var unresolved []string

	for _, team := range teams {
		number := textutil.CanonicalTeamNumber(team.Number)
		if record, ok := records[number]; ok && record.TeamId != 0 {
			ids[number] = record.TeamId
			continue
		}
		unresolved = append(unresolved, number)
	}

	if len(unresolved) > 0 && client.HasCredential() {
		resolved, err := client.TeamsByNumber(ctx, unresolved)
		if err != nil {
			fmt.Printf("team id lookup failed for %d teams: %s\n", len(unresolved), err)
			return ids
		}
		for _, team := range resolved {
			ids[textutil.CanonicalTeamNumber(team.Number)] = team.Id
		}
	}
	return ids
}

func detailView(result enrich.Result, team string) error {
	team = textutil.CanonicalTeamNumber(team)
	for _, row := range result.Rows {
		if row.Number == team {
			enrich.RenderMatchDetails(os.Stdout, row)
			return nil
		}
	}
	return fmt.Errorf("team %s is not on this event's roster", team)
}

// session-scoped only: exclusions live and die with the invocation
func excludedAwardSet() map[string]struct{} {
	set := map[string]struct{}{}
	for _, name := range enrichFlags.excludeAwards {
		set[name] = struct{}{}
	}
	return set
}

func init() {
	enrichCmd.Flags().StringVar(&enrichFlags.sortKey, "sort", string(enrich.SortTeamNumber), "sort column")
	enrichCmd.Flags().StringVar(&enrichFlags.filter, "filter", "", "filter rows by text")
	enrichCmd.Flags().StringVar(&enrichFlags.export, "export", "", "export as json or csv instead of a table")
	enrichCmd.Flags().StringVar(&enrichFlags.detailTeam, "detail", "", "show one team's match details")
	enrichCmd.Flags().StringArrayVar(&enrichFlags.excludeAwards, "exclude-award", nil, "hide an award category for this run")
	rootCmd.AddCommand(enrichCmd)
}
