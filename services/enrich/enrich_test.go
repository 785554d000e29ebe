package enrich

import (
	"testing"

	"vexscout-backend/services/awards"
	"vexscout-backend/services/matches"
	"vexscout-backend/services/roster"
	"vexscout-backend/services/skills"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func testRoster() []roster.TeamIdentity {
	return []roster.TeamIdentity{
		{Number: "1234a", DisplayName: "Screwdrivers"},
		{Number: "99X", DisplayName: "Gearheads"},
		{Number: "508B", DisplayName: "Wrenches"},
	}
}

func TestMergeCompleteness(t *testing.T) {
	ctx := Context{
		Roster: testRoster(),
		Rankings: map[string]skills.Record{
			"1234A": {TeamNumber: "1234A", Combined: 120, Autonomous: 50, Driver: 70},
			// ranking-only team, not on the roster: must never appear
			"7777Z": {TeamNumber: "7777Z", Combined: 300},
		},
		Matches: map[string]matches.Aggregate{
			"99X": {TeamNumber: "99X", Average: 31, Max: 44, Count: 6},
		},
		Awards: map[string][]awards.Award{
			"508B": {{Name: "Judges Award", Order: 9}},
		},
	}

	result := ctx.Refresh()
	// every roster entry becomes a row, teams without ranking data show
	// defaults rather than vanishing
	require.Len(t, result.Rows, 3)

	byNumber := map[string]TeamView{}
	for _, row := range result.Rows {
		byNumber[row.Number] = row
	}
	require.NotContains(t, byNumber, "7777Z")

	require.True(t, byNumber["1234A"].HasRanking)
	require.False(t, byNumber["99X"].HasRanking)
	require.Equal(t, 0, byNumber["99X"].Ranking.Combined)
	require.True(t, byNumber["99X"].HasMatches)
	require.Equal(t, "Judges Award", byNumber["508B"].Awards[0].Name)
}

func TestDefaultSortIsNaturalTeamNumberAscending(t *testing.T) {
	ctx := Context{Roster: testRoster()}
	result := ctx.Refresh()

	var order []string
	for _, row := range result.Rows {
		order = append(order, row.Number)
	}
	if diff := cmp.Diff([]string{"99X", "508B", "1234A"}, order); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
	require.Equal(t, 1, result.Rows[0].LocalRank)
	require.Equal(t, 3, result.Rows[2].LocalRank)
}

func TestScoreSortDescendingWithLocalRank(t *testing.T) {
	ctx := Context{
		Roster: testRoster(),
		Rankings: map[string]skills.Record{
			"1234A": {Combined: 120},
			"99X":   {Combined: 200},
			"508B":  {Combined: 80},
		},
		SortKey: SortCombined,
	}

	result := ctx.Refresh()
	require.Equal(t, "99X", result.Rows[0].Number)
	require.Equal(t, 1, result.Rows[0].LocalRank)
	require.Equal(t, "508B", result.Rows[2].Number)
	require.Equal(t, 3, result.Rows[2].LocalRank)
}

func TestPercentileUsesBroadestPopulation(t *testing.T) {
	ctx := Context{
		Roster: []roster.TeamIdentity{{Number: "1234A"}},
		Rankings: map[string]skills.Record{
			"1234A": {Combined: 50},
		},
		// global population dwarfs the single merged row
		Population: []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	}

	result := ctx.Refresh()
	require.Equal(t, 40, result.Rows[0].Percentile)

	// without a global population the merged set is its own reference
	ctx.Population = nil
	result = ctx.Refresh()
	require.Equal(t, 0, result.Rows[0].Percentile)
}

func TestHighlightClassification(t *testing.T) {
	ctx := Context{
		Roster: []roster.TeamIdentity{
			{Number: "1A"}, {Number: "2B"}, {Number: "3C"}, {Number: "4D"},
		},
		CompetitionMembers: map[string]struct{}{"1A": {}, "3C": {}},
		Highlighted:        map[string]struct{}{"2B": {}, "3C": {}},
	}

	result := ctx.Refresh()
	classes := map[string]HighlightClass{}
	for _, row := range result.Rows {
		classes[row.Number] = row.Highlight
	}
	require.Equal(t, HighlightCompetition, classes["1A"])
	require.Equal(t, HighlightManual, classes["2B"])
	require.Equal(t, HighlightBoth, classes["3C"])
	require.Equal(t, HighlightNone, classes["4D"])
}

func TestFilterRows(t *testing.T) {
	ctx := Context{Roster: testRoster()}
	result := ctx.Refresh()

	filtered := FilterRows(result.Rows, "gear")
	require.Len(t, filtered, 1)
	require.Equal(t, "99X", filtered[0].Number)

	require.Len(t, FilterRows(result.Rows, ""), 3)
	require.Empty(t, FilterRows(result.Rows, "zzz"))
}
