// Package enrich merges roster, ranking, match and award data into one
// denormalized per-team view with computed statistics. the merge is a
// pure function of its inputs: all page state lives in an explicit
// Context and Refresh recomputes the whole view from scratch.
package enrich

import (
	"vexscout-backend/lib/textutil"
	"vexscout-backend/services/awards"
	"vexscout-backend/services/matches"
	"vexscout-backend/services/roster"
	"vexscout-backend/services/skills"
)

type HighlightClass string

const (
	HighlightNone        HighlightClass = "none"
	HighlightCompetition HighlightClass = "competition"
	HighlightManual      HighlightClass = "manual"
	HighlightBoth        HighlightClass = "both"
)

type TeamView struct {
	roster.TeamIdentity

	Ranking    skills.Record
	HasRanking bool

	Aggregate  matches.Aggregate
	HasMatches bool

	Awards []awards.Award

	// 1-based position under the active sort
	LocalRank  int
	Percentile int
	Highlight  HighlightClass
}

type Result struct {
	Rows    []TeamView
	Summary Summary
}

// Context owns everything one enrichment pass needs. fetched maps are
// exclusive to the page instance that built them; they are never
// persisted and are rebuilt from scratch on reload.
type Context struct {
	// the roster is authoritative for row existence: every entry
	// becomes a row, teams only present in secondary maps never do
	Roster   []roster.TeamIdentity
	Rankings map[string]skills.Record
	// reference population for percentiles; when empty, the merged
	// rows' own scores are used (event-only context)
	Population []int
	Matches    map[string]matches.Aggregate
	Awards     map[string][]awards.Award

	CompetitionMembers map[string]struct{}
	Highlighted        map[string]struct{}

	SortKey SortKey
}

// Refresh recomputes the ordered, enriched view plus its summary.
// absence of a team in any secondary map yields zero defaults for those
// fields, never a missing row.
func (c *Context) Refresh() Result {
	rows := make([]TeamView, 0, len(c.Roster))
	for _, identity := range c.Roster {
		identity.Number = textutil.CanonicalTeamNumber(identity.Number)
		view := TeamView{TeamIdentity: identity}

		if record, ok := c.Rankings[identity.Number]; ok {
			view.Ranking = record
			view.HasRanking = true
		}
		if aggregate, ok := c.Matches[identity.Number]; ok {
			view.Aggregate = aggregate
			view.HasMatches = true
		}
		view.Awards = c.Awards[identity.Number]
		view.Highlight = c.classify(identity.Number)

		rows = append(rows, view)
	}

	population := c.Population
	if len(population) == 0 {
		population = make([]int, 0, len(rows))
		for _, row := range rows {
			if row.HasRanking {
				population = append(population, row.Ranking.Combined)
			}
		}
	}
	for i := range rows {
		if rows[i].HasRanking {
			rows[i].Percentile = Percentile(rows[i].Ranking.Combined, population)
		}
	}

	sortRows(rows, c.SortKey)
	for i := range rows {
		rows[i].LocalRank = i + 1
	}

	return Result{Rows: rows, Summary: Summarize(rows)}
}

// classification is independent of scores: it only asks which sets the
// team number belongs to.
func (c *Context) classify(number string) HighlightClass {
	_, inCompetition := c.CompetitionMembers[number]
	_, manual := c.Highlighted[number]
	switch {
	case inCompetition && manual:
		return HighlightBoth
	case inCompetition:
		return HighlightCompetition
	case manual:
		return HighlightManual
	default:
		return HighlightNone
	}
}
