package matches

import (
	"math"
	"slices"
	"strings"
	"time"

	"vexscout-backend/lib/robotevents"
	"vexscout-backend/lib/settingstore"
	"vexscout-backend/lib/textutil"
)

// a match counts as scored once every alliance carries a recorded score
func isScored(m robotevents.Match) bool {
	if len(m.Alliances) == 0 {
		return false
	}
	for _, alliance := range m.Alliances {
		if alliance.Score == nil {
			return false
		}
	}
	return true
}

func matchDate(m robotevents.Match) time.Time {
	for _, raw := range []string{m.Started, m.Scheduled} {
		if raw == "" {
			continue
		}
		date, err := time.Parse(time.RFC3339, raw)
		if err == nil {
			return date
		}
	}
	return time.Time{}
}

type eventGroup struct {
	code    string
	matches []robotevents.Match
	// the event's date is its most recent match date
	date time.Time
}

func groupByEvent(ms []robotevents.Match) []eventGroup {
	byCode := map[string]int{}
	var groups []eventGroup

	for _, m := range ms {
		code := strings.ToUpper(m.Event.Code)
		idx, ok := byCode[code]
		if !ok {
			idx = len(groups)
			byCode[code] = idx
			groups = append(groups, eventGroup{code: code})
		}
		groups[idx].matches = append(groups[idx].matches, m)
		if date := matchDate(m); date.After(groups[idx].date) {
			groups[idx].date = date
		}
	}

	slices.SortStableFunc(groups, func(a, b eventGroup) int {
		return b.date.Compare(a.date)
	})
	return groups
}

// ApplyWindow filters a team's raw match list down to scored matches
// within the selection window. windowing works at event granularity:
// "last 5 events" means 5 distinct competitions, however many matches
// they contain.
func ApplyWindow(ms []robotevents.Match, filter Filter) []robotevents.Match {
	scored := make([]robotevents.Match, 0, len(ms))
	for _, m := range ms {
		if isScored(m) {
			scored = append(scored, m)
		}
	}

	// an explicit event code overrides the configured window entirely
	if filter.EventCode != "" {
		var retained []robotevents.Match
		for _, m := range scored {
			if strings.EqualFold(m.Event.Code, filter.EventCode) {
				retained = append(retained, m)
			}
		}
		return retained
	}

	groups := groupByEvent(scored)
	switch filter.Type {
	case settingstore.MatchFilterSinceDate:
		groups = slices.DeleteFunc(groups, func(g eventGroup) bool {
			return g.date.Before(filter.Since)
		})
	case settingstore.MatchFilterLastEvents:
		if len(groups) > filter.LastN {
			groups = groups[:filter.LastN]
		}
	case settingstore.MatchFilterAllEvents:
	}

	var retained []robotevents.Match
	for _, g := range groups {
		retained = append(retained, g.matches...)
	}
	return retained
}

// BuildAggregate reduces a team's retained matches to its aggregate.
// the boolean is false when nothing was retained: the aggregate is
// absent, not zero.
func BuildAggregate(teamNumber string, retained []robotevents.Match) (Aggregate, bool) {
	teamNumber = textutil.CanonicalTeamNumber(teamNumber)

	total, maxScore, count := 0, 0, 0
	var details []Detail

	for _, m := range retained {
		teamAlliance, opposing, ok := allianceOf(m, teamNumber)
		if !ok {
			continue
		}

		total += teamAlliance.Score
		maxScore = max(maxScore, teamAlliance.Score)
		count++

		views := make([]AllianceView, len(m.Alliances))
		for i, alliance := range m.Alliances {
			views[i] = allianceView(alliance)
		}
		details = append(details, Detail{
			Name:         m.Name,
			EventCode:    strings.ToUpper(m.Event.Code),
			EventName:    m.Event.Name,
			Date:         matchDate(m),
			Alliances:    views,
			TeamAlliance: teamAlliance,
			Opposing:     opposing,
		})
	}

	if count == 0 {
		return Aggregate{}, false
	}

	slices.SortStableFunc(details, func(a, b Detail) int {
		return b.Date.Compare(a.Date)
	})

	return Aggregate{
		TeamNumber: teamNumber,
		Average:    int(math.Round(float64(total) / float64(count))),
		Max:        maxScore,
		Count:      count,
		Matches:    details,
	}, true
}

func allianceView(alliance robotevents.Alliance) AllianceView {
	view := AllianceView{Color: alliance.Color}
	if alliance.Score != nil {
		view.Score = *alliance.Score
	}
	for _, member := range alliance.Teams {
		view.Teams = append(view.Teams, textutil.CanonicalTeamNumber(member.Team.Name))
	}
	return view
}

func allianceOf(m robotevents.Match, teamNumber string) (AllianceView, AllianceView, bool) {
	for i, alliance := range m.Alliances {
		for _, member := range alliance.Teams {
			if textutil.CanonicalTeamNumber(member.Team.Name) != teamNumber {
				continue
			}
			opposing := AllianceView{}
			// exactly two alliances oppose each other in a match
			if len(m.Alliances) == 2 {
				opposing = allianceView(m.Alliances[1-i])
			}
			return allianceView(alliance), opposing, true
		}
	}
	return AllianceView{}, AllianceView{}, false
}
