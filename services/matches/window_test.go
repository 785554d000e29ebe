package matches

import (
	"fmt"
	"testing"
	"time"

	"vexscout-backend/lib/robotevents"
	"vexscout-backend/lib/settingstore"

	"github.com/stretchr/testify/require"
)

func scoredMatch(eventCode string, day int, teamScore, oppScore int) robotevents.Match {
	return robotevents.Match{
		Name:    fmt.Sprintf("Qualifier %s-%d", eventCode, day),
		Event:   robotevents.IdInfo{Code: eventCode, Name: "Event " + eventCode},
		Started: time.Date(2024, 1, day, 10, 0, 0, 0, time.UTC).Format(time.RFC3339),
		Alliances: []robotevents.Alliance{
			{
				Color: "red",
				Score: &teamScore,
				Teams: []robotevents.AllianceTeam{
					{Team: robotevents.IdInfo{Name: "1234a"}},
					{Team: robotevents.IdInfo{Name: "99X"}},
				},
			},
			{
				Color: "blue",
				Score: &oppScore,
				Teams: []robotevents.AllianceTeam{
					{Team: robotevents.IdInfo{Name: "508B"}},
				},
			},
		},
	}
}

func unscoredMatch(eventCode string, day int) robotevents.Match {
	m := scoredMatch(eventCode, day, 0, 0)
	m.Alliances[0].Score = nil
	m.Alliances[1].Score = nil
	return m
}

func TestLastNEventsKeepsDistinctEvents(t *testing.T) {
	// 7 distinct events, one match each, oldest first
	var ms []robotevents.Match
	for day := 1; day <= 7; day++ {
		ms = append(ms, scoredMatch(fmt.Sprintf("RE-%d", day), day, 10*day, 5))
	}

	retained := ApplyWindow(ms, Filter{Type: settingstore.MatchFilterLastEvents, LastN: 3})
	require.Len(t, retained, 3)
	codes := map[string]bool{}
	for _, m := range retained {
		codes[m.Event.Code] = true
	}
	require.Equal(t, map[string]bool{"RE-5": true, "RE-6": true, "RE-7": true}, codes)
}

func TestLastNEventsCountsEventsNotMatches(t *testing.T) {
	ms := []robotevents.Match{
		scoredMatch("RE-OLD", 1, 10, 5),
		scoredMatch("RE-OLD", 1, 20, 5),
		scoredMatch("RE-OLD", 2, 30, 5),
		scoredMatch("RE-MID", 10, 40, 5),
		scoredMatch("RE-NEW", 20, 50, 5),
	}

	retained := ApplyWindow(ms, Filter{Type: settingstore.MatchFilterLastEvents, LastN: 2})
	// 2 events retained, even though the excluded event has more matches
	require.Len(t, retained, 2)
	for _, m := range retained {
		require.NotEqual(t, "RE-OLD", m.Event.Code)
	}
}

func TestEventCodeOverridesConfiguredWindow(t *testing.T) {
	ms := []robotevents.Match{
		scoredMatch("RE-TARGET", 1, 42, 5),
		scoredMatch("RE-OTHER", 20, 99, 5),
	}

	// since-date excludes everything from the target event, but the
	// explicit code wins
	retained := ApplyWindow(ms, Filter{
		Type:      settingstore.MatchFilterSinceDate,
		Since:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		EventCode: "re-target",
	})
	require.Len(t, retained, 1)
	require.Equal(t, "RE-TARGET", retained[0].Event.Code)
}

func TestSinceDateFiltersAtEventGranularity(t *testing.T) {
	ms := []robotevents.Match{
		// one early match at an event that ran past the cutoff: the
		// event's date is its latest match, so the whole event stays
		scoredMatch("RE-SPAN", 14, 10, 5),
		scoredMatch("RE-SPAN", 16, 20, 5),
		scoredMatch("RE-OLD", 2, 30, 5),
	}

	retained := ApplyWindow(ms, Filter{
		Type:  settingstore.MatchFilterSinceDate,
		Since: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	require.Len(t, retained, 2)
	for _, m := range retained {
		require.Equal(t, "RE-SPAN", m.Event.Code)
	}
}

func TestUnscoredMatchesExcluded(t *testing.T) {
	ms := []robotevents.Match{
		scoredMatch("RE-1", 1, 10, 5),
		unscoredMatch("RE-1", 2),
	}
	retained := ApplyWindow(ms, Filter{Type: settingstore.MatchFilterAllEvents})
	require.Len(t, retained, 1)
}

func TestBuildAggregate(t *testing.T) {
	retained := []robotevents.Match{
		scoredMatch("RE-1", 1, 10, 5),
		scoredMatch("RE-1", 3, 25, 30),
		scoredMatch("RE-2", 2, 12, 5),
	}

	aggregate, ok := BuildAggregate("1234A", retained)
	require.True(t, ok)
	require.Equal(t, 3, aggregate.Count)
	// round(47/3) = 16
	require.Equal(t, 16, aggregate.Average)
	require.Equal(t, 25, aggregate.Max)

	// most-recent-first
	require.Equal(t, 3, aggregate.Matches[0].Date.Day())
	require.Equal(t, 2, aggregate.Matches[1].Date.Day())
	require.Equal(t, 1, aggregate.Matches[2].Date.Day())

	first := aggregate.Matches[0]
	require.Equal(t, 25, first.TeamAlliance.Score)
	require.Equal(t, 30, first.Opposing.Score)
	require.Contains(t, first.TeamAlliance.Teams, "1234A")
	require.Contains(t, first.Opposing.Teams, "508B")
}

func TestBuildAggregateAbsentWhenNoMatches(t *testing.T) {
	_, ok := BuildAggregate("1234A", nil)
	require.False(t, ok)

	// a roster team that never appears in any alliance has no aggregate
	_, ok = BuildAggregate("7777Z", []robotevents.Match{scoredMatch("RE-1", 1, 10, 5)})
	require.False(t, ok)
}

func TestFilterFromSettingsDefaults(t *testing.T) {
	filter := FilterFromSettings(settingstore.DefaultSettings())
	require.Equal(t, settingstore.MatchFilterSinceDate, filter.Type)
	require.Equal(t, settingstore.DefaultMatchFilterCount, filter.LastN)
	// default window starts two months back
	require.WithinDuration(t, time.Now().AddDate(0, -2, 0), filter.Since, time.Hour*24)
}
