// Package matches fetches per-team match history and reduces it to
// alliance-score aggregates over a user-selected window of events.
package matches

import (
	"time"

	"vexscout-backend/lib/settingstore"
	"vexscout-backend/lib/timezone"
)

// Filter selects which of a team's matches count toward its aggregate.
// EventCode, when set, fully overrides the configured window: enrichment
// of one finalized event only ever looks at that event.
type Filter struct {
	Type      settingstore.MatchFilterType
	Since     time.Time
	LastN     int
	EventCode string
}

// FilterFromSettings translates the persisted configuration into a
// concrete filter. a missing or unparseable since-date falls back to
// two months before now.
func FilterFromSettings(s settingstore.Settings) Filter {
	filter := Filter{
		Type:  s.MatchFilterType,
		LastN: s.MatchFilterCount,
	}
	if filter.LastN <= 0 {
		filter.LastN = settingstore.DefaultMatchFilterCount
	}

	since, err := time.ParseInLocation("2006-01-02", s.MatchFilterDate, timezone.Location)
	if err != nil {
		since = timezone.Now().AddDate(0, -settingstore.DefaultMatchFilterMonths, 0)
	}
	filter.Since = since
	return filter
}

type AllianceView struct {
	Color string
	Score int
	Teams []string
}

// Detail is one retained match, kept for the detail view.
type Detail struct {
	Name      string
	EventCode string
	EventName string
	Date      time.Time
	Alliances []AllianceView
	// the alliance containing the team, and the one opposing it
	TeamAlliance AllianceView
	Opposing     AllianceView
}

// Aggregate summarizes a team's retained matches. teams with no
// retained scored matches have no aggregate at all, not a zero one.
type Aggregate struct {
	TeamNumber string
	// rounded arithmetic mean of the team's alliance scores
	Average int
	Max     int
	Count   int
	// most-recent-first
	Matches []Detail
}
