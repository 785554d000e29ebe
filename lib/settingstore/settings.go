package settingstore

import (
	"slices"
	"time"

	"vexscout-backend/lib/textutil"
)

type MatchFilterType string

const (
	MatchFilterSinceDate  MatchFilterType = "since_date"
	MatchFilterLastEvents MatchFilterType = "last_n_events"
	MatchFilterAllEvents  MatchFilterType = "all_events"
)

const (
	DefaultMatchFilterMonths = 2
	DefaultMatchFilterCount  = 5
)

// one captured roster per competition, keyed by the competition's sku.
// capturing the same competition again replaces the previous roster
// wholesale.
type CompetitionCapture struct {
	CompetitionId string    `json:"competition_id"`
	Name          string    `json:"name"`
	Capacity      int       `json:"capacity"`
	Teams         []string  `json:"teams"`
	CapturedAt    time.Time `json:"captured_at"`
}

// Settings is the single persisted document. unknown fields in stored
// copies are dropped, missing fields default to their zero value.
type Settings struct {
	ApiToken         string                        `json:"api_token"`
	CompetitionTeams map[string]CompetitionCapture `json:"competition_teams"`
	HighlightedTeams []string                      `json:"highlighted_teams"`
	MatchFilterType  MatchFilterType               `json:"match_filter_type"`
	MatchFilterDate  string                        `json:"match_filter_date"`
	MatchFilterCount int                           `json:"match_filter_count"`
}

func DefaultSettings() Settings {
	return Settings{
		CompetitionTeams: map[string]CompetitionCapture{},
		MatchFilterType:  MatchFilterSinceDate,
		MatchFilterCount: DefaultMatchFilterCount,
	}
}

// normalize repairs a freshly decoded document so every consumer can
// rely on non-nil maps and canonical team numbers.
func (s *Settings) normalize() {
	if s.CompetitionTeams == nil {
		s.CompetitionTeams = map[string]CompetitionCapture{}
	}
	if s.MatchFilterType == "" {
		s.MatchFilterType = MatchFilterSinceDate
	}
	if s.MatchFilterCount <= 0 {
		s.MatchFilterCount = DefaultMatchFilterCount
	}
	for i, number := range s.HighlightedTeams {
		s.HighlightedTeams[i] = textutil.CanonicalTeamNumber(number)
	}
}

func (s *Settings) IsHighlighted(number string) bool {
	return slices.Contains(s.HighlightedTeams, textutil.CanonicalTeamNumber(number))
}

func (s *Settings) AddHighlight(number string) {
	number = textutil.CanonicalTeamNumber(number)
	if slices.Contains(s.HighlightedTeams, number) {
		return
	}
	s.HighlightedTeams = append(s.HighlightedTeams, number)
	slices.Sort(s.HighlightedTeams)
}

func (s *Settings) RemoveHighlight(number string) {
	number = textutil.CanonicalTeamNumber(number)
	s.HighlightedTeams = slices.DeleteFunc(s.HighlightedTeams, func(n string) bool {
		return n == number
	})
}

func (s *Settings) PutCapture(capture CompetitionCapture) {
	teams := make([]string, len(capture.Teams))
	for i, number := range capture.Teams {
		teams[i] = textutil.CanonicalTeamNumber(number)
	}
	capture.Teams = teams
	s.CompetitionTeams[capture.CompetitionId] = capture
}

// CompetitionMembers is the union of every captured roster, used for
// the `competition` highlight class.
func (s *Settings) CompetitionMembers() map[string]struct{} {
	members := map[string]struct{}{}
	for _, capture := range s.CompetitionTeams {
		for _, number := range capture.Teams {
			members[textutil.CanonicalTeamNumber(number)] = struct{}{}
		}
	}
	return members
}
