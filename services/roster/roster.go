// Package roster turns a rendered event page into team identity
// records and persists captured rosters. the page structure is owned by
// a third party, so extraction is best-effort with fallback heuristics;
// everything downstream only ever sees the extracted records.
package roster

import (
	"context"
	"fmt"
	"time"

	"vexscout-backend/lib/settingstore"
	"vexscout-backend/lib/textutil"
	"vexscout-backend/lib/timezone"
)

type TeamIdentity struct {
	// canonical uppercase team number, the join key everywhere
	Number       string
	DisplayName  string
	Organization string
	Location     string
}

var ErrRosterNotFound = fmt.Errorf("could not locate a teams table on the page")

type EventMeta struct {
	Name     string
	Capacity int
}

// Capture persists one competition's roster under its competition id,
// replacing any earlier capture for the same id.
func Capture(ctx context.Context, store settingstore.Store, competitionId string, meta EventMeta, teams []TeamIdentity) settingstore.CompetitionCapture {
	numbers := make([]string, len(teams))
	for i, team := range teams {
		numbers[i] = textutil.CanonicalTeamNumber(team.Number)
	}
	capture := settingstore.CompetitionCapture{
		CompetitionId: competitionId,
		Name:          meta.Name,
		Capacity:      meta.Capacity,
		Teams:         numbers,
		CapturedAt:    timezone.Now().Truncate(time.Second),
	}
	store.Mutate(ctx, func(s *settingstore.Settings) {
		s.PutCapture(capture)
	})
	return capture
}
