// Package awards indexes award records per team, either for a single
// finalized event or across a season. a missing credential yields an
// empty index, not an error.
package awards

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"vexscout-backend/lib/robotevents"
	"vexscout-backend/lib/textutil"
)

type Award struct {
	Name string
	// empty in event-scoped mode, where the event is implicit
	SourceEvent string
	Order       int
}

type Fetcher struct {
	Client *robotevents.Client
}

// EventScoped indexes every award given at one event by winning team.
func (f Fetcher) EventScoped(ctx context.Context, eventId int) map[string][]Award {
	index := map[string][]Award{}
	if !f.Client.HasCredential() {
		slog.DebugContext(ctx, "no credential, skipping event awards")
		return index
	}

	records, err := f.Client.EventAwards(ctx, eventId)
	if err != nil {
		slog.WarnContext(ctx, "failed to fetch event awards", "event_id", eventId, "err", err)
		return index
	}

	for _, record := range records {
		for _, winner := range record.TeamWinners {
			number := textutil.CanonicalTeamNumber(winner.Team.Name)
			if number == "" {
				continue
			}
			index[number] = append(index[number], Award{
				Name:  record.Title,
				Order: record.Order,
			})
		}
	}
	sortIndex(index)
	return index
}

// SeasonScoped fetches each team's awards across the season, batched
// the same way match history is. one team failing leaves only that team
// without awards.
func (f Fetcher) SeasonScoped(ctx context.Context, teamIds map[string]int) map[string][]Award {
	index := map[string][]Award{}
	if !f.Client.HasCredential() {
		slog.DebugContext(ctx, "no credential, skipping season awards")
		return index
	}

	numbers := make([]string, 0, len(teamIds))
	for number := range teamIds {
		numbers = append(numbers, number)
	}

	mu := sync.Mutex{}
	robotevents.RunBatched(ctx, numbers, func(number string) {
		number = textutil.CanonicalTeamNumber(number)
		records, err := f.Client.TeamAwards(ctx, teamIds[number])
		if err != nil {
			slog.WarnContext(ctx, "failed to fetch team awards", "team", number, "err", err)
			return
		}

		list := make([]Award, 0, len(records))
		for _, record := range records {
			list = append(list, Award{
				Name:        record.Title,
				SourceEvent: record.Event.Name,
				Order:       record.Order,
			})
		}
		if len(list) == 0 {
			return
		}

		mu.Lock()
		defer mu.Unlock()
		index[number] = list
	})

	sortIndex(index)
	return index
}

func sortIndex(index map[string][]Award) {
	for _, list := range index {
		slices.SortStableFunc(list, func(a, b Award) int {
			return a.Order - b.Order
		})
	}
}
