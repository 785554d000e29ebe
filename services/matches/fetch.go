package matches

import (
	"context"
	"log/slog"
	"sync"

	"vexscout-backend/lib/robotevents"
	"vexscout-backend/lib/textutil"
)

type Fetcher struct {
	Client *robotevents.Client
}

// ForTeams fetches and aggregates match history for every team in the
// number → opaque id map. requests run in fixed-size batches; a failure
// fetching one team leaves that team without an aggregate and the rest
// untouched.
func (f Fetcher) ForTeams(ctx context.Context, teamIds map[string]int, filter Filter) map[string]Aggregate {
	aggregates := map[string]Aggregate{}
	if !f.Client.HasCredential() {
		slog.DebugContext(ctx, "no credential, skipping match history")
		return aggregates
	}

	numbers := make([]string, 0, len(teamIds))
	for number := range teamIds {
		numbers = append(numbers, number)
	}

	mu := sync.Mutex{}
	robotevents.RunBatched(ctx, numbers, func(number string) {
		number = textutil.CanonicalTeamNumber(number)
		ms, err := f.Client.TeamMatches(ctx, teamIds[number])
		if err != nil {
			slog.WarnContext(ctx, "failed to fetch team matches", "team", number, "err", err)
			return
		}

		aggregate, ok := BuildAggregate(number, ApplyWindow(ms, filter))
		if !ok {
			return
		}

		mu.Lock()
		defer mu.Unlock()
		aggregates[number] = aggregate
	})

	return aggregates
}
