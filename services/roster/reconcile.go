package roster

import (
	"context"
	"log/slog"

	"vexscout-backend/lib/robotevents"
	"vexscout-backend/lib/textutil"

	"github.com/antzucaro/matchr"
)

// rows below this similarity stay unresolved rather than guessing
const minNameSimilarity = 0.85

// Reconcile repairs extracted rows whose number cell was unusable by
// fuzzy-matching display names against API-resolved teams. rows that
// already carry a valid number pass through untouched; rows that cannot
// be matched are dropped, since an unkeyed row can never be joined to
// anything downstream.
func Reconcile(ctx context.Context, rows []TeamIdentity, known []robotevents.Team) []TeamIdentity {
	out := make([]TeamIdentity, 0, len(rows))

	for _, row := range rows {
		if textutil.IsTeamNumber(row.Number) {
			out = append(out, row)
			continue
		}

		var bestSimilarity float64
		var best *robotevents.Team
		for i, team := range known {
			similarity := matchr.JaroWinkler(
				textutil.NormalizeName(row.DisplayName),
				textutil.NormalizeName(team.TeamName),
				false,
			)
			if similarity > bestSimilarity {
				bestSimilarity = similarity
				best = &known[i]
			}
		}

		if best == nil || bestSimilarity < minNameSimilarity {
			slog.WarnContext(
				ctx, "dropping roster row with unresolvable team number",
				"number", row.Number,
				"name", row.DisplayName,
			)
			continue
		}

		row.Number = textutil.CanonicalTeamNumber(best.Number)
		slog.DebugContext(
			ctx, "reconciled roster row by name",
			"number", row.Number,
			"name", row.DisplayName,
			"similarity", bestSimilarity,
		)
		out = append(out, row)
	}

	return out
}
