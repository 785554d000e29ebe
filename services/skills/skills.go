// Package skills fetches skills rankings and normalizes them into one
// record per team. an empty map always means "no ranking data", never
// an error: rendering simply omits the ranking columns.
package skills

import (
	"context"
	"log/slog"

	"vexscout-backend/lib/robotevents"
	"vexscout-backend/lib/textutil"
)

type Record struct {
	TeamNumber string
	// display fields, populated by the seasonal feed only
	TeamName     string
	Organization string
	// best autonomous + best driver runs
	Combined   int
	Autonomous int
	Driver     int
	GlobalRank int
	GradeLevel string
	City       string
	Region     string
	Country    string
	// opaque api id, 0 when unknown
	TeamId int
}

// the seasonal feed partitions standings by grade level; both
// partitions are queried and merged
var gradeLevels = []string{"High School", "Middle School"}

type Fetcher struct {
	Client *robotevents.Client
}

// Global queries the unauthenticated seasonal standings, one request
// per grade-level partition. a failed partition is skipped, the others
// still populate the map. on a number collision across partitions the
// higher combined score wins, ties keep the first-seen record.
func (f Fetcher) Global(ctx context.Context, postSeason bool) map[string]Record {
	records := map[string]Record{}

	for _, gradeLevel := range gradeLevels {
		standings, err := f.Client.SkillsStandings(ctx, postSeason, gradeLevel)
		if err != nil {
			slog.WarnContext(
				ctx, "skipping failed skills partition",
				"grade_level", gradeLevel,
				"err", err,
			)
			continue
		}

		for _, standing := range standings {
			number := textutil.CanonicalTeamNumber(standing.Team.Team)
			record := Record{
				TeamNumber:   number,
				TeamName:     standing.Team.TeamName,
				Organization: standing.Team.Organization,
				Combined:     standing.Scores.Score,
				Autonomous:   standing.Scores.Programming,
				Driver:       standing.Scores.Driver,
				GlobalRank:   standing.Rank,
				GradeLevel:   standing.Team.GradeLevel,
				City:         standing.Team.City,
				Region:       standing.Team.Region,
				Country:      standing.Team.Country,
				TeamId:       standing.Team.Id,
			}
			existing, ok := records[number]
			if ok && existing.Combined >= record.Combined {
				continue
			}
			records[number] = record
		}
	}

	return records
}

// EventScoped queries one event's itemized skills runs. within an
// event, entries are per run type rather than pre-combined, so the
// combined score is computed as best programming + best driver here.
// requires a credential; without one an empty map comes back.
func (f Fetcher) EventScoped(ctx context.Context, eventId int) map[string]Record {
	if !f.Client.HasCredential() {
		slog.DebugContext(ctx, "no credential, skipping event skills")
		return map[string]Record{}
	}

	runs, err := f.Client.EventSkills(ctx, eventId)
	if err != nil {
		slog.WarnContext(ctx, "failed to fetch event skills", "event_id", eventId, "err", err)
		return map[string]Record{}
	}

	records := map[string]Record{}
	for _, run := range runs {
		number := textutil.CanonicalTeamNumber(run.Team.Name)
		record := records[number]
		record.TeamNumber = number
		record.TeamId = run.Team.Id

		switch run.Type {
		case robotevents.SkillTypeProgramming:
			record.Autonomous = max(record.Autonomous, run.Score)
		case robotevents.SkillTypeDriver:
			record.Driver = max(record.Driver, run.Score)
		}
		record.Combined = record.Autonomous + record.Driver
		records[number] = record
	}

	return records
}

// Population returns every combined score in a ranking map, the
// reference population for percentile computation.
func Population(records map[string]Record) []int {
	scores := make([]int, 0, len(records))
	for _, record := range records {
		scores = append(scores, record.Combined)
	}
	return scores
}
