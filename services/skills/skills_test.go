package skills

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"vexscout-backend/lib/robotevents"

	"github.com/stretchr/testify/require"
)

func newFetcher(t *testing.T, handler http.HandlerFunc, token string) (Fetcher, func()) {
	server := httptest.NewServer(handler)
	client := robotevents.NewClient(robotevents.Options{
		BaseUrl:           server.URL,
		SkillsUrl:         server.URL,
		Token:             token,
		SeasonId:          190,
		ProgramId:         1,
		RequestsPerMinute: 100000,
	})
	return Fetcher{Client: client}, server.Close
}

func TestGlobalMergesPartitionsKeepingHigherScore(t *testing.T) {
	fetcher, done := newFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		grade := r.URL.Query().Get("grade_level")
		standings := []robotevents.SkillsStanding{
			{
				Rank:   4,
				Team:   robotevents.SkillsTeam{Id: 1, Team: "1234a", GradeLevel: grade},
				Scores: robotevents.SkillsScores{Score: 80, Programming: 30, Driver: 50},
			},
		}
		if grade == "High School" {
			standings[0].Scores.Score = 120
			standings[0].Rank = 2
		}
		json.NewEncoder(w).Encode(standings)
	}, "")
	defer done()

	records := fetcher.Global(context.Background(), false)
	require.Len(t, records, 1)
	// higher combined score wins across partitions
	require.Equal(t, 120, records["1234A"].Combined)
	require.Equal(t, 2, records["1234A"].GlobalRank)
}

func TestGlobalToleratesFailedPartition(t *testing.T) {
	fetcher, done := newFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("grade_level") == "High School" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode([]robotevents.SkillsStanding{
			{Rank: 1, Team: robotevents.SkillsTeam{Team: "99X"}, Scores: robotevents.SkillsScores{Score: 77}},
		})
	}, "")
	defer done()

	records := fetcher.Global(context.Background(), false)
	require.Len(t, records, 1)
	require.Equal(t, 77, records["99X"].Combined)
}

func TestEventScopedCombinesBestRuns(t *testing.T) {
	fetcher, done := newFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/events/42/skills", r.URL.Path)
		fmt.Fprint(w, `{
			"meta": {"current_page": 1, "last_page": 1},
			"data": [
				{"team": {"id": 9, "name": "1234A"}, "type": "programming", "score": 30},
				{"team": {"id": 9, "name": "1234A"}, "type": "programming", "score": 45},
				{"team": {"id": 9, "name": "1234A"}, "type": "driver", "score": 61},
				{"team": {"id": 9, "name": "1234A"}, "type": "driver", "score": 52}
			]
		}`)
	}, "token")
	defer done()

	records := fetcher.EventScoped(context.Background(), 42)
	record := records["1234A"]
	require.Equal(t, 45, record.Autonomous)
	require.Equal(t, 61, record.Driver)
	// combined is best programming + best driver, not the api's field
	require.Equal(t, 106, record.Combined)
}

func TestEventScopedWithoutCredential(t *testing.T) {
	fetcher, done := newFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued without a credential")
	}, "")
	defer done()

	records := fetcher.EventScoped(context.Background(), 42)
	require.Empty(t, records)
}
