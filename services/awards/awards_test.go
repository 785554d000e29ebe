package awards

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"vexscout-backend/lib/robotevents"

	"github.com/stretchr/testify/require"
)

func newFetcher(handler http.HandlerFunc, token string) (Fetcher, func()) {
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

func TestEventScopedIndexesWinners(t *testing.T) {
	fetcher, done := newFetcher(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/events/42/awards", r.URL.Path)
		fmt.Fprint(w, `{
			"meta": {"current_page": 1, "last_page": 1},
			"data": [
				{
					"title": "Tournament Champions",
					"order": 2,
					"teamWinners": [
						{"team": {"id": 9, "name": "1234a"}},
						{"team": {"id": 7, "name": "99X"}}
					]
				},
				{
					"title": "Excellence Award",
					"order": 1,
					"teamWinners": [{"team": {"id": 9, "name": "1234A"}}]
				}
			]
		}`)
	}, "token")
	defer done()

	index := fetcher.EventScoped(context.Background(), 42)
	require.Len(t, index, 2)
	// ordered by the award's sort order
	require.Equal(t, []Award{
		{Name: "Excellence Award", Order: 1},
		{Name: "Tournament Champions", Order: 2},
	}, index["1234A"])
	require.Equal(t, []Award{{Name: "Tournament Champions", Order: 2}}, index["99X"])
}

func TestSeasonScopedToleratesFailures(t *testing.T) {
	fetcher, done := newFetcher(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/teams/7/awards" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{
			"meta": {"current_page": 1, "last_page": 1},
			"data": [
				{
					"title": "Design Award",
					"order": 3,
					"event": {"id": 42, "name": "Winter Classic"}
				}
			]
		}`)
	}, "token")
	defer done()

	index := fetcher.SeasonScoped(context.Background(), map[string]int{
		"1234A": 9,
		"99X":   7,
	})
	require.Len(t, index, 1)
	require.Equal(t, []Award{
		{Name: "Design Award", SourceEvent: "Winter Classic", Order: 3},
	}, index["1234A"])
}

func TestMissingCredentialYieldsEmptyIndex(t *testing.T) {
	fetcher, done := newFetcher(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued without a credential")
	}, "")
	defer done()

	require.Empty(t, fetcher.EventScoped(context.Background(), 42))
	require.Empty(t, fetcher.SeasonScoped(context.Background(), map[string]int{"1234A": 9}))
}
