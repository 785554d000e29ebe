package enrich

import (
	"testing"

	"vexscout-backend/services/skills"

	"github.com/stretchr/testify/require"
)

func TestPercentileBounds(t *testing.T) {
	population := []int{10, 20, 30, 40, 50}

	for _, score := range []int{-5, 0, 10, 25, 50, 999} {
		p := Percentile(score, population)
		require.GreaterOrEqual(t, p, 0)
		require.LessOrEqual(t, p, 100)
	}

	// below everything
	require.Equal(t, 0, Percentile(5, population))
	// the population maximum beats everything but itself
	require.Equal(t, 80, Percentile(50, population))
	// above everything
	require.Equal(t, 100, Percentile(60, population))
	// empty reference population
	require.Equal(t, 0, Percentile(10, nil))
}

func TestMedianUpperMiddle(t *testing.T) {
	// even-length lists take the upper-middle element, not 25
	require.Equal(t, 30, upperMiddleMedian([]int{10, 20, 30, 40}))
	require.Equal(t, 20, upperMiddleMedian([]int{30, 10, 20}))
	require.Equal(t, 0, upperMiddleMedian(nil))
}

func TestSummarizeIgnoresZeroScores(t *testing.T) {
	rows := []TeamView{
		{Ranking: skills.Record{Combined: 10, Autonomous: 4, Driver: 6}, HasRanking: true},
		{Ranking: skills.Record{Combined: 20, Autonomous: 0, Driver: 20}, HasRanking: true},
		{Ranking: skills.Record{Combined: 30, Autonomous: 12, Driver: 18}, HasRanking: true},
		{Ranking: skills.Record{Combined: 40, Autonomous: 20, Driver: 20}, HasRanking: true},
		// unranked roster entries contribute nothing
		{},
	}

	s := Summarize(rows)
	require.Equal(t, 4, s.Count)
	require.Equal(t, 25, s.Average)
	require.Equal(t, 40, s.Max)
	require.Equal(t, 30, s.Median)
	// autonomous average skips the zero entry: round((4+12+20)/3) = 12
	require.Equal(t, 12, s.AverageAutonomous)
	require.Equal(t, 16, s.AverageDriver)
}
