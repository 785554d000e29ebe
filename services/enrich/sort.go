package enrich

import (
	"slices"
	"strings"
)

type SortKey string

const (
	SortTeamNumber SortKey = "team"
	SortCombined   SortKey = "combined"
	SortAutonomous SortKey = "autonomous"
	SortDriver     SortKey = "driver"
	SortGlobalRank SortKey = "rank"
	SortAverage    SortKey = "average"
	SortMaxScore   SortKey = "max"
	SortMatchCount SortKey = "matches"
)

// every column sorts descending except the team number, which sorts in
// natural ascending order; the global rank column ascends too, a rank
// of 1 being the best. ties keep their prior relative order.
func sortRows(rows []TeamView, key SortKey) {
	slices.SortStableFunc(rows, func(a, b TeamView) int {
		switch key {
		case SortCombined:
			return b.Ranking.Combined - a.Ranking.Combined
		case SortAutonomous:
			return b.Ranking.Autonomous - a.Ranking.Autonomous
		case SortDriver:
			return b.Ranking.Driver - a.Ranking.Driver
		case SortGlobalRank:
			return compareRanks(a.Ranking.GlobalRank, b.Ranking.GlobalRank)
		case SortAverage:
			return b.Aggregate.Average - a.Aggregate.Average
		case SortMaxScore:
			return b.Aggregate.Max - a.Aggregate.Max
		case SortMatchCount:
			return b.Aggregate.Count - a.Aggregate.Count
		default:
			return compareTeamNumbers(a.Number, b.Number)
		}
	})
}

// unranked teams (rank 0) sort after every ranked one
func compareRanks(a, b int) int {
	if a == 0 {
		a = 1 << 30
	}
	if b == 0 {
		b = 1 << 30
	}
	return a - b
}

// "99X" < "508B" < "1234A": numeric prefix first, letter suffix second
func compareTeamNumbers(a, b string) int {
	an, as := splitTeamNumber(a)
	bn, bs := splitTeamNumber(b)
	if an != bn {
		return an - bn
	}
	return strings.Compare(as, bs)
}

func splitTeamNumber(number string) (int, string) {
	n := 0
	for i := 0; i < len(number); i++ {
		c := number[i]
		if c < '0' || c > '9' {
			return n, number[i:]
		}
		n = n*10 + int(c-'0')
	}
	return n, ""
}
