package enrich

import (
	"math"
	"slices"
)

// Percentile is the share of the reference population strictly below
// the score, rounded to a whole percent. the population should be the
// broadest ranking set available, not just the visible rows.
func Percentile(score int, population []int) int {
	if len(population) == 0 {
		return 0
	}
	below := 0
	for _, s := range population {
		if s < score {
			below++
		}
	}
	return int(math.Round(100 * float64(below) / float64(len(population))))
}

// Summary statistics over the merged set, computed only from entries
// with a strictly positive combined score.
type Summary struct {
	Count             int
	Average           int
	Max               int
	Median            int
	AverageAutonomous int
	AverageDriver     int
}

func Summarize(rows []TeamView) Summary {
	var combined, autonomous, driver []int
	maxScore := 0

	for _, row := range rows {
		if row.Ranking.Combined > 0 {
			combined = append(combined, row.Ranking.Combined)
			maxScore = max(maxScore, row.Ranking.Combined)
		}
		if row.Ranking.Autonomous > 0 {
			autonomous = append(autonomous, row.Ranking.Autonomous)
		}
		if row.Ranking.Driver > 0 {
			driver = append(driver, row.Ranking.Driver)
		}
	}

	return Summary{
		Count:             len(combined),
		Average:           roundedMean(combined),
		Max:               maxScore,
		Median:            upperMiddleMedian(combined),
		AverageAutonomous: roundedMean(autonomous),
		AverageDriver:     roundedMean(driver),
	}
}

func roundedMean(values []int) int {
	if len(values) == 0 {
		return 0
	}
	total := 0
	for _, v := range values {
		total += v
	}
	return int(math.Round(float64(total) / float64(len(values))))
}

// the middle element of the ascending-sorted list; even-length lists
// take the upper-middle element rather than interpolating. this matches
// the long-standing displayed behavior, so it stays pinned as is.
func upperMiddleMedian(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return sorted[len(sorted)/2]
}
