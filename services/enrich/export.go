package enrich

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

// exports serialize the enriched view as-is; they never touch the
// durable settings document.

func ExportJSON(w io.Writer, result Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result.Rows)
}

func ExportCSV(w io.Writer, result Result) error {
	cw := csv.NewWriter(w)
	err := cw.Write([]string{
		"local_rank", "team", "name", "organization", "location",
		"combined", "autonomous", "driver", "global_rank", "percentile",
		"match_average", "match_max", "match_count", "highlight",
	})
	if err != nil {
		return err
	}

	for _, row := range result.Rows {
		err := cw.Write([]string{
			strconv.Itoa(row.LocalRank),
			row.Number,
			row.DisplayName,
			row.Organization,
			row.Location,
			strconv.Itoa(row.Ranking.Combined),
			strconv.Itoa(row.Ranking.Autonomous),
			strconv.Itoa(row.Ranking.Driver),
			strconv.Itoa(row.Ranking.GlobalRank),
			strconv.Itoa(row.Percentile),
			strconv.Itoa(row.Aggregate.Average),
			strconv.Itoa(row.Aggregate.Max),
			strconv.Itoa(row.Aggregate.Count),
			string(row.Highlight),
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
