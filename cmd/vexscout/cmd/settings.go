package cmd

import (
	"fmt"

	"vexscout-backend/lib/settingstore"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage the persisted configuration",
}

var tokenCmd = &cobra.Command{
	Use:   "token <bearer-token>",
	Short: "Store the API credential",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store.Mutate(cmd.Context(), func(s *settingstore.Settings) {
			s.ApiToken = args[0]
		})
		fmt.Println("credential stored")
		return nil
	},
}

var highlightCmd = &cobra.Command{
	Use:   "highlight",
	Short: "Manage manually highlighted teams",
}

var highlightAddCmd = &cobra.Command{
	Use:   "add <team-number>",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := store.Mutate(cmd.Context(), func(s *settingstore.Settings) {
			s.AddHighlight(args[0])
		})
		fmt.Printf("highlighted teams: %v\n", settings.HighlightedTeams)
		return nil
	},
}

var highlightRemoveCmd = &cobra.Command{
	Use:   "remove <team-number>",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := store.Mutate(cmd.Context(), func(s *settingstore.Settings) {
			s.RemoveHighlight(args[0])
		})
		fmt.Printf("highlighted teams: %v\n", settings.HighlightedTeams)
		return nil
	},
}

var highlightListCmd = &cobra.Command{
	Use:  "list",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := store.Load(cmd.Context())
		for _, number := range settings.HighlightedTeams {
			fmt.Println(number)
		}
		return nil
	},
}

var matchFilterFlags struct {
	filterType string
	date       string
	count      int
}

var matchFilterCmd = &cobra.Command{
	Use:   "match-filter",
	Short: "Configure the match selection window",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := store.Mutate(cmd.Context(), func(s *settingstore.Settings) {
			switch matchFilterFlags.filterType {
			case string(settingstore.MatchFilterSinceDate),
				string(settingstore.MatchFilterLastEvents),
				string(settingstore.MatchFilterAllEvents):
				s.MatchFilterType = settingstore.MatchFilterType(matchFilterFlags.filterType)
			}
			if matchFilterFlags.date != "" {
				s.MatchFilterDate = matchFilterFlags.date
			}
			if matchFilterFlags.count > 0 {
				s.MatchFilterCount = matchFilterFlags.count
			}
		})
		fmt.Printf(
			"match filter: %s (date=%s, count=%d)\n",
			settings.MatchFilterType, settings.MatchFilterDate, settings.MatchFilterCount,
		)
		return nil
	},
}

var capturesCmd = &cobra.Command{
	Use:   "captures",
	Short: "List captured competition rosters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := store.Load(cmd.Context())
		for id, capture := range settings.CompetitionTeams {
			fmt.Printf(
				"%s  %s  %d/%d teams  captured %s\n",
				id, capture.Name, len(capture.Teams), capture.Capacity,
				capture.CapturedAt.Format("2006-01-02 15:04"),
			)
		}
		return nil
	},
}

func init() {
	matchFilterCmd.Flags().StringVar(&matchFilterFlags.filterType, "type", "", "since_date, last_n_events or all_events")
	matchFilterCmd.Flags().StringVar(&matchFilterFlags.date, "date", "", "cutoff date (YYYY-MM-DD) for since_date")
	matchFilterCmd.Flags().IntVar(&matchFilterFlags.count, "count", 0, "event count for last_n_events")

	highlightCmd.AddCommand(highlightAddCmd, highlightRemoveCmd, highlightListCmd)
	settingsCmd.AddCommand(tokenCmd, highlightCmd, matchFilterCmd, capturesCmd)
	rootCmd.AddCommand(settingsCmd)
}
