package cmd

import (
	"fmt"
	"os"

	"vexscout-backend/services/roster"

	"github.com/spf13/cobra"
)

var captureFlags struct {
	name     string
	capacity int
}

var captureCmd = &cobra.Command{
	Use:   "capture <competition-id> <page.html>",
	Short: "Extract the team roster from a saved event page and store it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		competitionId := args[0]

		pageHtml, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}

		teams, err := roster.ExtractTeams(ctx, string(pageHtml))
		if err != nil {
			// a missing roster is a status, not a crash: the page may
			// simply not have rendered its team list
			fmt.Printf("capture skipped: %s\n", err)
			return nil
		}

		if client.HasCredential() {
			numbers := make([]string, len(teams))
			for i, team := range teams {
				numbers[i] = team.Number
			}
			known, err := client.TeamsByNumber(ctx, numbers)
			if err == nil {
				teams = roster.Reconcile(ctx, teams, known)
			}
		}

		capture := roster.Capture(ctx, store, competitionId, roster.EventMeta{
			Name:     captureFlags.name,
			Capacity: captureFlags.capacity,
		}, teams)

		fmt.Printf("captured %d teams for %s\n", len(capture.Teams), competitionId)
		return nil
	},
}

func init() {
	captureCmd.Flags().StringVar(&captureFlags.name, "name", "", "competition name")
	captureCmd.Flags().IntVar(&captureFlags.capacity, "capacity", 0, "competition capacity")
	rootCmd.AddCommand(captureCmd)
}
