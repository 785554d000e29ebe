package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"vexscout-backend/lib/configutil"
	"vexscout-backend/lib/robotevents"
	"vexscout-backend/lib/settingstore"
	"vexscout-backend/lib/telemetry"

	"github.com/spf13/cobra"
)

type ApiConfig struct {
	BaseUrl           string `json:"base_url"`
	SkillsUrl         string `json:"skills_url"`
	ProgramId         int    `json:"program_id"`
	SeasonId          int    `json:"season_id"`
	RequestsPerMinute int    `json:"requests_per_minute"`
}

type Config struct {
	Store settingstore.Config `json:"store"`
	Api   ApiConfig           `json:"api"`
}

// shared by every subcommand, set up once in the root's pre-run
var (
	config Config
	store  settingstore.Store
	client *robotevents.Client
)

var rootCmd = &cobra.Command{
	Use:   "vexscout",
	Short: "Capture event rosters and enrich competition rankings",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		config, err = configutil.ReadRecursively[Config]("vexscout.json5")
		if err != nil && !os.IsNotExist(err) {
			return err
		}

		// telemetry is optional: without a config, spans go nowhere
		_, err = telemetry.SetupFromEnv(cmd.Context(), "vexscout")
		if err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to set up telemetry", "err", err)
		}

		db, err := config.Store.OpenDB()
		if err != nil {
			return fmt.Errorf("failed to open settings store: %w", err)
		}
		store, err = settingstore.NewStore(db)
		if err != nil {
			return fmt.Errorf("failed to initialize settings store: %w", err)
		}

		client = robotevents.NewClient(robotevents.Options{
			BaseUrl:           config.Api.BaseUrl,
			SkillsUrl:         config.Api.SkillsUrl,
			Token:             store.Credential(cmd.Context()),
			ProgramId:         config.Api.ProgramId,
			SeasonId:          config.Api.SeasonId,
			RequestsPerMinute: config.Api.RequestsPerMinute,
		})
		return nil
	},
}

func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}
