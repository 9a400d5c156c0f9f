package app

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hrops/recruiting-server/database"
)

func newMigrateDownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Migrate the database down",
		Long: `Revert schema migrations. Without --num-steps every migration is
reverted, which drops all mirrored candidates and feedback.

  recruiting-api migrate down --config config.yaml --num-steps 1 --yes`,
		RunE: runMigrateDown,
	}
}

func runMigrateDown(cmd *cobra.Command, _ []string) error {
	numSteps, err := cmd.Flags().GetUint("num-steps")
	if err != nil {
		return fmt.Errorf("failed to get num-steps flag: %w", err)
	}

	_, m, err := setupMigration(cmd)
	if err != nil {
		return err
	}
	defer closeMigrator(m)

	ok, err := confirmMigration(cmd, migrateDownPrompt(numSteps))
	if err != nil {
		return err
	}
	if !ok {
		slog.Info("Migration cancelled")
		return fmt.Errorf("migration cancelled by user")
	}

	if err := executeMigrateDown(m, numSteps); err != nil {
		return err
	}

	displayMigrationVersion(m)
	return nil
}

func migrateDownPrompt(numSteps uint) string {
	if numSteps == 0 {
		return "WARNING: This will migrate down ALL steps and may result in complete data loss. Continue?"
	}
	return fmt.Sprintf("WARNING: This will migrate down %d step(s) and may result in data loss. Continue?", numSteps)
}

func executeMigrateDown(m database.Migrator, numSteps uint) error {
	if numSteps == 0 {
		slog.Warn("Reverting every migration; all recruiting data will be dropped")
	}
	return runSteps(m, numSteps, -1)
}
