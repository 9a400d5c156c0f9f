package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hrops/recruiting-server/database"
	"github.com/hrops/recruiting-server/internal/config"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tool",
		Long:  `Database migration tool for managing schema versions. Use with 'up' or 'down' subcommands.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Usage()
		},
	}

	cmd.PersistentFlags().BoolP("yes", "y", false, "Answer yes to all questions")
	cmd.PersistentFlags().UintP("num-steps", "n", 0, "Number of steps to migrate (0 = all)")
	cmd.PersistentFlags().String("config", "", "Path to configuration file (YAML format, required)")
	if err := cmd.MarkPersistentFlagRequired("config"); err != nil {
		panic(err)
	}

	cmd.AddCommand(newMigrateUpCmd())
	cmd.AddCommand(newMigrateDownCmd())
	return cmd
}

// setupMigration loads the configuration and opens a migrator as the migration user
func setupMigration(cmd *cobra.Command) (*config.Config, database.Migrator, error) {
	cfg, err := loadConfigFromFlag(cmd)
	if err != nil {
		return nil, nil, err
	}

	connString, err := cfg.Database.GetMigrationConnectionString()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get migration connection string: %w", err)
	}

	m, err := database.GetMigrate(connString)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return cfg, m, nil
}

func closeMigrator(m database.Migrator) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		slog.Error("Error closing migration source", "error", srcErr)
	}
	if dbErr != nil {
		slog.Error("Error closing database connection", "error", dbErr)
	}
}

// confirmMigration asks for confirmation unless --yes was given. Without a
// terminal there is nobody to answer, so the command refuses to continue.
func confirmMigration(cmd *cobra.Command, prompt string) (bool, error) {
	yes, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return false, fmt.Errorf("failed to get yes flag: %w", err)
	}
	if yes {
		return true, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, fmt.Errorf("refusing to migrate without confirmation: stdin is not a terminal, pass --yes")
	}

	return confirm(cmd.InOrStdin(), cmd.OutOrStdout(), prompt)
}

// confirm prints prompt and reads a yes/no answer
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s (yes/no): ", prompt); err != nil {
		return false, err
	}

	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(response)) {
	case "yes", "y":
		return true, nil
	default:
		return false, nil
	}
}

// runSteps applies numSteps migrations in direction (1 up, -1 down), or all
// of them when numSteps is zero. ErrNoChange is not a failure.
func runSteps(m database.Migrator, numSteps uint, direction int) error {
	var err error
	switch {
	case numSteps == 0 && direction > 0:
		err = m.Up()
	case numSteps == 0:
		err = m.Down()
	case numSteps > math.MaxInt32:
		return fmt.Errorf("num-steps %d is too large", numSteps)
	default:
		err = m.Steps(direction * int(numSteps)) // #nosec G115 -- bounded above
	}

	if errors.Is(err, migrate.ErrNoChange) {
		slog.Info("Schema already at the requested version")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	slog.Info("Migration finished", "direction", direction, "steps", numSteps)
	return nil
}
