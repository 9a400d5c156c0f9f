package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"text/template"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hrops/recruiting-server/database"
	"github.com/hrops/recruiting-server/internal/config"
)

// fixedRoleName is the role prime-db grants to the application user
const fixedRoleName = "recruiting_api"

// usernamePattern restricts prime-db users to plain PostgreSQL identifiers
// primeQuoteTag delimits the DO block that embeds the password in prime.sql.tmpl
const primeQuoteTag = "$prime$"

var usernamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

func newPrimeDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prime-db [username]",
		Short: "Prime the database with role and user",
		Long: `Prime the database by creating the required role and user.

This command:
- Creates the role 'recruiting_api' if it doesn't exist
- Creates a user (specified as positional argument) if it doesn't exist
- Grants the role to the user
- Reads the password from the terminal or STDIN

The command uses the --config option to connect to the database as the migration user.`,
		Args: cobra.ExactArgs(1),
		RunE: runPrimeDB,
	}

	cmd.Flags().String("config", "", "Path to configuration file (YAML format, required)")
	cmd.Flags().Bool("dry-run", false, "Print the SQL that would be executed to standard output")
	if err := cmd.MarkFlagRequired("config"); err != nil {
		panic(err)
	}

	return cmd
}

func runPrimeDB(cmd *cobra.Command, args []string) error {
	username := strings.TrimSpace(args[0])
	if username == "" {
		return errors.New("username cannot be empty")
	}
	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("invalid username %q: use letters, digits and underscores", username)
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("failed to get dry-run flag: %w", err)
	}

	password, err := readPassword(cmd)
	if err != nil {
		return err
	}

	primeSQL, err := executePrimeTemplate(username, password)
	if err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	if dryRun {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), primeSQL)
		return err
	}

	cfg, err := loadConfigFromFlag(cmd)
	if err != nil {
		return err
	}
	if err := executePrimeSQL(cmd.Context(), primeSQL, cfg.Database); err != nil {
		return fmt.Errorf("failed to execute prime SQL: %w", err)
	}

	slog.Info("Database primed", "role", fixedRoleName, "user", username)
	return nil
}

// readPassword takes the password from a silent terminal prompt, or from
// stdin when it is piped.
func readPassword(cmd *cobra.Command) (string, error) {
	var raw []byte
	var err error
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		raw, err = term.ReadPassword(fd)
		_, _ = fmt.Fprintln(cmd.ErrOrStderr())
	} else {
		raw, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	password := sanitizePassword(string(raw))
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	if strings.Contains(password, primeQuoteTag) {
		return "", fmt.Errorf("password cannot contain %q", primeQuoteTag)
	}
	return password, nil
}

// executePrimeSQL runs the rendered script in one serializable transaction
// as the migration user.
func executePrimeSQL(ctx context.Context, primeSQL string, dbCfg *config.DatabaseConfig) error {
	connString, err := dbCfg.GetMigrationConnectionString()
	if err != nil {
		return fmt.Errorf("failed to get migration connection string: %w", err)
	}

	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := conn.Close(ctx); err != nil {
			slog.Error("Error closing database connection", "error", err)
		}
	}()

	return pgx.BeginTxFunc(ctx, conn, pgx.TxOptions{IsoLevel: pgx.Serializable}, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, primeSQL); err != nil {
			return fmt.Errorf("failed to prime database: %w", err)
		}
		return nil
	})
}

type primeParams struct {
	Username string
	Password string
}

// executePrimeTemplate renders the embedded prime.sql.tmpl
func executePrimeTemplate(username, password string) (string, error) {
	text, err := database.GetPrimeTemplate()
	if err != nil {
		return "", fmt.Errorf("failed to get template: %w", err)
	}

	tmpl, err := template.New("prime").Parse(string(text))
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, primeParams{Username: username, Password: password}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// sanitizePassword trims surrounding whitespace and doubles single quotes
// for use inside a SQL string literal
func sanitizePassword(password string) string {
	return strings.ReplaceAll(strings.TrimSpace(password), "'", "''")
}
