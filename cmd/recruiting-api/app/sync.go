package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/hrops/recruiting-server/internal/app/storage"
	"github.com/hrops/recruiting-server/internal/ashby"
	"github.com/hrops/recruiting-server/internal/status"
	pkgsync "github.com/hrops/recruiting-server/internal/sync"
	"github.com/hrops/recruiting-server/internal/sync/state"
)

func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run or inspect Ashby synchronization",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Usage()
		},
	}

	cmd.PersistentFlags().String("config", "", "Path to configuration file (YAML format, required)")
	if err := cmd.MarkPersistentFlagRequired("config"); err != nil {
		panic(err)
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show recent sync runs",
		RunE:  runSyncStatus,
	}
	statusCmd.Flags().Int("limit", state.DefaultListLimit, "Number of runs to show")

	cmd.AddCommand(&cobra.Command{
		Use:   "full",
		Short: "Run one full sync of relevant applications and exit",
		RunE:  runSyncFull,
	})
	cmd.AddCommand(statusCmd)
	return cmd
}

func runSyncFull(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfigFromFlag(cmd)
	if err != nil {
		return err
	}

	factory, err := storage.NewDatabaseFactory(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create storage factory: %w", err)
	}
	defer factory.Cleanup()

	source, err := ashby.NewClient(cfg.Ashby)
	if err != nil {
		return fmt.Errorf("failed to create Ashby client: %w", err)
	}
	runs, err := factory.CreateSyncRunService(ctx)
	if err != nil {
		return fmt.Errorf("failed to create sync run service: %w", err)
	}
	syncWriter, err := factory.CreateSyncWriter(ctx)
	if err != nil {
		return fmt.Errorf("failed to create sync writer: %w", err)
	}

	manager := pkgsync.NewDefaultSyncManager(source, syncWriter, pkgsync.WithSyncRunService(runs))
	return runFullSync(ctx, manager, cmd.OutOrStdout())
}

// runFullSync runs one full pass and prints its summary
func runFullSync(ctx context.Context, manager pkgsync.Manager, out io.Writer) error {
	result, syncErr := manager.FullSync(ctx)
	if syncErr != nil {
		return syncErr
	}

	slog.Info("Full sync finished",
		"scanned", result.Scanned,
		"reconciled", result.Reconciled,
		"irrelevant", result.Irrelevant,
		"skipped", result.Skipped,
		"failed", result.Failed)
	_, err := fmt.Fprintln(out, result.Message())
	return err
}

func runSyncStatus(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("failed to get limit flag: %w", err)
	}
	if limit <= 0 {
		return fmt.Errorf("limit must be positive")
	}

	cfg, err := loadConfigFromFlag(cmd)
	if err != nil {
		return err
	}

	factory, err := storage.NewDatabaseFactory(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create storage factory: %w", err)
	}
	defer factory.Cleanup()

	runs, err := factory.CreateSyncRunService(ctx)
	if err != nil {
		return fmt.Errorf("failed to create sync run service: %w", err)
	}

	recent, err := runs.ListRecent(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list sync runs: %w", err)
	}

	return renderSyncRuns(cmd.OutOrStdout(), recent)
}

// renderSyncRuns prints the ledger as a table, newest first
func renderSyncRuns(out io.Writer, runs []status.SyncRun) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(out, "No sync runs recorded")
		return err
	}

	table := tablewriter.NewWriter(out)
	table.Header("Started", "Kind", "Phase", "Duration", "Scanned", "Reconciled", "Failed", "Message")

	for i := range runs {
		run := &runs[i]
		duration := "-"
		if run.EndedAt != nil {
			duration = run.Duration().Round(time.Millisecond).String()
		}
		if err := table.Append([]string{
			run.StartedAt.UTC().Format(time.RFC3339),
			run.Kind,
			string(run.Phase),
			duration,
			strconv.Itoa(run.Scanned),
			strconv.Itoa(run.Reconciled),
			strconv.Itoa(run.Failed),
			run.Message,
		}); err != nil {
			return fmt.Errorf("failed to render sync run: %w", err)
		}
	}

	return table.Render()
}
