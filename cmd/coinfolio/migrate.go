package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"coinfolio/internal/database"
	"coinfolio/internal/logger"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the storage schema",
		Long: `Apply or roll back the storage schema. Every other command applies
pending migrations on start, so this is only needed to inspect or downgrade.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: withDatabase(func(cmd *cobra.Command, args []string, db *database.Manager) error {
			if err := db.RunMigrations(); err != nil {
				return err
			}
			logger.Get().Info("Migrations applied successfully")
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down [N]",
		Short: "Roll back the last N migrations (default 1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: withDatabase(func(cmd *cobra.Command, args []string, db *database.Manager) error {
			steps := 1
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid step count: %w", err)
				}
				steps = n
			}
			if err := db.RollbackMigrations(steps); err != nil {
				return err
			}
			logger.Get().Infof("Rolled back %d migration(s)", steps)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: withDatabase(func(cmd *cobra.Command, args []string, db *database.Manager) error {
			version, dirty, err := db.Version()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Version: %d, Dirty: %v\n", version, dirty)
			return nil
		}),
	})

	return cmd
}

// withDatabase opens the configured database around fn without migrating it.
func withDatabase(fn func(cmd *cobra.Command, args []string, db *database.Manager) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		_, db, err := openDatabase()
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.Get().Warnw("closing database failed", "error", err)
			}
		}()
		return fn(cmd, args, db)
	}
}
