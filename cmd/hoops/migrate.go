// ABOUTME: CLI command for migrating roster data between backends.
// ABOUTME: Copies the snapshot from the configured store to another backend.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/hoops/internal/config"
	"github.com/harperreed/hoops/internal/storage"
	"github.com/spf13/cobra"
)

var (
	migrateTo     string
	migrateDryRun bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate data to another storage backend",
	Long: `Copy the stored roster from the configured backend to another one.

BACKENDS:

  textfile   players_data.txt in the data directory (default)
  sqlite     hoops.db in the data directory

The destination snapshot is replaced wholesale. Migration does not
switch the active backend; update the config file afterwards:

  {
    "backend": "sqlite"
  }

at the path printed by 'hoops migrate' on success.

USAGE:

  hoops migrate --to sqlite --dry-run   # Preview what would move
  hoops migrate --to sqlite             # Copy textfile data into sqlite`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateTo == "" {
			return fmt.Errorf("--to is required (textfile or sqlite)")
		}
		if migrateTo == cfg.GetBackend() {
			return fmt.Errorf("already using the %s backend", migrateTo)
		}

		if migrateDryRun {
			color.Yellow("Dry run mode - no changes will be made")
			r, err := loadRoster()
			if err != nil {
				return err
			}
			games := 0
			for i := range r.Players {
				games += len(r.Players[i].Games)
			}
			fmt.Printf("Would migrate %d players and %d games to %s.\n", r.Len(), games, migrateTo)
			return nil
		}

		dst, err := config.OpenBackend(migrateTo, cfg.GetDataDir())
		if err != nil {
			return fmt.Errorf("open destination: %w", err)
		}
		defer dst.Close()

		summary, err := storage.MigrateData(store, dst)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		color.Green("✓ Migrated %d players and %d games", summary.Players, summary.Games)
		fmt.Printf("  destination: %s\n", dst.Description())
		fmt.Printf("  set \"backend\": %q in %s to switch over\n", migrateTo, config.GetConfigPath())

		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend (textfile or sqlite)")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}
