// ABOUTME: CLI commands for exporting and importing roster data.
// ABOUTME: Supports CSV per player plus JSON, YAML, and Markdown formats.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/harperreed/hoops/internal/roster"
	"github.com/harperreed/hoops/internal/statfile"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportAllCSV bool
)

var exportCmd = &cobra.Command{
	Use:   "export <format> [player]",
	Short: "Export roster data",
	Long: `Export roster data in various formats.

FORMATS:

  csv        One player's game log with computed FG%/3P%/FT% columns
  json       Full roster export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Markdown tables (for documentation/sharing)

CSV exports one player at a time (or every player with --all) and
defaults the filename to the player's name with spaces replaced by
underscores. The other formats cover the whole roster and print to
stdout unless --output is given.

EXAMPLES:

  hoops export csv "Alex Morgan"            # Writes Alex_Morgan.csv
  hoops export csv Sam -o sam-2024.csv      # Custom filename
  hoops export csv --all                    # One CSV per player
  hoops export json -o backup.json          # Whole-roster backup
  hoops export markdown                     # Tables to stdout`,
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: []string{"csv", "json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		r, err := loadRoster()
		if err != nil {
			return err
		}

		if format == "csv" {
			return exportCSV(r, args)
		}

		var data []byte
		switch format {
		case "json":
			data, err = statfile.ExportJSON(r)
		case "yaml":
			data, err = statfile.ExportYAML(r)
		case "markdown":
			data = []byte(statfile.ExportMarkdown(r))
		default:
			return fmt.Errorf("unknown format: %s (use csv, json, yaml, or markdown)", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

func exportCSV(r *roster.Roster, args []string) error {
	if exportAllCSV {
		for i := range r.Players {
			p := &r.Players[i]
			filename := statfile.CSVFileName(p.Name)
			if exportOutput != "" {
				filename = filepath.Join(exportOutput, filename)
			}
			if err := statfile.ExportCSV(filename, p); err != nil {
				return fmt.Errorf("export %s: %w", p.Name, err)
			}
			color.Green("✓ Exported %s to %s", p.Name, filename)
		}
		return nil
	}

	if len(args) < 2 {
		return fmt.Errorf("csv export needs a player name (or --all)")
	}
	p, err := findPlayer(r, args[1])
	if err != nil {
		return err
	}

	filename := exportOutput
	if filename == "" {
		filename = statfile.CSVFileName(p.Name)
	}
	if err := statfile.ExportCSV(filename, p); err != nil {
		return fmt.Errorf("export %s: %w", p.Name, err)
	}
	color.Green("✓ Exported %s to %s", p.Name, filename)
	return nil
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import roster data from JSON",
	Long: `Import a roster from a JSON backup file.

The import replaces the stored roster wholesale, like loading a save
file. A malformed backup fails the whole import and leaves the stored
roster untouched.

EXAMPLES:

  hoops import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		r, err := statfile.ImportJSON(data)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		if err := store.Save(r); err != nil {
			return fmt.Errorf("save roster: %w", err)
		}

		color.Green("✓ Imported %d players from %s", r.Len(), filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout, or <Player_Name>.csv for csv)")
	exportCmd.Flags().BoolVar(&exportAllCSV, "all", false, "export every player to their own CSV (csv only)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
