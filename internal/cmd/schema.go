package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mchandra/offergen/internal/database"
	"github.com/mchandra/offergen/internal/ui"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema [type]",
	Short: "Output database schema files",
	Long: `Output the SQL schema for setting up the offer database.

Available schema types:
  full      Complete schema with tables and indexes (default)
  tables    Tables only, no indexes (for bulk loading)
  indexes   Indexes only (run after bulk data load)

The schema works on SQLite and MariaDB 11+. The offers, customers,
and target commands apply it automatically; this command is for
setting up a database by hand.

Examples:
  offergen schema                          # Output complete schema
  offergen schema full > schema.sql        # Save full schema to file
  offergen schema tables | mariadb offers  # Create tables only
  offergen schema indexes                  # Output index creation SQL`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSchema,
}

var schemaOutputFile string

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVarP(&schemaOutputFile, "output", "o", "", "output file (default: stdout)")
}

func runSchema(cmd *cobra.Command, args []string) {
	u := ui.New()
	if noColor {
		u.SetNoColor(true)
	}

	kind := database.SchemaFull
	if len(args) > 0 {
		kind = database.SchemaKind(args[0])
	}

	content, err := database.Schema(kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(err.Error()))
		os.Exit(1)
	}

	if schemaOutputFile != "" {
		// Ensure directory exists
		dir := filepath.Dir(schemaOutputFile)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				fmt.Fprintln(os.Stderr, u.Error(fmt.Sprintf("Creating directory: %v", err)))
				os.Exit(1)
			}
		}

		if err := os.WriteFile(schemaOutputFile, []byte(content), 0644); err != nil {
			fmt.Fprintln(os.Stderr, u.Error(fmt.Sprintf("Writing file: %v", err)))
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, u.Success("Schema written to: "+schemaOutputFile))
	} else {
		fmt.Print(content)
	}
}
