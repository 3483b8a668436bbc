// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/prd-agent/internal/archive"
	"github.com/pdiddy/prd-agent/pkg/types"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Inspect previously generated documents",
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated document records, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := archive.NewStore(archiveConfig(cmd))
		if err != nil {
			return err
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		records, err := store.List(cmd.Context(), limit)
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Println("No documents generated yet.")
			return nil
		}
		for _, rec := range records {
			fmt.Printf("%s  %-40q  %s  (%d rounds, %s)\n",
				rec.CreatedAt.Format("2006-01-02 15:04"), rec.Title, rec.Path, rec.Rounds, rec.Model)
		}
		return nil
	},
}

// archiveConfig builds the archive configuration from flags and config file.
// The archive-dir flag lives on the root command so both the interview and
// archive subcommands see it.
func archiveConfig(cmd *cobra.Command) types.ArchiveConfig {
	dir, _ := cmd.Root().PersistentFlags().GetString("archive-dir")
	if dir == "" {
		dir = viper.GetString("archive.archive_dir")
	}
	if dir == "" {
		dir = "archive"
	}
	return types.ArchiveConfig{
		ArchiveDir: dir,
		MaxResults: viper.GetInt("archive.max_results"),
	}
}

func init() {
	archiveListCmd.Flags().Int("limit", 0, "maximum number of records to list (default 20)")

	archiveCmd.AddCommand(archiveListCmd)
	rootCmd.AddCommand(archiveCmd)
}
