package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Saurav-S-Mehta-07/RetailEdge/config"
	"github.com/Saurav-S-Mehta-07/RetailEdge/database/seeders"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/database"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/migration"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/queue"
)

// bootDB loads config and opens the database connection.
func bootDB() error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect()
}

// retailedge migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		fmt.Println("Running migrations…")
		return migration.New(database.DB).Run()
	},
}

// retailedge migrate:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Rollback the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		fmt.Println("Rolling back last batch…")
		return migration.New(database.DB).Rollback()
	},
}

// retailedge migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of each migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		return migration.New(database.DB).Status()
	},
}

// retailedge seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with demo shops and listings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		if err := migration.New(database.DB).Run(); err != nil {
			return err
		}
		fmt.Println("Seeding database…")
		return seeders.RunAll(database.DB)
	},
}

// retailedge queue:failed
var queueFailedCmd = &cobra.Command{
	Use:   "queue:failed",
	Short: "List jobs that exhausted their retries",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		var failed []queue.FailedJobRecord
		if err := database.DB.Order("failed_at desc").Find(&failed).Error; err != nil {
			return err
		}
		if len(failed) == 0 {
			fmt.Println("No failed jobs.")
			return nil
		}
		fmt.Printf("%-6s  %-30s  %-20s  %s\n", "ID", "JOB", "FAILED AT", "ERROR")
		for _, fj := range failed {
			fmt.Printf("%-6d  %-30s  %-20s  %s\n", fj.ID, fj.JobType, fj.FailedAt.Format("2006-01-02 15:04:05"), fj.Error)
		}
		return nil
	},
}
