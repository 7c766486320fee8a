package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import migrations and seeders so their init() funcs register them.
	_ "github.com/Saurav-S-Mehta-07/RetailEdge/database/migrations"
	_ "github.com/Saurav-S-Mehta-07/RetailEdge/database/seeders"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "retailedge",
	Short: "RetailEdge — shopkeeper marketplace CLI",
	Long:  "RetailEdge is a server-rendered marketplace for local shopkeepers. Use this CLI to run the server and manage the database.",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)

	rootCmd.AddCommand(queueFailedCmd)
}
