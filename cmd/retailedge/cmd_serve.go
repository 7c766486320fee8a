package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Saurav-S-Mehta-07/RetailEdge/internal/server"
)

// retailedge serve
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP and gRPC servers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// retailedge route:list
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "Print every registered route",
	RunE: func(cmd *cobra.Command, args []string) error {
		routes, err := server.RouteTable()
		if err != nil {
			return err
		}
		if len(routes) == 0 {
			fmt.Println("No routes registered.")
			return nil
		}
		fmt.Printf("%-8s  %-40s  %s\n", "METHOD", "PATH", "NAME")
		for _, ri := range routes {
			fmt.Printf("%-8s  %-40s  %s\n", ri.Method, ri.Path, ri.Name)
		}
		return nil
	},
}
