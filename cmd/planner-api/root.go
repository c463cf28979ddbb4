package main

import (
	"github.com/spf13/cobra"

	"github.com/nbr5410/load-planner/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "planner-api",
	Short: "planner-api serves the load planner HTTP API.",
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(cli.NewCmdVersion())
}
