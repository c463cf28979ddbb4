package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nbr5410/load-planner/internal/cli"
)

func main() {
	command := NewPlannerCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewPlannerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "planner [command] [flags]",
		Short: "planner sizes the electrical load of a residential plan.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdCalculate())
	cmd.AddCommand(cli.NewCmdExport())
	cmd.AddCommand(cli.NewCmdSample())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
