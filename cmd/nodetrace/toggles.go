package main

import (
	"github.com/aretw0/nodetrace/internal/cli"
	"github.com/spf13/cobra"
)

var togglesCmd = &cobra.Command{
	Use:   "toggles",
	Short: "Print the effective trace switches",
	Long:  `Resolves the switches from the defaults, the --config file and the DEBUG_* environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunToggles(optionsFrom(cmd), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(togglesCmd)
}
