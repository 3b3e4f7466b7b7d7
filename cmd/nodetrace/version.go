package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/nodetrace"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of nodetrace",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "nodetrace version %s\n", strings.TrimSpace(nodetrace.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
