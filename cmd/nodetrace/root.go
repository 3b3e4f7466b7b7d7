package main

import (
	"fmt"
	"os"

	"github.com/aretw0/nodetrace/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nodetrace",
	Short: "nodetrace traces the nodes of a processing pipeline",
	Long: `nodetrace writes human-readable trace events for pipeline nodes to the console
and to a timestamped log file, with per-category switches.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML file with toggle settings")
	rootCmd.PersistentFlags().String("dir", "", "Directory under which the log directory is created (default: working directory)")
	rootCmd.PersistentFlags().String("redis", "", "Redis address to read runtime toggles from")
	rootCmd.PersistentFlags().Bool("debug", false, "Write diagnostic logs to stderr")
}

// optionsFrom reads the persistent flags.
func optionsFrom(cmd *cobra.Command) cli.Options {
	config, _ := cmd.Flags().GetString("config")
	dir, _ := cmd.Flags().GetString("dir")
	redisAddr, _ := cmd.Flags().GetString("redis")
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.Options{
		ConfigPath: config,
		Dir:        dir,
		RedisAddr:  redisAddr,
		Debug:      debug,
	}
}
