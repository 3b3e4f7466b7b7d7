package main

import (
	"github.com/aretw0/nodetrace/internal/cli"
	"github.com/aretw0/nodetrace/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a sample pipeline and trace it",
	Long:  `Runs a small research pipeline with concurrent researchers, exercising every trace event.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		researchers, _ := cmd.Flags().GetInt("researchers")
		topic, _ := cmd.Flags().GetString("topic")
		quiet, _ := cmd.Flags().GetBool("quiet")

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		rt, err := cli.NewRuntime(ctx, optionsFrom(cmd))
		if err != nil {
			return err
		}
		defer rt.Close()

		if !quiet {
			tui.PrintBanner(cmd.OutOrStdout())
		}
		go rt.Watch(ctx, cli.DefaultWatchInterval)

		err = cli.RunDemo(ctx, rt, cli.DemoOptions{
			Topic:       topic,
			Researchers: researchers,
		}, cmd.OutOrStdout())
		return cli.HandleInterrupt(cmd.OutOrStdout(), err, ctx.Signal())
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().IntP("researchers", "n", 3, "Number of concurrent researchers")
	demoCmd.Flags().String("topic", "node tracing", "Topic handed to the pipeline")
	demoCmd.Flags().BoolP("quiet", "q", false, "Skip the banner")
}
