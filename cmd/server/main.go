package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "adbot",
		Short:         "Telegram bot that periodically broadcasts an ad to a list of channels",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (default: config.{yaml,yml,json,toml} in the working directory)")

	cmd.AddCommand(serveCmd(&configPath))
	cmd.AddCommand(channelsCmd(&configPath))
	cmd.AddCommand(adCmd(&configPath))
	return cmd
}
