package main

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/di"
	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/broadcast/repository"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// withRepository opens only the storage side of the container.
func withRepository(configPath string, fn func(ctx context.Context, repo repository.Repository) error) error {
	injector, err := di.Setup(configPath)
	if err != nil {
		return err
	}
	defer func() { _ = di.Shutdown(injector) }()

	repo, err := do.Invoke[repository.Repository](injector)
	if err != nil {
		return err
	}
	return fn(context.Background(), repo)
}

func channelsCmd(configPath *string) *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "channels",
		Short: "Print the stored channel list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(*configPath, func(ctx context.Context, repo repository.Repository) error {
				channels := repo.LoadChannels(ctx)

				if jsonOutput {
					data, _ := json.MarshalIndent(channels, "", "  ")
					fmt.Fprintln(cmd.OutOrStdout(), string(data))
					return nil
				}

				for i, ch := range channels {
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i+1, ch)
				}
				if len(channels) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no channels")
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func adCmd(configPath *string) *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "ad",
		Short: "Print the stored ad payload",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(*configPath, func(ctx context.Context, repo repository.Repository) error {
				ad := repo.LoadAd(ctx)

				if jsonOutput {
					data, _ := json.MarshalIndent(ad, "", "  ")
					fmt.Fprintln(cmd.OutOrStdout(), string(data))
					return nil
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintf(tw, "KIND\t%s\n", ad.Kind())
				fmt.Fprintf(tw, "TEXT\t%s\n", ad.Text)
				fmt.Fprintf(tw, "PHOTO\t%s\n", ad.PhotoRef)
				fmt.Fprintf(tw, "VIDEO\t%s\n", ad.VideoRef)
				return tw.Flush()
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}
