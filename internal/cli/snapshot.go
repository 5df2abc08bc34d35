package cli

import (
	"github.com/spf13/cobra"

	"github.com/preston-bernstein/match-thread-service/internal/server"
	"github.com/preston-bernstein/match-thread-service/internal/snapshots"
)

func newSnapshotCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Record and inspect payloads for offline rendering",
		Long: `Snapshots hold raw match, timeline and champion payloads on disk so threads can be
rendered later with --provider snapshot, without network access.`,
	}
	cmd.AddCommand(newSnapshotCaptureCmd(opts), newSnapshotListCmd(opts))
	return cmd
}

func newSnapshotCaptureCmd(opts *globalOptions) *cobra.Command {
	var gameURL, timelineURL string
	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Download a game's payloads into the snapshot directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)

			capturer := snapshots.NewCapturer(
				server.NewRiotClient(cfg),
				server.NewDataDragonClient(cfg),
				snapshots.NewWriter(cfg.Snapshots.Dir),
				logger,
			)
			entry, err := capturer.Capture(cmd.Context(), gameURL, timelineURL)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), formatYAML, entry)
		},
	}
	cmd.Flags().StringVar(&gameURL, "game", "", "Match details URL")
	cmd.Flags().StringVar(&timelineURL, "timeline", "", "Match timeline URL")
	_ = cmd.MarkFlagRequired("game")
	_ = cmd.MarkFlagRequired("timeline")
	return cmd
}

func newSnapshotListCmd(opts *globalOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the snapshot manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			manifest, err := snapshots.ReadManifest(cfg.Snapshots.Dir)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), format, manifest)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", formatYAML, "Output format: yaml | json")
	return cmd
}
