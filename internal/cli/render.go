package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/match-thread-service/internal/app/threads"
	"github.com/preston-bernstein/match-thread-service/internal/metrics"
	"github.com/preston-bernstein/match-thread-service/internal/report"
	"github.com/preston-bernstein/match-thread-service/internal/server"
)

func newRenderCmd(opts *globalOptions) *cobra.Command {
	var req threads.Request
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a match thread to stdout",
		Long: `Fetch the champion list, match and timeline, then print the thread markdown.

All three URLs are required. The history URL is only linked, never fetched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)
			rec := metrics.NewRecorder()

			provider, err := server.NewProvider(cfg, logger, rec)
			if err != nil {
				return err
			}
			svc := threads.NewService(report.NewAssembler(provider), logger, rec)

			thread, err := svc.Render(cmd.Context(), req)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), thread.Markdown)
			return err
		},
	}

	cmd.Flags().StringVar(&req.HistoryURL, "history", "", "Match history page URL, linked in the title")
	cmd.Flags().StringVar(&req.GameURL, "game", "", "Match details URL")
	cmd.Flags().StringVar(&req.TimelineURL, "timeline", "", "Match timeline URL")
	return cmd
}
