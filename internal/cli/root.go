// Package cli contains the matchthread command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/preston-bernstein/match-thread-service/internal/config"
	"github.com/preston-bernstein/match-thread-service/internal/logging"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

const serviceName = "matchthread"

// globalOptions hold the persistent flags shared by every subcommand.
type globalOptions struct {
	provider    string
	snapshotDir string
	logLevel    string
	logFormat   string
}

// NewRootCmd builds the matchthread command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:   serviceName,
		Short: "Render post-match reddit threads for League of Legends games",
		Long: `matchthread turns a finished game's match history and timeline into the
markdown body of a post-match reddit thread.

Configuration is read from the environment (and a .env file when present);
the flags below override it for a single run.

Examples:
  matchthread render --history <url> --game <url> --timeline <url>
  matchthread render --provider fixture --history x --game x --timeline x
  matchthread snapshot capture --game <url> --timeline <url>
  matchthread snapshot list --output json`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.provider, "provider", "", "Data provider: riot | fixture | snapshot (overrides PROVIDER)")
	pf.StringVar(&opts.snapshotDir, "snapshot-dir", "", "Snapshot directory (overrides SNAPSHOT_DIR)")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level: debug | info | warn | error (overrides LOG_LEVEL)")
	pf.StringVar(&opts.logFormat, "log-format", "", "Log format: text | json (overrides LOG_FORMAT)")

	root.AddCommand(
		newRenderCmd(opts),
		newSnapshotCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command tree with ctx, printing any error to stderr.
func Execute(ctx context.Context) int {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

// loadConfig reads the environment and layers explicitly set flags on top.
func loadConfig(cmd *cobra.Command, opts *globalOptions) (config.Config, error) {
	var cfg config.Config
	if err := config.ParseEnv(&cfg); err != nil {
		return config.Config{}, err
	}

	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "provider":
			cfg.Provider = opts.provider
		case "snapshot-dir":
			cfg.Snapshots.Dir = opts.snapshotDir
		case "log-level":
			cfg.Log.Level = opts.logLevel
		case "log-format":
			cfg.Log.Format = opts.logFormat
		}
	})

	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if err := config.ValidateProvider(cfg.Provider); err != nil {
		return config.Config{}, err
	}
	// The CLI never serves a scrape endpoint.
	cfg.Metrics.Enabled = false
	return cfg, nil
}

// newLogger writes to stderr so stdout only carries command output.
func newLogger(cmd *cobra.Command, cfg config.Config) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: serviceName,
		Version: Version,
		Output:  cmd.ErrOrStderr(),
	})
}
