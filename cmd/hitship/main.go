// Command hitship records analytics hits and ships them to a collector
// from the command line, either one-shot (pageview, event) or by watching
// a spool directory for hit files (watch).
package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/hitship"
	"github.com/bft-labs/hitship/internal/cliconfig"
	"github.com/bft-labs/hitship/internal/spool"
	"github.com/bft-labs/hitship/pkg/log"
)

const longHelp = `Ship tracking hits to a Measurement-Protocol-style collector.

Hits are queued in memory and sent in one or many HTTP POSTs depending on
the batching settings. Configure via ~/.hitship/config.toml, HITSHIP_*
environment variables, or flags (flags win).`

var exampleUsage = strings.TrimSpace(`
  hitship pageview --tracking-id UA-000000-1 --path /home --title Home
  hitship event --category video --action play --label intro
  hitship watch --spool-dir /var/spool/hitship --batching
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "hitship",
		Short:         "Ship tracking hits to an analytics collector",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default ~/.hitship/config.toml)")
	root.PersistentFlags().StringVar(&cfg.TrackingID, "tracking-id", cfg.TrackingID, "collector property id (tid)")
	root.PersistentFlags().StringVar(&cfg.ClientID, "client-id", cfg.ClientID, "client id (cid); generated when empty")
	root.PersistentFlags().StringVar(&cfg.UserID, "user-id", cfg.UserID, "known-user id (uid)")
	root.PersistentFlags().StringVar(&cfg.Hostname, "hostname", cfg.Hostname, "collector hostname")
	root.PersistentFlags().StringVar(&cfg.HitPath, "hit-path", cfg.HitPath, "single-hit endpoint path")
	root.PersistentFlags().StringVar(&cfg.BatchPath, "batch-path", cfg.BatchPath, "batch endpoint path")
	root.PersistentFlags().BoolVar(&cfg.Insecure, "insecure", cfg.Insecure, "use plain HTTP instead of HTTPS")
	root.PersistentFlags().BoolVar(&cfg.EnableBatching, "batching", cfg.EnableBatching, "group hits into batch requests")
	root.PersistentFlags().IntVar(&cfg.BatchSize, "batch-size", cfg.BatchSize, "maximum hits per batch request")
	root.PersistentFlags().DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "per-request HTTP timeout")
	root.PersistentFlags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable diagnostic output")

	root.AddCommand(newPageviewCmd(&cfg, &cfgPath))
	root.AddCommand(newEventCmd(&cfg, &cfgPath))
	root.AddCommand(newWatchCmd(&cfg, &cfgPath))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig merges the config file and environment into cfg, honoring
// flags the user set explicitly.
func loadConfig(cmd *cobra.Command, cfg *cliconfig.Config, cfgPath string) error {
	changed := map[string]bool{}
	visit := func(f *pflag.Flag) { changed[f.Name] = true }
	cmd.Flags().Visit(visit)
	cmd.InheritedFlags().Visit(visit)

	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}

	return cfg.Validate()
}

// newVisitor builds a Visitor from the merged CLI configuration.
func newVisitor(cfg *cliconfig.Config, logger log.Logger) (*hitship.Visitor, error) {
	opts := []hitship.Option{hitship.WithLogger(logger)}
	if cfg.Debug {
		opts = append(opts, hitship.WithDebug())
	}
	return hitship.New(cfg.Visitor(), opts...)
}

// parseParams turns repeated key=value flags into a parameter map.
func parseParams(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid param %q, want key=value", p)
		}
		out[k] = v
	}
	return out, nil
}

func newPageviewCmd(cfg *cliconfig.Config, cfgPath *string) *cobra.Command {
	var (
		path     string
		docHost  string
		title    string
		rawParam []string
	)

	cmd := &cobra.Command{
		Use:   "pageview",
		Short: "Record and send a single pageview hit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, cfg, *cfgPath); err != nil {
				return err
			}
			logger := log.NewZerologAdapter()
			v, err := newVisitor(cfg, logger)
			if err != nil {
				return err
			}

			extra, err := parseParams(rawParam)
			if err != nil {
				return err
			}
			if err := v.Pageview(hitship.Pageview{
				Path:     path,
				Hostname: docHost,
				Title:    title,
				Params:   extra,
			}); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			res, err := v.Send(ctx)
			if err != nil {
				return fmt.Errorf("sent %d unit(s): %w", res.Attempted, err)
			}
			logger.Info("pageview sent", log.Int("units", res.Attempted))
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "document path (required)")
	cmd.Flags().StringVar(&docHost, "document-hostname", "", "document hostname")
	cmd.Flags().StringVar(&title, "title", "", "document title")
	cmd.Flags().StringArrayVar(&rawParam, "param", nil, "extra parameter (key=value, repeatable)")
	return cmd
}

func newEventCmd(cfg *cliconfig.Config, cfgPath *string) *cobra.Command {
	var (
		category string
		action   string
		label    string
		value    int
		rawParam []string
	)

	cmd := &cobra.Command{
		Use:   "event",
		Short: "Record and send a single event hit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, cfg, *cfgPath); err != nil {
				return err
			}
			logger := log.NewZerologAdapter()
			v, err := newVisitor(cfg, logger)
			if err != nil {
				return err
			}

			extra, err := parseParams(rawParam)
			if err != nil {
				return err
			}
			if err := v.Event(hitship.Event{
				Category: category,
				Action:   action,
				Label:    label,
				Value:    value,
				Params:   extra,
			}); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			res, err := v.Send(ctx)
			if err != nil {
				return fmt.Errorf("sent %d unit(s): %w", res.Attempted, err)
			}
			logger.Info("event sent", log.Int("units", res.Attempted))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "event category (required)")
	cmd.Flags().StringVar(&action, "action", "", "event action (required)")
	cmd.Flags().StringVar(&label, "label", "", "event label")
	cmd.Flags().IntVar(&value, "value", 0, "event value")
	cmd.Flags().StringArrayVar(&rawParam, "param", nil, "extra parameter (key=value, repeatable)")
	return cmd
}

func newWatchCmd(cfg *cliconfig.Config, cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch a spool directory and ship hit files as they appear",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, cfg, *cfgPath); err != nil {
				return err
			}
			if cfg.SpoolDir == "" {
				return fmt.Errorf("spool-dir is required")
			}

			logger := log.NewZerologAdapter()
			v, err := newVisitor(cfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return spool.New(cfg.SpoolDir, v, logger).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&cfg.SpoolDir, "spool-dir", cfg.SpoolDir, "directory to watch for hit files")
	return cmd
}
