package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/aretw0/proptree/internal/cli"
	"github.com/aretw0/proptree/internal/logging"
	"github.com/aretw0/proptree/pkg/observability"
	"github.com/aretw0/proptree/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "proptree",
	Short: "Inspect and edit property tree documents",
	Long: `proptree loads JSON or YAML property documents (following "include" directives),
prints and edits them by path, converts between formats and checkpoints them
into a document store.`,
	SilenceUsage: true,
}

// metricsRegistry collects the counters of a single invocation.
var (
	metricsRegistry = prometheus.NewRegistry()
	metrics         = observability.NewMetrics(metricsRegistry)
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	flags.Bool("no-color", false, "Disable colored output")
	flags.Bool("strict", false, "Fail on partial imports (broken includes, skipped values)")
	flags.String("store", "file", "Document store for push/pull: memory, file, redis or loam")
	flags.String("store-dir", "", "Directory of the file or loam store")
	flags.String("redis-addr", "localhost:6379", "Redis address")
	flags.Int("redis-db", 0, "Redis database")
	flags.Duration("redis-ttl", 0, "Expiration of pushed documents in Redis (0 keeps them)")
	flags.String("encrypt-key-env", "", "Environment variable holding a base64 AES-256 key used to encrypt stored documents")
	flags.StringSlice("redact", nil, "Regular expressions of keys whose values are masked before storing")

	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		reportMetrics(newLogger(cmd))
	}
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	raw, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v, using info\n", err)
	}
	return logging.New(level)
}

// newApp configures a cli.App from the persistent flags.
func newApp(cmd *cobra.Command) *cli.App {
	noColor, _ := cmd.Flags().GetBool("no-color")
	strict, _ := cmd.Flags().GetBool("strict")

	app := cli.NewApp(cmd.OutOrStdout())
	app.Logger = newLogger(cmd)
	app.Strict = strict
	app.Color = !noColor && isTerminal(cmd.OutOrStdout())
	app.Metrics = metrics
	return app
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func openStore(cmd *cobra.Command) (ports.DocumentStore, io.Closer, error) {
	var cfg cli.StoreConfig
	flags := cmd.Flags()
	cfg.Kind, _ = flags.GetString("store")
	cfg.Dir, _ = flags.GetString("store-dir")
	cfg.RedisAddr, _ = flags.GetString("redis-addr")
	cfg.RedisDB, _ = flags.GetInt("redis-db")
	cfg.RedisTTL, _ = flags.GetDuration("redis-ttl")
	cfg.Redact, _ = flags.GetStringSlice("redact")

	if env, _ := flags.GetString("encrypt-key-env"); env != "" {
		raw, ok := os.LookupEnv(env)
		if !ok {
			return nil, nil, fmt.Errorf("encryption key variable %s is not set", env)
		}
		key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(raw))
		if err != nil {
			return nil, nil, fmt.Errorf("encryption key in %s is not valid base64: %w", env, err)
		}
		cfg.EncryptionKey = key
	}
	return cli.OpenStore(cfg)
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// reportMetrics logs the non-zero counters of this run at debug level.
func reportMetrics(logger *slog.Logger) {
	families, err := metricsRegistry.Gather()
	if err != nil {
		logger.Debug("metrics unavailable", "error", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			v := m.GetCounter().GetValue()
			if v == 0 {
				continue
			}
			attrs := []any{"metric", mf.GetName(), "value", v}
			for _, l := range m.GetLabel() {
				attrs = append(attrs, l.GetName(), l.GetValue())
			}
			logger.Debug("counter", attrs...)
		}
	}
}
