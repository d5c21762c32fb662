package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/krishvsoni/suno/internal/logging"
	"github.com/krishvsoni/suno/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "suno",
	Short: "Suno music search and play proxy",
	Long: `Suno API - A thin music search and play proxy

The server relays album searches to a music catalog API and resolves a
song into a playable YouTube video. A terminal client searches as you type
and opens the chosen track in the browser.

Features:
  • Album search via the catalog search API
  • Song to video resolution via the YouTube Data API
  • Optional response caching (in-memory or Redis)
  • Interactive terminal client with debounced search`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
	rootCmd.PersistentFlags().String("config", config.DefaultConfigPath, "path to the settings file")
}

// loadConfig loads the configuration when a command needs it.
// version and help never call it.
func loadConfig(cmd *cobra.Command, opts ...config.Option) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	if err := config.Init(path, opts...); err != nil {
		return nil, fmt.Errorf("error initializing config: %w", err)
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// logOptions merges the logging flags over the configured defaults
func logOptions(cmd *cobra.Command, cfg *config.Config) logging.Options {
	opts := logging.Options{
		Level: cfg.Logging.Level,
		JSON:  cfg.Logging.Format == "json",
	}

	if flag := cmd.Flags().Lookup("log-level"); flag != nil && flag.Changed {
		opts.Level = flag.Value.String()
	}
	if jsonLogs, _ := cmd.Flags().GetBool("json-logs"); jsonLogs {
		opts.JSON = true
	}
	return opts
}

// newLogger builds the stderr logger and makes it the package default
func newLogger(cmd *cobra.Command, cfg *config.Config) *log.Logger {
	logger := logging.New(cmd.ErrOrStderr(), logOptions(cmd, cfg))
	log.SetDefault(logger)
	return logger
}
