package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/krishvsoni/suno/internal/logging"
	"github.com/krishvsoni/suno/internal/player"
	"github.com/krishvsoni/suno/internal/ui"
	"github.com/krishvsoni/suno/pkg/config"
)

var apiURL string

// tuiCmd represents the terminal client
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Search and play music from the terminal",
	Long: `Start the interactive terminal client against a running Suno API.

Results refresh while you type. Press enter on a result to look up its
video and ctrl+o to open the track in your browser.

Example:
  suno tui
  suno tui --api-url http://localhost:3000`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().StringVar(&apiURL, "api-url", "", "Suno API base URL (overrides config)")
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Upstream keys belong to the server, not the terminal client
	cfg, err := loadConfig(cmd, config.WithoutCredentials())
	if err != nil {
		return err
	}

	// The screen belongs to bubbletea, so logs go to a file
	logger, closer, err := logging.NewFile(cfg.Logging.FilePath, logOptions(cmd, cfg))
	if err != nil {
		return err
	}
	defer closer.Close()

	baseURL := apiURL
	if baseURL == "" {
		baseURL = cfg.Client.APIURL
	}
	logger.Info("Starting terminal client", "api", baseURL, "debounce", cfg.Client.Debounce)

	updates := make(chan player.Snapshot, 1)
	ctrl := player.NewController(
		player.NewAPIClient(baseURL, cfg.Client.Timeout),
		player.WithDebounce(cfg.Client.Debounce),
		player.WithLogger(logger),
		player.WithOnChange(ui.Forward(updates)),
	)
	defer ctrl.Close()

	program := tea.NewProgram(ui.NewModel(ctrl, updates), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := program.Run(); err != nil {
		logger.Error("Terminal client failed", "err", err)
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
