package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/krishvsoni/suno/api"
	"github.com/krishvsoni/suno/api/types"
	"github.com/krishvsoni/suno/internal/services/cache"
	"github.com/krishvsoni/suno/internal/services/catalog"
	"github.com/krishvsoni/suno/internal/services/music"
	"github.com/krishvsoni/suno/internal/services/video"
	"github.com/krishvsoni/suno/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Suno API server with the configured settings.

The server answers album searches and song play lookups by relaying them
to the catalog and video APIs.

Example:
  suno serve
  suno serve --port 9090
  suno serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)

	// Use config values if flags not provided
	host, port := serverHost, serverPort
	if host == "" {
		host = cfg.Server.Host
	}
	if port == 0 {
		port = cfg.Server.Port
	}
	addr := fmt.Sprintf("%s:%d", host, port)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, cleanup, err := buildDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := api.NewServer(addr, cfg)
	srv.SetDependencies(deps)
	if err := srv.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting Suno API server", "addr", addr, "environment", cfg.Environment)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		shutdownTimeout := cfg.Server.ShutdownTimeout
		if shutdownTimeout <= 0 {
			shutdownTimeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", "err", err)
		return err
	}

	logger.Info("Server gracefully stopped")
	return nil
}

// buildDependencies wires the upstream clients, the music service and the
// optional response cache. cleanup releases whatever was opened.
func buildDependencies(ctx context.Context, cfg *config.Config, logger *log.Logger) (*types.Dependencies, func(), error) {
	catalogClient := catalog.NewClient(catalog.Config{
		APIKey:  cfg.CatalogKey(),
		BaseURL: cfg.Catalog.BaseURL,
		Host:    cfg.Catalog.Host,
		Timeout: cfg.Catalog.Timeout,
	})

	videoClient, err := video.NewClient(ctx, video.Config{
		APIKey:  cfg.VideoKey(),
		BaseURL: cfg.Video.BaseURL,
		Timeout: cfg.Video.Timeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create video client: %w", err)
	}

	deps := &types.Dependencies{
		Music:  music.NewService(catalogClient, videoClient, logger),
		Logger: logger,
		Build: types.BuildInfo{
			Version:   Version,
			GitCommit: GitCommit,
			BuildTime: BuildTime,
			GoVersion: GoVersion,
		},
		Upstreams: map[string]bool{
			"catalog": cfg.CatalogKey() != "",
			"video":   cfg.VideoKey() != "",
		},
	}

	cleanup := func() {}
	if !cfg.Cache.Enabled {
		return deps, cleanup, nil
	}

	switch cfg.Cache.Backend {
	case "redis":
		store, err := cache.NewRedis(cfg.Cache.RedisURL, cfg.Cache.KeyPrefix, cfg.Cache.DefaultTTL, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid redis url: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			// Misses are served from upstream while redis is down
			logger.Warn("Redis is unreachable, responses will not be cached until it recovers", "err", err)
		}
		deps.Cache = store
		cleanup = func() {
			if err := store.Close(); err != nil {
				logger.Warn("Failed to close redis client", "err", err)
			}
		}
	default:
		deps.Cache = cache.NewMemory(cfg.Cache.MaxSizeMB, cfg.Cache.DefaultTTL)
	}

	logger.Info("Response cache enabled", "backend", cfg.Cache.Backend)
	return deps, cleanup, nil
}
