package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"plancheck-hq/plancheck/pkg/checklist"
	"plancheck-hq/plancheck/pkg/cli"
	"plancheck-hq/plancheck/pkg/config"
	"plancheck-hq/plancheck/pkg/extract"
	"plancheck-hq/plancheck/pkg/providers"
	"plancheck-hq/plancheck/pkg/providers/openai"
	"plancheck-hq/plancheck/pkg/server"
	"plancheck-hq/plancheck/pkg/telemetry/logging"
	"plancheck-hq/plancheck/pkg/telemetry/metrics"
)

var runFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the plancheck server",
	Long: `Start the plancheck server with the specified configuration.

The server listens on the configured address and serves the compliance
screening API: plan analysis, AI chat, health, and metrics endpoints.

Examples:
  # Start with default config
  plancheck run

  # Start with custom config
  plancheck run --config /etc/plancheck/config.yaml

  # Override listen address
  plancheck run --listen 0.0.0.0:8080

  # Validate config without starting server
  plancheck run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting server")
}

func runServer(cmd *cobra.Command, args []string) error {
	// Load configuration
	if err := config.Initialize(cfgFile); err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	cfg := config.GetConfig()

	// Apply flag overrides
	if runFlags.listenAddress != "" {
		cfg.Server.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	// Initialize logging based on config
	logger, err := logging.Setup(cfg.Telemetry.Logging)
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}
	slog.SetDefault(logger)

	if runFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	fmt.Printf("Plancheck v%s\n", Version)
	fmt.Printf("Loading configuration from: %s\n", cfgFile)
	fmt.Println("✓ Configuration loaded")

	// Load the active checklist
	store, watcher, err := buildChecklistStore(cfg)
	if err != nil {
		return cli.NewConfigError("checklist", err.Error())
	}

	// Cancelled on SIGINT/SIGTERM; stops the watcher, the health probes,
	// and the server together.
	ctx, stop := cli.SetupSignalHandler()
	defer stop()

	if watcher != nil {
		go func() {
			if err := watcher.Watch(ctx); err != nil {
				slog.Warn("checklist watcher stopped", "error", err)
			}
		}()
		slog.Info("checklist hot reload enabled", "path", cfg.Checklist.FilePath)
	}
	fmt.Printf("✓ Checklist loaded (%s, %d rules)\n", store.Active().Version(), store.Active().Len())

	// Create provider manager
	slog.Info("initializing provider manager")
	manager := providers.NewManager()
	defer manager.Close()

	// Sorted so the chat provider choice is stable across restarts.
	names := make([]string, 0, len(cfg.Providers))
	for name := range cfg.Providers {
		names = append(names, name)
	}
	sort.Strings(names)

	chatProvider := ""
	for _, name := range names {
		providerCfg := cfg.Providers[name]
		pc := providers.ProviderConfig{
			Name:       name,
			BaseURL:    providerCfg.BaseURL,
			APIKey:     os.Getenv(providerCfg.APIKeyEnv),
			Model:      providerCfg.Model,
			Timeout:    providerCfg.Timeout,
			MaxRetries: providerCfg.MaxRetries,
		}

		provider, err := openai.NewProvider(pc)
		if err != nil {
			slog.Warn("provider failed to initialize", "provider", name, "error", err)
			continue
		}
		if err := manager.Register(provider, providerCfg.HealthSchedule); err != nil {
			slog.Warn("provider failed to register", "provider", name, "error", err)
			continue
		}
		if chatProvider == "" {
			chatProvider = name
		}
	}
	if manager.ProviderCount() == 0 {
		slog.Warn("no providers configured, chat endpoint degraded")
	}
	manager.Start(ctx)

	fmt.Printf("✓ Providers initialized (%d providers)\n", manager.ProviderCount())

	// Metrics collector (nil disables the endpoint)
	var collector *metrics.Collector
	if cfg.Telemetry.Metrics.Enabled {
		collector = metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
	}

	extractor := extract.New(cfg.Extraction.MaxPages, logger)

	// Create HTTP server
	srv := server.NewServer(cfg, store, extractor, manager, chatProvider, collector)

	fmt.Println()
	fmt.Printf("✓ Server listening on %s\n", cfg.Server.ListenAddress)
	fmt.Printf("✓ Health endpoint: http://%s/health\n", cfg.Server.ListenAddress)
	if collector != nil {
		fmt.Printf("✓ Metrics endpoint: http://%s%s\n", cfg.Server.ListenAddress, cfg.Telemetry.Metrics.Path)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	// Start blocks until a shutdown signal, context cancellation, or a
	// listener error.
	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("run", err)
	}

	fmt.Println("✓ Server stopped")
	return nil
}

// buildChecklistStore loads the configured checklist (or the built-in Dubai
// Building Code 2021 registry) and optionally wires a hot-reload watcher.
func buildChecklistStore(cfg *config.Config) (*checklist.Store, *checklist.Watcher, error) {
	var reg *checklist.Registry
	if cfg.Checklist.FilePath != "" {
		loaded, err := checklist.LoadFile(cfg.Checklist.FilePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load checklist %s: %w", cfg.Checklist.FilePath, err)
		}
		reg = loaded
	} else {
		reg = checklist.DefaultRegistry()
	}

	store := checklist.NewStore(reg)

	if !cfg.Checklist.Watch || cfg.Checklist.FilePath == "" {
		return store, nil, nil
	}

	watcher, err := checklist.NewWatcher(checklist.WatcherConfig{
		Path:             cfg.Checklist.FilePath,
		DebounceInterval: cfg.Checklist.DebounceInterval,
	}, store, slog.Default())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create checklist watcher: %w", err)
	}
	return store, watcher, nil
}
