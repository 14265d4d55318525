package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/magpielabs/magpie/pkg/api"
	"github.com/magpielabs/magpie/pkg/collector"
	"github.com/magpielabs/magpie/pkg/config"
	"github.com/magpielabs/magpie/pkg/dispatcher"
	"github.com/magpielabs/magpie/pkg/log"
	"github.com/magpielabs/magpie/pkg/metrics"
	"github.com/magpielabs/magpie/pkg/sweeper"
	"github.com/spf13/cobra"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "magpie",
	Short: "Magpie - distributed OSINT collection platform",
	Long: `Magpie dispatches OSINT collection tasks across a fleet of
collectors and streams the results back to clients. One binary serves
as dispatcher, collector, or client CLI.`,
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Magpie version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(collectorCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(catalogCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logCfg := log.Config{Level: log.Level(cfg.LogLevel)}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logCfg.Output = f
		logCfg.JSONOutput = true
	}
	log.Init(logCfg)
	return cfg, nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dispatcher",
	Long: `Run the dispatcher: both gRPC listeners, the task sweeper,
and the HTTP health/metrics endpoint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		metrics.Register()

		d, err := dispatcher.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to create dispatcher: %v", err)
		}

		if err := d.Recover(); err != nil {
			return fmt.Errorf("failed to recover state: %v", err)
		}

		sw := sweeper.New(d.Tasks(), d.Bus(), d.Events(), cfg.SweeperInterval)
		sw.Start()
		fmt.Println("✓ Sweeper started")

		apiServer := api.NewServer(d)
		if err := apiServer.Start(); err != nil {
			sw.Stop()
			return fmt.Errorf("failed to start API server: %v", err)
		}
		fmt.Printf("✓ gRPC listening on %s (clients) and %s (collectors)\n",
			cfg.ClientAddr(), cfg.CollectorAddr())

		healthServer := api.NewHealthServer(d)
		go func() {
			addr := fmt.Sprintf(":%d", cfg.HealthPort)
			if err := healthServer.Start(addr); err != nil {
				fmt.Fprintf(os.Stderr, "health server error: %v\n", err)
			}
		}()
		fmt.Printf("✓ Health endpoint on :%d\n", cfg.HealthPort)

		// Keep the per-status task gauges fresh.
		gaugeStop := make(chan struct{})
		go func() {
			ticker := time.NewTicker(cfg.SweeperInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					d.UpdateTaskGauges()
				case <-gaugeStop:
					return
				}
			}
		}()

		fmt.Println()
		fmt.Println("Dispatcher is running. Press Ctrl+C to stop.")

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down...")

		close(gaugeStop)
		apiServer.Stop()
		sw.Stop()
		if err := d.Shutdown(); err != nil {
			return fmt.Errorf("failed to shutdown: %v", err)
		}

		fmt.Println("✓ Shutdown complete")
		return nil
	},
}

var collectorCmd = &cobra.Command{
	Use:   "collector",
	Short: "Run a collector worker",
	Long: `Run a collector: register with the dispatcher, heartbeat, and
collect sources for streamed assignments until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		secret, _ := cmd.Flags().GetString("secret")
		if name == "" || secret == "" {
			return fmt.Errorf("--name and --secret are required")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		c, err := collector.New(cfg, name, secret)
		if err != nil {
			return fmt.Errorf("failed to create collector: %v", err)
		}
		defer c.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Collector %q running against %s. Press Ctrl+C to stop.\n", name, cfg.CollectorAddr())
		if err := c.Run(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		fmt.Println("\n✓ Collector stopped")
		return nil
	},
}

func init() {
	collectorCmd.Flags().String("name", "", "Collector name")
	collectorCmd.Flags().String("secret", "", "Collector secret")
}
