package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roost-chat/roost"
	"github.com/roost-chat/roost/internal/config"
	"github.com/roost-chat/roost/internal/logging"
	redisadapter "github.com/roost-chat/roost/pkg/adapters/redis"
	"github.com/roost-chat/roost/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the interaction webhook server",
	Long:  `Starts the Roost gateway, serving platform interactions over HTTP with commands taken from the manifest.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfgPath, _ := cmd.Flags().GetString("config")
		addr, _ := cmd.Flags().GetString("addr")

		cfg, err := config.Load(cfgPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr = addr
		}

		client, err := buildClient(cfg)
		if err != nil {
			fmt.Printf("Error initializing roost: %v\n", err)
			os.Exit(1)
		}

		srv := &http.Server{
			Addr:    cfg.Server.Addr,
			Handler: client.Handler(),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Roost Gateway on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Roost Gateway stopped gracefully")
		}
	},
}

func buildClient(cfg config.Config) (*roost.Client, error) {
	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	logger := logging.New(level)
	if cfg.Log.Format == "json" {
		logger = logging.NewJSON(level)
	}

	opts := []roost.Option{roost.WithLogger(logger)}

	if cfg.Redis.Addr != "" {
		var storeOpts []redisadapter.Option
		if cfg.Redis.Prefix != "" {
			storeOpts = append(storeOpts, redisadapter.WithPrefix(cfg.Redis.Prefix))
		}
		store := redisadapter.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, storeOpts...)
		opts = append(opts, roost.WithStore(store))
	}

	if cfg.Metrics.Enabled {
		opts = append(opts, roost.WithMetrics(observability.NewMetrics(cfg.Metrics.Namespace)))
	}

	client, err := roost.New(opts...)
	if err != nil {
		return nil, err
	}

	if cfg.Manifest.Path != "" {
		// The standalone gateway registers manifest declarations without
		// handlers. Hosts embedding the library bind handlers by name.
		if err := client.LoadManifest(cfg.Manifest.Path, nil); err != nil {
			return nil, err
		}
	}

	return client, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
}
