package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yassjustice/resumeBuilder-sub001/internal/config"
	"github.com/yassjustice/resumeBuilder-sub001/internal/server"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start the HTTP server exposing CV/theme CRUD, PDF rendering and AI endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfig)
	if err != nil {
		return err
	}
	cfg.FillFromEnv()
	if cfg.Port == 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	srv, err := server.New(context.Background(), server.Config{
		Port:                cfg.Port,
		DatabaseURL:         cfg.DatabaseURL,
		GeminiAPIKey:        cfg.GeminiAPIKey,
		AIRequestsPerMinute: cfg.AIRequestsPerMinute,
		Verbose:             cfg.Verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
