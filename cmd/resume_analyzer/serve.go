package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the analysis endpoints. Set DATABASE_URL to keep analysis history and GEMINI_API_KEY for semantic scoring and profile extraction.`,
	RunE:  runServe,
}

var (
	servePort       int
	serveConfigPath string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	embedder, closeEmbedder, err := buildEmbedder(ctx, cfg)
	if err != nil {
		return err
	}
	if closeEmbedder != nil {
		defer closeEmbedder()
	}
	if cfg.APIKey == "" {
		log.Warn("no API key configured; using local term-frequency similarity")
	}

	engine, err := buildAnalyzer(cfg, embedder)
	if err != nil {
		return err
	}

	srvCfg := server.Config{
		Port:     cfg.Port,
		Analyzer: engine,
		Logger:   log,
	}

	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(ctx, cfg.APIKey, "")
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		srvCfg.LLMClient = client
	}

	if cfg.DatabaseURL != "" {
		store, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := store.Migrate(ctx); err != nil {
			return err
		}
		srvCfg.Store = store
		log.Info("analysis history enabled")
	} else {
		log.Info("DATABASE_URL not set; analysis history disabled")
	}

	srv, err := server.New(srvCfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
