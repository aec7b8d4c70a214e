package cli

import (
	"fmt"

	"resumelens/internal/config"
	"resumelens/internal/server"
	"resumelens/internal/storage"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server for the resume pipeline",
	Long: `Start an HTTP server that provides REST API endpoints for the resume pipeline.

Available endpoints:
- POST /parse: Parse resume text into a structured document
- POST /score: Score a resume against a job description
- POST /tailor: Tailor a resume with AI, then re-parse and re-score it
- POST /upload: Upload a PDF/DOCX/text resume and create a session
- POST /render: Render a resume as HTML, PDF, or DOCX
- GET /session/{id}: Fetch a stored session
- GET /health: Health check endpoint
- GET /stats: Server statistics and rate limiting info

TLS Configuration:
- Use --tls-mode to set TLS mode: disabled, server
- Use --cert-file and --key-file for TLS certificates`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (default from config)")
	serveCmd.Flags().String("host", "", "Host to bind to (default from config)")
	serveCmd.Flags().String("tls-mode", "", "TLS mode: disabled, server (overrides config)")
	serveCmd.Flags().String("cert-file", "", "Server certificate file (PEM, overrides config)")
	serveCmd.Flags().String("key-file", "", "Server private key file (PEM, overrides config)")
	serveCmd.Flags().String("storage-driver", "", "Session storage driver: memory, postgres (overrides config)")
	serveCmd.Flags().Bool("watch-config", false, "Reload configuration when the config file changes")

	// Bind flags to viper config keys
	bindFlag := func(key, flagName string) {
		if err := viper.BindPFlag(key, serveCmd.Flags().Lookup(flagName)); err != nil {
			panic(err)
		}
	}

	bindFlag("server.port", "port")
	bindFlag("server.host", "host")
	bindFlag("server.tls.mode", "tls-mode")
	bindFlag("server.tls.certfile", "cert-file")
	bindFlag("server.tls.keyfile", "key-file")
	bindFlag("storage.driver", "storage-driver")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	// Validate TLS configuration after applying overrides
	tempConfig := &config.Config{Server: cfg.Server}
	if err := tempConfig.ValidateTLSConfig(); err != nil {
		return fmt.Errorf("invalid TLS configuration: %w", err)
	}

	store, err := storage.NewStore(cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize session storage: %w", err)
	}

	serverCfg := server.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		Version:        Version,
		TLSConfig:      cfg.Server.TLS,
		APIKeys:        cfg.Server.APIKeys,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxRequestSize: int64(cfg.App.MaxFileSize),
		RateLimit:      &cfg.Server.RateLimit,
	}
	srv := server.NewServer(cfg, serverCfg, store, logger)

	watchConfig, _ := cmd.Flags().GetBool("watch-config")
	if watchConfig {
		if cfg.SourceFile() == "" {
			logger.Warn("No config file in use, --watch-config has no effect")
		} else {
			watcher, err := config.NewWatcher(cfg.SourceFile(), 0, srv.ReloadConfig, logger)
			if err != nil {
				return fmt.Errorf("failed to create config watcher: %w", err)
			}
			srv.ConfigWatcher = watcher
		}
	}

	return srv.Start()
}
