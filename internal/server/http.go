package server

import (
	"sync"
	"time"

	"resumelens/internal/ats"
	"resumelens/internal/config"
	resumelensErrors "resumelens/internal/errors"
	"resumelens/internal/storage"
)

// ParseRequest represents the request body for the parse endpoint
type ParseRequest struct {
	ResumeText string `json:"resumeText"`
}

// ScoreRequest represents the request body for the score endpoint
type ScoreRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
}

// TailorRequest represents the request body for the tailor endpoint.
// Either SessionID or ResumeText must be provided.
type TailorRequest struct {
	SessionID      string `json:"sessionId,omitempty"`
	ResumeText     string `json:"resumeText,omitempty"`
	JobDescription string `json:"jobDescription"`
}

// RenderRequest represents the request body for the render endpoint.
// Either SessionID or ResumeText must be provided.
type RenderRequest struct {
	SessionID  string `json:"sessionId,omitempty"`
	ResumeText string `json:"resumeText,omitempty"`
	Format     string `json:"format"`
	Style      string `json:"style,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration. Read through currentConfig once the
	// server is running; the config watcher replaces it from its own goroutine.
	AppConfig *config.Config

	// TLS Configuration
	TLSConfig config.TLSConfig

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Local scoring engine
	Scorer *ats.Scorer

	// Session persistence
	Store storage.Store

	// Config hot-reload (serve mode only)
	ConfigWatcher *config.Watcher

	// Logger
	Logger *resumelensErrors.Logger

	// Guards AppConfig and Scorer against reloads during request handling
	reloadMu sync.RWMutex
}

// currentConfig returns the active configuration for use in request handlers.
func (s *Server) currentConfig() *config.Config {
	s.reloadMu.RLock()
	defer s.reloadMu.RUnlock()
	return s.AppConfig
}

// currentScorer returns the active scoring engine for use in request handlers.
func (s *Server) currentScorer() *ats.Scorer {
	s.reloadMu.RLock()
	defer s.reloadMu.RUnlock()
	return s.Scorer
}

// ServerConfig holds configuration for creating a Server instance
// (Refactored to reduce long parameter list in NewServer)
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, store storage.Store, logger *resumelensErrors.Logger) *Server {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		TLSConfig:      cfg.TLSConfig,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		Scorer:         ats.NewScorer(appCfg.ATS.ScoringWeights(), appCfg.ATS.ScoringThresholds()),
		Store:          store,
		Logger:         logger,
	}
}

// ReloadConfig swaps in a freshly loaded configuration. It rebuilds the
// scorer so ATS weight/threshold edits take effect without a restart;
// server socket settings still require one.
func (s *Server) ReloadConfig(cfg *config.Config) {
	scorer := ats.NewScorer(cfg.ATS.ScoringWeights(), cfg.ATS.ScoringThresholds())

	s.reloadMu.Lock()
	s.AppConfig = cfg
	s.Scorer = scorer
	s.reloadMu.Unlock()

	s.Logger.Info("Server configuration reloaded",
		"source", cfg.SourceFile())
}
