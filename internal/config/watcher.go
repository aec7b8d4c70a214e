package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"resumelens/internal/errors"
)

// Watcher watches the loaded config file for changes so serve mode can
// pick up ATS weight and threshold tuning without a restart.
type Watcher struct {
	mu sync.RWMutex

	configFile  string
	lastModTime time.Time

	fsWatcher     *fsnotify.Watcher
	debounceDelay time.Duration
	debounceTimer *time.Timer

	stopChan   chan struct{}
	reloadChan chan struct{}

	reloadCallback func(*Config)
	logger         *errors.Logger

	running bool
}

// NewWatcher creates a watcher for the given config file. The callback
// receives the freshly loaded configuration after each successful reload.
func NewWatcher(configFile string, debounceDelay time.Duration, reloadCallback func(*Config), logger *errors.Logger) (*Watcher, error) {
	if configFile == "" {
		return nil, fmt.Errorf("config file path is required for watching")
	}
	if debounceDelay == 0 {
		debounceDelay = time.Second // Default 1 second debounce
	}

	return &Watcher{
		configFile:     configFile,
		debounceDelay:  debounceDelay,
		stopChan:       make(chan struct{}),
		reloadChan:     make(chan struct{}, 1), // Buffered to prevent blocking
		reloadCallback: reloadCallback,
		logger:         logger,
	}, nil
}

// Start begins watching the config file for changes
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return fmt.Errorf("config watcher is already running")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	w.fsWatcher = watcher

	if stat, err := os.Stat(w.configFile); err == nil {
		w.lastModTime = stat.ModTime()
	}

	if err := w.addConfigToWatcher(); err != nil {
		if closeErr := w.fsWatcher.Close(); closeErr != nil && w.logger != nil {
			w.logger.LogError(closeErr, "Failed to close file watcher during cleanup")
		}
		return err
	}

	w.running = true
	go w.watchLoop()

	if w.logger != nil {
		w.logger.Info("Config file watcher started",
			"file", w.configFile,
			"debounce_delay", w.debounceDelay)
	}
	return nil
}

// Stop stops the config file watcher
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	close(w.stopChan)

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	if w.fsWatcher != nil {
		if err := w.fsWatcher.Close(); err != nil {
			if w.logger != nil {
				w.logger.LogError(err, "Failed to close file system watcher")
			}
			return err
		}
	}

	w.running = false

	if w.logger != nil {
		w.logger.Info("Config file watcher stopped")
	}

	return nil
}

// addConfigToWatcher watches the config file and its directory. Watching the
// directory catches atomic writes (rename operations) used by most editors.
func (w *Watcher) addConfigToWatcher() error {
	if err := w.fsWatcher.Add(w.configFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to watch file %s: %w", w.configFile, err)
	}

	dir := filepath.Dir(w.configFile)
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	return nil
}

// hasFileChanged checks if the config file has been modified since last check
func (w *Watcher) hasFileChanged() bool {
	stat, err := os.Stat(w.configFile)
	if err != nil {
		return false
	}

	if stat.ModTime().After(w.lastModTime) {
		w.lastModTime = stat.ModTime()
		return true
	}

	return false
}

// watchLoop is the main event loop for file watching
func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			if w.shouldProcessEvent(event) {
				w.scheduleReload()
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.LogError(err, "File watcher error")
			}

		case <-w.reloadChan:
			// Debounced reload trigger
			if w.hasFileChanged() {
				w.reload()
			}

		case <-w.stopChan:
			return
		}
	}
}

// reload re-reads the configuration and hands it to the callback. A config
// file that fails to load or validate keeps the previous configuration.
func (w *Watcher) reload() {
	if w.logger != nil {
		w.logger.Info("Config file changed, reloading", "file", w.configFile)
	}

	cfg, err := LoadConfig()
	if err != nil {
		if w.logger != nil {
			w.logger.LogError(err, "Config reload failed, keeping previous configuration", "file", w.configFile)
		}
		return
	}

	if w.reloadCallback != nil {
		w.reloadCallback(cfg)
	}
}

// shouldProcessEvent determines if a file system event should trigger a reload check
func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Name != w.configFile && filepath.Base(event.Name) != filepath.Base(w.configFile) {
		return false
	}

	// Process write, create, and rename events
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// scheduleReload schedules a debounced reload
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	// Reset the debounce timer
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.debounceDelay, func() {
		select {
		case w.reloadChan <- struct{}{}:
			// Reload scheduled
		default:
			// Channel is full, reload already scheduled
		}
	})
}

// IsRunning returns whether the watcher is currently running
func (w *Watcher) IsRunning() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}
