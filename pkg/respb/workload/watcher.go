package workload

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher watches a JSON-encoded Config file on disk and reloads it
// whenever it changes, so a long-running benchmark can have its command
// mix or sizing adjusted without a restart.
type ConfigWatcher struct {
	path    string
	current Config
	watcher *fsnotify.Watcher
	log     *slog.Logger

	updates chan Config
}

// NewConfigWatcher loads path once and starts watching it for further
// writes. The caller must call Close when done.
func NewConfigWatcher(path string, log *slog.Logger) (*ConfigWatcher, error) {
	if log == nil {
		log = slog.Default()
	}
	cfg, err := loadConfigFile(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("workload: create fsnotify watcher: %w", err)
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, fmt.Errorf("workload: watch %s: %w", path, err)
	}

	cw := &ConfigWatcher{
		path:    path,
		current: cfg,
		watcher: w,
		log:     log,
		updates: make(chan Config, 1),
	}
	go cw.loop()
	return cw, nil
}

func (cw *ConfigWatcher) loop() {
	for {
		select {
		case ev, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := loadConfigFile(cw.path)
			if err != nil {
				cw.log.Warn("workload: config reload failed", "path", cw.path, "error", err)
				continue
			}
			cw.current = cfg
			select {
			case cw.updates <- cfg:
			default:
			}
			cw.log.Info("workload: config reloaded", "path", cw.path)

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.log.Warn("workload: fsnotify error", "error", err)
		}
	}
}

// Current returns the most recently loaded Config.
func (cw *ConfigWatcher) Current() Config { return cw.current }

// Updates delivers a Config each time the watched file is reloaded. It is
// buffered with capacity 1; when an update is already waiting, the newer
// one is dropped rather than blocking the watch loop (Current still
// reflects it).
func (cw *ConfigWatcher) Updates() <-chan Config { return cw.updates }

// Close stops watching and releases the underlying fsnotify handle.
func (cw *ConfigWatcher) Close() error {
	return cw.watcher.Close()
}

func loadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("workload: read config %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("workload: parse config %s: %w", path, err)
	}
	return cfg.withDefaults(), nil
}
