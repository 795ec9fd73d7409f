package livestream

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/bracketpress/bracketpress/internal/logger"
)

// Config is the shared stream state. Enabled gates the embed entirely;
// Channel accepts a bare name or a profile URL.
type Config struct {
	Channel  string `yaml:"channel" mapstructure:"channel"`
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Autoplay bool   `yaml:"autoplay" mapstructure:"autoplay"`
	Muted    bool   `yaml:"muted" mapstructure:"muted"`
}

// Embed resolves the config to a player URL. Disabled configs and
// unextractable channels both yield ok false.
func (c Config) Embed(parent string) (string, bool) {
	if !c.Enabled {
		return "", false
	}
	channel, ok := ExtractChannel(c.Channel)
	if !ok {
		return "", false
	}
	return EmbedURL(channel, parent), true
}

// Manager reads and writes the stream config file and notifies callbacks
// when it changes on disk.
type Manager struct {
	path  string
	viper *viper.Viper
	log   *logger.Logger

	mu        sync.Mutex
	config    Config
	callbacks []func(Config)
	watching  bool
}

// NewManager loads the stream config from path. A missing file starts with
// the zero config; a corrupt file is logged and treated the same way.
func NewManager(path string, log *logger.Logger) *Manager {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	m := &Manager{path: path, viper: v, log: log}

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			log.WithFields(map[string]any{"path": path}).Warn("stream config unreadable, starting empty")
		}
		return m
	}
	if err := v.Unmarshal(&m.config); err != nil {
		log.Error(err, "stream config corrupt, starting empty")
		m.config = Config{}
	}
	return m
}

// Current returns the latest loaded config.
func (m *Manager) Current() Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.config
}

// Set replaces the config in memory and persists it.
func (m *Manager) Set(cfg Config) error {
	m.mu.Lock()
	m.config = cfg
	m.mu.Unlock()
	return m.save(cfg)
}

func (m *Manager) save(cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	tmpPath := m.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, m.path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// OnChange registers a callback invoked after each observed reload.
func (m *Manager) OnChange(callback func(Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

// Watch starts observing the config file. Edits made by another process
// are reloaded and fanned out to the registered callbacks.
func (m *Manager) Watch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.watching {
		return
	}
	m.watching = true

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		m.log.WithFields(map[string]any{"op": e.Op.String(), "file": e.Name}).Debug("stream config change detected")

		m.mu.Lock()
		if err := m.viper.ReadInConfig(); err != nil {
			m.log.Warn("failed to reload stream config")
			m.mu.Unlock()
			return
		}
		var cfg Config
		if err := m.viper.Unmarshal(&cfg); err != nil {
			m.log.Warn("stream config unparseable after change, keeping previous")
			m.mu.Unlock()
			return
		}
		m.config = cfg
		callbacks := make([]func(Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.Unlock()

		for _, callback := range callbacks {
			callback(cfg)
		}
	})
	m.viper.WatchConfig()
}
