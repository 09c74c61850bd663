package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"gemshub/internal/eventbus"
)

const (
	// DefaultBaseURL is the public Gems Hub site
	DefaultBaseURL = "https://preciousstone.info"
	// DefaultCatalogPath serves the searchable gem list
	DefaultCatalogPath = "/api/v1/gems-list"
	// DefaultAppName selects the key from an app:key mapping
	DefaultAppName = "gems_hub"

	defaultTimeoutSeconds   = 10
	defaultBreakpoint       = 100 // terminal columns
	defaultResizeSettleMsec = 250
)

// ErrConfigNotFound is returned when an explicit config path does not exist
var ErrConfigNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version        int        `toml:"version"`
	BaseURL        string     `toml:"base_url"`
	CatalogPath    string     `toml:"catalog_path"`
	APIKey         string     `toml:"api_key,omitempty"`
	AppName        string     `toml:"app_name"`
	TimeoutSeconds int        `toml:"timeout_seconds"`
	UISettings     UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	NarrowBreakpoint int  `toml:"narrow_breakpoint"` // widths at or below this are "narrow"
	ResizeSettleMsec int  `toml:"resize_settle_ms"`
	Mouse            bool `toml:"mouse"`
	Animations       bool `toml:"animations"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// Dir returns the gemshub config directory, falling back to ~/.config
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "gemshub")
}

// NewConfigService creates a config service for the given path; empty means DefaultPath
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning defaults when the file is absent
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so omitted keys keep sane values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// api_key may be present, keep the file private
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:        1,
		BaseURL:        DefaultBaseURL,
		CatalogPath:    DefaultCatalogPath,
		AppName:        DefaultAppName,
		TimeoutSeconds: defaultTimeoutSeconds,
		UISettings: UISettings{
			NarrowBreakpoint: defaultBreakpoint,
			ResizeSettleMsec: defaultResizeSettleMsec,
			Mouse:            true,
			Animations:       true,
		},
	}
}

// Validate checks that the URL settings can form a request
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base_url %q: scheme must be http or https", c.BaseURL)
	}
	if !strings.HasPrefix(c.CatalogPath, "/") {
		return fmt.Errorf("invalid catalog_path %q: must start with /", c.CatalogPath)
	}
	return nil
}

// ApplyEnv overrides settings from the environment
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("GEMSHUB_BASE_URL"); ok && strings.TrimSpace(v) != "" {
		c.BaseURL = strings.TrimSpace(v)
	}
}

// CatalogURL is the absolute catalog endpoint
func (c *Config) CatalogURL() string {
	return strings.TrimRight(c.BaseURL, "/") + c.CatalogPath
}

// HealthURL is the absolute health endpoint
func (c *Config) HealthURL() string {
	return strings.TrimRight(c.BaseURL, "/") + "/health"
}

// SiteURL joins a site-relative link onto the base URL
func (c *Config) SiteURL(link string) string {
	return strings.TrimRight(c.BaseURL, "/") + link
}

// Timeout is the per-request deadline for catalog calls
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ResizeSettle is the quiet period before a resize is acted on
func (u UISettings) ResizeSettle() time.Duration {
	if u.ResizeSettleMsec <= 0 {
		return defaultResizeSettleMsec * time.Millisecond
	}
	return time.Duration(u.ResizeSettleMsec) * time.Millisecond
}

// Breakpoint returns the narrow/wide threshold in columns
func (u UISettings) Breakpoint() int {
	if u.NarrowBreakpoint <= 0 {
		return defaultBreakpoint
	}
	return u.NarrowBreakpoint
}
