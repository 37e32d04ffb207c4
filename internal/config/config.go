// Package config handles configuration loading and validation for folio
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iiroan/folio/internal/prefs"
	"github.com/iiroan/folio/internal/storage"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "FOLIO_CONFIG"

// Config represents the main configuration for folio
type Config struct {
	// Where preferences are persisted
	Storage StorageConfig `yaml:"storage"`

	// Storage keys and fallback values
	Preferences PreferencesConfig `yaml:"preferences"`

	// Terminal output
	UI UIConfig `yaml:"ui"`

	// Web view
	Server ServerConfig `yaml:"server"`

	// Portfolio content override
	Content ContentConfig `yaml:"content"`
}

// StorageConfig selects the preference backend
type StorageConfig struct {
	Backend string `yaml:"backend"` // file, sqlite or memory
	Path    string `yaml:"path"`
}

// PreferencesConfig holds storage keys and defaults
type PreferencesConfig struct {
	AppearanceKey     string `yaml:"appearance_key"`
	DisplayKey        string `yaml:"display_key"`
	DefaultAppearance string `yaml:"default_appearance"`
	DefaultDisplay    string `yaml:"default_display"`
}

// UIConfig holds terminal display settings
type UIConfig struct {
	Dense   bool `yaml:"dense"`
	NoColor bool `yaml:"no_color"`
}

// ServerConfig holds web view settings
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// ContentConfig points at a replacement content document
type ContentConfig struct {
	Path string `yaml:"path"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() *Config {
	keys := prefs.DefaultKeys()
	defaults := prefs.DefaultPreferences()
	return &Config{
		Storage: StorageConfig{
			Backend: storage.KindFile,
		},
		Preferences: PreferencesConfig{
			AppearanceKey:     keys.Appearance,
			DisplayKey:        keys.Display,
			DefaultAppearance: string(defaults.Appearance),
			DefaultDisplay:    string(defaults.Display),
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	backend := strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	switch backend {
	case storage.KindFile, storage.KindSQLite, storage.KindMemory:
	default:
		return fmt.Errorf("storage.backend must be one of %s, got %q", strings.Join(storage.Kinds(), ", "), c.Storage.Backend)
	}

	if strings.TrimSpace(c.Preferences.AppearanceKey) == "" {
		return fmt.Errorf("preferences.appearance_key is required")
	}
	if strings.TrimSpace(c.Preferences.DisplayKey) == "" {
		return fmt.Errorf("preferences.display_key is required")
	}
	if c.Preferences.AppearanceKey == c.Preferences.DisplayKey {
		return fmt.Errorf("preferences.appearance_key and preferences.display_key must differ")
	}
	if _, err := prefs.ParseAppearance(c.Preferences.DefaultAppearance); err != nil {
		return fmt.Errorf("preferences.default_appearance: %w", err)
	}
	if _, err := prefs.ParseDisplayMode(c.Preferences.DefaultDisplay); err != nil {
		return fmt.Errorf("preferences.default_display: %w", err)
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}

// Keys returns the configured storage keys
func (c *Config) Keys() prefs.Keys {
	return prefs.Keys{
		Appearance: strings.TrimSpace(c.Preferences.AppearanceKey),
		Display:    strings.TrimSpace(c.Preferences.DisplayKey),
	}
}

// Defaults returns the configured fallback preferences. Invalid entries fall
// back to the built-in defaults.
func (c *Config) Defaults() prefs.Preferences {
	p := prefs.DefaultPreferences()
	if a, err := prefs.ParseAppearance(c.Preferences.DefaultAppearance); err == nil {
		p.Appearance = a
	}
	if d, err := prefs.ParseDisplayMode(c.Preferences.DefaultDisplay); err == nil {
		p.Display = d
	}
	return p
}

// StoragePath returns the backend path, defaulting to a file next to the config.
func (c *Config) StoragePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	switch strings.ToLower(strings.TrimSpace(c.Storage.Backend)) {
	case storage.KindSQLite:
		return filepath.Join(dir, "preferences.db"), nil
	default:
		return filepath.Join(dir, "preferences.yaml"), nil
	}
}

// Dir returns folio's directory under the user config dir
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(base, "folio"), nil
}

// GetConfigPath returns the path to folio.yaml
func GetConfigPath() (string, error) {
	if path := strings.TrimSpace(os.Getenv(EnvConfigPath)); path != "" {
		return path, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "folio.yaml"), nil
}

// LoadDefault loads configuration from the default location
func LoadDefault() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}
