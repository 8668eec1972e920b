package config

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config represents the resolved ntfy client configuration.
type Config struct {
	BaseURL string `env:"NTFY_URL"`
	Topic   string `env:"NTFY_TOPIC"`
	Method  string `env:"NTFY_METHOD"`
}

// Keys accepted by SetKey and Get.
const (
	KeyURL    = "url"
	KeyTopic  = "topic"
	KeyMethod = "method"
)

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		BaseURL: "https://ntfy.sh",
		Topic:   "general",
		Method:  http.MethodPost,
	}
}

// ConfigDir returns the platform-appropriate config directory for ntfy.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ntfy"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "ntfy"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "ntfy"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "ntfy"), nil
	default:
		return filepath.Join(home, ".config", "ntfy"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	values, err := godotenv.UnmarshalBytes(data)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return Config{
		BaseURL: values["NTFY_URL"],
		Topic:   values["NTFY_TOPIC"],
		Method:  values["NTFY_METHOD"],
	}, nil
}

// Save writes the config to the config file as KEY=VALUE assignments.
// Unset fields are omitted so later default changes still apply.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	values := make(map[string]string, 3)
	if cfg.BaseURL != "" {
		values["NTFY_URL"] = cfg.BaseURL
	}
	if cfg.Topic != "" {
		values["NTFY_TOPIC"] = cfg.Topic
	}
	if cfg.Method != "" {
		values["NTFY_METHOD"] = cfg.Method
	}
	if err := godotenv.Write(values, path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Load builds the effective config by layering, highest precedence first:
// CLI overrides, environment, config file, built-in defaults. Each merge
// fills only the fields still unset by a higher layer.
func Load(overrides map[string]string) (Config, error) {
	var envCfg Config
	if err := env.Parse(&envCfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}
	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	for _, layer := range []Config{fromOverrides(overrides), envCfg, fileCfg, Default()} {
		if err := mergo.Merge(&cfg, layer); err != nil {
			return Config{}, fmt.Errorf("merging config layers: %w", err)
		}
	}
	cfg.Method = strings.ToUpper(cfg.Method)
	return cfg, nil
}

func fromOverrides(overrides map[string]string) Config {
	if overrides == nil {
		return Config{}
	}
	return Config{
		BaseURL: overrides[KeyURL],
		Topic:   overrides[KeyTopic],
		Method:  overrides[KeyMethod],
	}
}

// SetKey sets a single config field by key name. Returns an error if the key
// is unknown or the value is invalid for that key.
func SetKey(cfg *Config, key, value string) error {
	switch key {
	case KeyURL:
		cfg.BaseURL = value
	case KeyTopic:
		cfg.Topic = value
	case KeyMethod:
		m := strings.ToUpper(value)
		if m != http.MethodGet && m != http.MethodPost {
			return fmt.Errorf("method must be GET or POST, got %q", value)
		}
		cfg.Method = m
	default:
		return fmt.Errorf("unknown config key: %s (expected url, topic or method)", key)
	}
	return nil
}

// Get returns the value of a single config field by key name.
func (c Config) Get(key string) (string, error) {
	switch key {
	case KeyURL:
		return c.BaseURL, nil
	case KeyTopic:
		return c.Topic, nil
	case KeyMethod:
		return c.Method, nil
	default:
		return "", fmt.Errorf("unknown config key: %s (expected url, topic or method)", key)
	}
}
