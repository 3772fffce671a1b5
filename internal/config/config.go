// Package config resolves runtime settings from defaults, an optional YAML
// file, an optional .env file and TASKCHAT_* environment variables, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/sandeepkv93/taskchat/internal/completion"
)

const AppName = "taskchat"

type Config struct {
	CompletionURL string `yaml:"completion_url"`
	APIKey        string `yaml:"api_key"`
	// Seed drives template selection. Zero means seed from the clock.
	Seed     uint64 `yaml:"seed"`
	Store    string `yaml:"store"`
	LogFile  string `yaml:"log_file"`
	ChatOpen bool   `yaml:"chat_open"`
	// Source is the YAML file that was read, empty when none was found.
	Source string `yaml:"-"`
}

func Default() Config {
	return Config{
		CompletionURL: completion.DefaultURL,
		Store:         "memory",
		ChatOpen:      true,
	}
}

// Load reads envFile (ignored when missing), then the YAML file named by
// TASKCHAT_CONFIG or the default path, then environment overrides.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	cfg := Default()
	path := strings.TrimSpace(os.Getenv("TASKCHAT_CONFIG"))
	if path == "" {
		path = DefaultPath()
	}
	fileCfg, err := LoadFile(cfg, path)
	if err != nil {
		return Config{}, err
	}
	return FromEnv(fileCfg), nil
}

// LoadFile overlays the YAML file at path onto base. A missing file is not
// an error.
func LoadFile(base Config, path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return base, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := base
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

func FromEnv(base Config) Config {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("TASKCHAT_API_URL")); v != "" {
		cfg.CompletionURL = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKCHAT_API_KEY")); v != "" {
		cfg.APIKey = v
	}
	if v, ok := getEnvUint("TASKCHAT_SEED"); ok {
		cfg.Seed = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKCHAT_STORE")); v != "" {
		cfg.Store = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("TASKCHAT_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	if v, ok := getEnvBool("TASKCHAT_CHAT_OPEN"); ok {
		cfg.ChatOpen = v
	}
	return cfg
}

// DefaultPath is $XDG_CONFIG_HOME/taskchat/config.yaml, falling back to
// ~/.config.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName, "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(AppName, "config.yaml")
	}
	return filepath.Join(home, ".config", AppName, "config.yaml")
}

func getEnvUint(name string) (uint64, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
