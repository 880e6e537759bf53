// Package config loads simlcalc settings from an optional YAML or TOML file
// and SIMLCALC_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings.
type Config struct {
	Locale    string    `yaml:"locale" toml:"locale"`
	MaxLength int       `yaml:"max_length" toml:"max_length"`
	Store     Store     `yaml:"store" toml:"store"`
	Evaluator Evaluator `yaml:"evaluator" toml:"evaluator"`
	Theme     Theme     `yaml:"theme" toml:"theme"`
	Debug     bool      `yaml:"debug" toml:"debug"`
	LogFile   string    `yaml:"log_file" toml:"log_file"`
}

// Store selects where the last committed result is kept.
type Store struct {
	Driver string `yaml:"driver" toml:"driver"`
	Path   string `yaml:"path" toml:"path"`
}

// Evaluator selects the expression evaluator. An empty URL means the
// built-in one.
type Evaluator struct {
	URL       string `yaml:"url" toml:"url"`
	APIKey    string `yaml:"api_key" toml:"api_key"`
	TimeoutMS int    `yaml:"timeout_ms" toml:"timeout_ms"`
}

// Timeout returns the request timeout.
func (e Evaluator) Timeout() time.Duration {
	return time.Duration(e.TimeoutMS) * time.Millisecond
}

// Theme holds terminal colours as lipgloss colour strings ("5", "#ff00aa").
type Theme struct {
	Title   string `yaml:"title" toml:"title"`
	Active  string `yaml:"active" toml:"active"`
	Dim     string `yaml:"dim" toml:"dim"`
	Error   string `yaml:"error" toml:"error"`
	Success string `yaml:"success" toml:"success"`
	Prompt  string `yaml:"prompt" toml:"prompt"`
}

// DefaultTheme is the ANSI palette used when no theme is configured.
var DefaultTheme = Theme{
	Title:   "5",
	Active:  "2",
	Dim:     "8",
	Error:   "1",
	Success: "2",
	Prompt:  "6",
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Locale:    "en-US",
		MaxLength: 20,
		Store:     Store{Driver: "memory"},
		Evaluator: Evaluator{TimeoutMS: 30000},
		Theme:     DefaultTheme,
	}
}

// ErrUnknownFormat is returned for config files that are neither YAML nor TOML.
var ErrUnknownFormat = errors.New("config file must be .yaml, .yml or .toml")

// Load reads path over the defaults. Fields missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := decode(path, data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	case ".toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown key %q", undecoded[0].String())
		}
		return nil
	}
	return ErrUnknownFormat
}

// ApplyEnv overrides cfg with SIMLCALC_* variables looked up through getenv.
func (cfg *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("SIMLCALC_LOCALE"); v != "" {
		cfg.Locale = v
	}
	if v := getenv("SIMLCALC_MAX_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("SIMLCALC_MAX_LENGTH: invalid value %q", v)
		}
		cfg.MaxLength = n
	}
	if v := getenv("SIMLCALC_STORE"); v != "" {
		cfg.Store.Driver = v
	}
	if v := getenv("SIMLCALC_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := getenv("SIMLCALC_EVAL_URL"); v != "" {
		cfg.Evaluator.URL = v
	}
	if v := getenv("SIMLCALC_EVAL_KEY"); v != "" {
		cfg.Evaluator.APIKey = v
	}
	if v := getenv("SIMLCALC_DEBUG"); v != "" {
		cfg.Debug = v != "0" && !strings.EqualFold(v, "false")
	}
	if v := getenv("SIMLCALC_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	return nil
}

// LogPath returns where debug logging goes, or "" when it is off.
func (cfg Config) LogPath() string {
	if cfg.LogFile != "" {
		return cfg.LogFile
	}
	if cfg.Debug {
		return "simlcalc.log"
	}
	return ""
}
