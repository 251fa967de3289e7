package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port            string
	DBPath          string
	StaticDir       string
	LogLevel        string
	LogFormat       string // text|json
	ShutdownTimeout time.Duration
	PDFCompress     bool
}

// fileConfig mirrors AppConfig for YAML, TOML and JSON files. Pointers let
// an absent key keep the default.
type fileConfig struct {
	Port            *string `yaml:"port" toml:"port" json:"port"`
	DBPath          *string `yaml:"db_path" toml:"db_path" json:"db_path"`
	StaticDir       *string `yaml:"static_dir" toml:"static_dir" json:"static_dir"`
	LogLevel        *string `yaml:"log_level" toml:"log_level" json:"log_level"`
	LogFormat       *string `yaml:"log_format" toml:"log_format" json:"log_format"`
	ShutdownTimeout *string `yaml:"shutdown_timeout" toml:"shutdown_timeout" json:"shutdown_timeout"`
	PDFCompress     *bool   `yaml:"pdf_compress" toml:"pdf_compress" json:"pdf_compress"`
}

func Defaults() AppConfig {
	return AppConfig{
		Port:            "3000",
		DBPath:          "milkman_data.db",
		StaticDir:       "public",
		LogLevel:        "info",
		LogFormat:       "text",
		ShutdownTimeout: 15 * time.Second,
		PDFCompress:     true,
	}
}

// Load builds the configuration from defaults, then the optional config
// file, then the environment (a .env file is read first if present).
// An empty path falls back to CONFIG_FILE.
func Load(path string) (AppConfig, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("[cfg] could not load .env", "error", err)
	}

	cfg := Defaults()
	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		fc, err := LoadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := cfg.apply(fc); err != nil {
			return cfg, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadFile decodes a TOML, YAML or JSON file, chosen by extension.
func LoadFile(path string) (*fileConfig, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", ext)
	}
	return &fc, nil
}

func (c *AppConfig) apply(fc *fileConfig) error {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&c.Port, fc.Port)
	set(&c.DBPath, fc.DBPath)
	set(&c.StaticDir, fc.StaticDir)
	set(&c.LogLevel, fc.LogLevel)
	set(&c.LogFormat, fc.LogFormat)
	if fc.ShutdownTimeout != nil {
		d, err := time.ParseDuration(*fc.ShutdownTimeout)
		if err != nil {
			return fmt.Errorf("invalid shutdown_timeout %q: %w", *fc.ShutdownTimeout, err)
		}
		c.ShutdownTimeout = d
	}
	if fc.PDFCompress != nil {
		c.PDFCompress = *fc.PDFCompress
	}
	return nil
}

func (c *AppConfig) applyEnv() error {
	get := func(k string, dst *string) {
		if v := os.Getenv(k); v != "" {
			*dst = v
		}
	}
	get("PORT", &c.Port)
	get("DB_PATH", &c.DBPath)
	get("STATIC_DIR", &c.StaticDir)
	get("LOG_LEVEL", &c.LogLevel)
	get("LOG_FORMAT", &c.LogFormat)
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		c.ShutdownTimeout = d
	}
	if v := os.Getenv("PDF_COMPRESS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid PDF_COMPRESS %q: %w", v, err)
		}
		c.PDFCompress = b
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c AppConfig) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, "database path cannot be empty")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("invalid log format '%s': must be text or json", c.LogFormat))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("invalid shutdown timeout %v: must be positive", c.ShutdownTimeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
