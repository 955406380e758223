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
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/datalens-cli/internal/logging"
	"github.com/KaramelBytes/datalens-cli/internal/profile"
)

// Global configuration structure.
type Global struct {
	// Profiling
	SampleSize    int     `mapstructure:"sample_size" yaml:"sample_size"`
	TypeThreshold float64 `mapstructure:"type_threshold" yaml:"type_threshold"`
	TopCategories int     `mapstructure:"top_categories" yaml:"top_categories"`
	Bins          int     `mapstructure:"bins" yaml:"bins"`
	Workers       int     `mapstructure:"workers" yaml:"workers"`

	// Ingestion and output
	MaxRows      int    `mapstructure:"max_rows" yaml:"max_rows"`
	OutputFormat string `mapstructure:"output_format" yaml:"output_format"`
	OutputDir    string `mapstructure:"output_dir" yaml:"output_dir"`

	// Logging
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// Keys lists the settable configuration keys in display order.
var Keys = []string{
	"sample_size", "type_threshold", "top_categories", "bins", "workers",
	"max_rows", "output_format", "output_dir", "log_level", "log_format",
}

// DefaultPath returns ~/.datalens/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".datalens", "config.yaml"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.datalens/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > .env file > config file > defaults. Flags are applied by
// the caller on top.
func Load(cfgFile string) (*Global, error) {
	// .env never overrides variables already set in the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("DATALENS")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("sample_size", profile.DefaultSampleSize)
	v.SetDefault("type_threshold", profile.DefaultTypeThreshold)
	v.SetDefault("top_categories", profile.DefaultTopCategories)
	v.SetDefault("bins", profile.DefaultBins)
	v.SetDefault("workers", 0)
	v.SetDefault("max_rows", 0)
	v.SetDefault("output_format", "json")
	v.SetDefault("output_dir", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".datalens"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// ProfileOptions maps the profiling keys onto profile.Options.
func (c *Global) ProfileOptions() profile.Options {
	return profile.Options{
		SampleSize:    c.SampleSize,
		TypeThreshold: c.TypeThreshold,
		TopCategories: c.TopCategories,
		Bins:          c.Bins,
		Workers:       c.Workers,
	}
}

// Get returns the string form of a key.
func (c *Global) Get(key string) (string, error) {
	switch key {
	case "sample_size":
		return strconv.Itoa(c.SampleSize), nil
	case "type_threshold":
		return strconv.FormatFloat(c.TypeThreshold, 'f', -1, 64), nil
	case "top_categories":
		return strconv.Itoa(c.TopCategories), nil
	case "bins":
		return strconv.Itoa(c.Bins), nil
	case "workers":
		return strconv.Itoa(c.Workers), nil
	case "max_rows":
		return strconv.Itoa(c.MaxRows), nil
	case "output_format":
		return c.OutputFormat, nil
	case "output_dir":
		return c.OutputDir, nil
	case "log_level":
		return c.LogLevel, nil
	case "log_format":
		return c.LogFormat, nil
	default:
		return "", fmt.Errorf("unknown key: %s", key)
	}
}

// Set validates and assigns a key from its string form.
func (c *Global) Set(key, val string) error {
	switch key {
	case "sample_size":
		i, err := strconv.Atoi(val)
		if err != nil || i <= 0 {
			return fmt.Errorf("invalid int for sample_size: %v (must be > 0)", val)
		}
		c.SampleSize = i
	case "type_threshold":
		f, err := strconv.ParseFloat(val, 64)
		if err != nil || f <= 0 || f > 1 {
			return fmt.Errorf("invalid float for type_threshold: %v (must be in (0, 1])", val)
		}
		c.TypeThreshold = f
	case "top_categories":
		i, err := strconv.Atoi(val)
		if err != nil || i <= 0 {
			return fmt.Errorf("invalid int for top_categories: %v (must be > 0)", val)
		}
		c.TopCategories = i
	case "bins":
		i, err := strconv.Atoi(val)
		if err != nil || i <= 0 {
			return fmt.Errorf("invalid int for bins: %v (must be > 0)", val)
		}
		c.Bins = i
	case "workers":
		i, err := strconv.Atoi(val)
		if err != nil || i < 0 {
			return fmt.Errorf("invalid int for workers: %v (must be >= 0)", val)
		}
		c.Workers = i
	case "max_rows":
		i, err := strconv.Atoi(val)
		if err != nil || i < 0 {
			return fmt.Errorf("invalid int for max_rows: %v (must be >= 0)", val)
		}
		c.MaxRows = i
	case "output_format":
		f := strings.ToLower(val)
		if f == "yml" {
			f = "yaml"
		}
		if f != "json" && f != "yaml" {
			return fmt.Errorf("invalid output_format: %s (use json or yaml)", val)
		}
		c.OutputFormat = f
	case "output_dir":
		c.OutputDir = val
	case "log_level":
		if !logging.ValidLevel(val) {
			return fmt.Errorf("invalid log_level: %s (use debug, info, warn or error)", val)
		}
		c.LogLevel = strings.ToLower(val)
	case "log_format":
		switch strings.ToLower(val) {
		case "text", "json":
			c.LogFormat = strings.ToLower(val)
		default:
			return fmt.Errorf("invalid log_format: %s (use text or json)", val)
		}
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return nil
}
