// Package config loads settings for the w2vtext command from a YAML
// file and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultInitScale = 0.05
	DefaultLogLevel  = "info"
)

// Config holds the settings of the w2vtext command.
type Config struct {
	// Embeddings is the word2vec text file to load.
	Embeddings string `yaml:"embeddings"`

	// Vocabulary is a file with one token per line.
	Vocabulary string `yaml:"vocabulary"`

	// Dim is the expected dimensionality, 0 to accept any.
	Dim int `yaml:"dim"`

	// InitScale bounds the uniform initialization of matrix rows
	// without a pre-trained vector.
	InitScale float64 `yaml:"init_scale"`

	Seed     int64  `yaml:"seed"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		InitScale: DefaultInitScale,
		LogLevel:  DefaultLogLevel,
	}
}

// Load reads the configuration at path, then applies environment
// overrides. A missing file gives the defaults. Variables in a .env
// file in the working directory are added to the environment.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("W2VTEXT_EMBEDDINGS"); v != "" {
		c.Embeddings = v
	}
	if v := os.Getenv("W2VTEXT_VOCABULARY"); v != "" {
		c.Vocabulary = v
	}
	if v := os.Getenv("W2VTEXT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("W2VTEXT_DIM"); v != "" {
		dim, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid W2VTEXT_DIM %q: %w", v, err)
		}
		c.Dim = dim
	}

	return nil
}

// Path returns the default config location,
// $XDG_CONFIG_HOME/w2vtext/config.yaml.
func Path() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "w2vtext", "config.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
