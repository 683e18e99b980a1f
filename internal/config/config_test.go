package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.InitScale != DefaultInitScale {
		t.Errorf("InitScale = %v, want %v", cfg.InitScale, DefaultInitScale)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.Dim != 0 {
		t.Errorf("Dim = %d, want 0", cfg.Dim)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, `embeddings: /data/vectors.txt
vocabulary: /data/vocab.txt
dim: 300
init_scale: 0.1
seed: 42
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Embeddings != "/data/vectors.txt" {
		t.Errorf("Embeddings = %q", cfg.Embeddings)
	}
	if cfg.Vocabulary != "/data/vocab.txt" {
		t.Errorf("Vocabulary = %q", cfg.Vocabulary)
	}
	if cfg.Dim != 300 {
		t.Errorf("Dim = %d, want 300", cfg.Dim)
	}
	if cfg.InitScale != 0.1 {
		t.Errorf("InitScale = %v, want 0.1", cfg.InitScale)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want default %q", cfg.LogLevel, DefaultLogLevel)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "embeddings: /data/vectors.txt\ndim: 300\n")

	t.Setenv("W2VTEXT_EMBEDDINGS", "/other/vectors.txt")
	t.Setenv("W2VTEXT_DIM", "50")
	t.Setenv("W2VTEXT_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Embeddings != "/other/vectors.txt" {
		t.Errorf("Embeddings = %q, want override", cfg.Embeddings)
	}
	if cfg.Dim != 50 {
		t.Errorf("Dim = %d, want 50", cfg.Dim)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadInvalid(t *testing.T) {
	if _, err := Load(writeConfig(t, "dim: [1, 2\n")); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}

	t.Setenv("W2VTEXT_DIM", "three")
	if _, err := Load(""); err == nil {
		t.Error("Load() should fail on a non-numeric W2VTEXT_DIM")
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"tilde only", "~", home},
		{"tilde slash", "~/foo/bar", filepath.Join(home, "foo", "bar")},
		{"absolute", "/tmp/foo", "/tmp/foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			if err != nil {
				t.Fatalf("ExpandPath(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
