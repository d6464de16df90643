package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/vango-dev/markup/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Serve.Port != DefaultPort {
		t.Errorf("Serve.Port = %d, want %d", cfg.Serve.Port, DefaultPort)
	}
	if cfg.Render.MaxDepth != DefaultMaxDepth {
		t.Errorf("Render.MaxDepth = %d, want %d", cfg.Render.MaxDepth, DefaultMaxDepth)
	}
	if !cfg.Render.DetectCycles {
		t.Error("Render.DetectCycles should default to true")
	}
	if cfg.Publish.Sink != SinkFile {
		t.Errorf("Publish.Sink = %q, want %q", cfg.Publish.Sink, SinkFile)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	if !errors.HasCode(err, "M040") {
		t.Errorf("missing config error = %v, want M040", err)
	}

	configJSON := `{
  "logLevel": "debug",
  "render": {
    "maxDepth": 32,
    "detectCycles": false
  },
  "serve": {
    "port": 8080,
    "dir": "pages"
  },
  "publish": {
    "sink": "s3",
    "bucket": "site",
    "prefix": "html/"
  }
}
`
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Render.MaxDepth != 32 {
		t.Errorf("Render.MaxDepth = %d, want 32", cfg.Render.MaxDepth)
	}
	if cfg.Render.DetectCycles {
		t.Error("Render.DetectCycles should be false")
	}
	if !cfg.Render.Doctype {
		t.Error("Render.Doctype should keep its default")
	}
	if cfg.Serve.Port != 8080 {
		t.Errorf("Serve.Port = %d, want 8080", cfg.Serve.Port)
	}
	if cfg.Serve.Host != DefaultHost {
		t.Errorf("Serve.Host = %q, want %q", cfg.Serve.Host, DefaultHost)
	}
	if cfg.ServeDir() != filepath.Join(tmpDir, "pages") {
		t.Errorf("ServeDir() = %q", cfg.ServeDir())
	}
	if cfg.Publish.Bucket != "site" || cfg.Publish.Prefix != "html/" {
		t.Errorf("Publish = %+v", cfg.Publish)
	}
	if level, err := cfg.SlogLevel(); err != nil || level != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, %v", level, err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if cfg.Path() != filepath.Join(tmpDir, ConfigFileName) {
		t.Errorf("Path() = %q", cfg.Path())
	}
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFile(path)
	if !errors.HasCode(err, "M041") {
		t.Errorf("LoadFile error = %v, want M041", err)
	}
}

func TestSave(t *testing.T) {
	cfg := New()
	if err := cfg.Save(); err == nil {
		t.Error("Save without path should fail")
	}

	path := filepath.Join(t.TempDir(), ConfigFileName)
	cfg.Serve.Port = 9000
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if loaded.Serve.Port != 9000 {
		t.Errorf("Serve.Port = %d, want 9000", loaded.Serve.Port)
	}

	loaded.Render.MaxDepth = 7
	if err := loaded.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	again, _ := LoadFile(path)
	if again.Render.MaxDepth != 7 {
		t.Errorf("Render.MaxDepth = %d, want 7", again.Render.MaxDepth)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		code   string
	}{
		{"negative depth", func(c *Config) { c.Render.MaxDepth = -1 }, "M042"},
		{"bad port", func(c *Config) { c.Serve.Port = 70000 }, "M042"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "M042"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.HasCode(err, tt.code) {
				t.Errorf("Validate() = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestValidateIgnoresPublish(t *testing.T) {
	cfg := New()
	cfg.Publish.Sink = SinkS3
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, publish settings are checked by PublishConfig.Validate", err)
	}
}

func TestPublishConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		publish PublishConfig
		code    string
	}{
		{"file", PublishConfig{Sink: SinkFile, Dir: "dist"}, ""},
		{"file without dir", PublishConfig{Sink: SinkFile}, "M031"},
		{"s3", PublishConfig{Sink: SinkS3, Bucket: "site"}, ""},
		{"s3 without bucket", PublishConfig{Sink: SinkS3}, "M031"},
		{"unknown sink", PublishConfig{Sink: "ftp"}, "M042"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.publish.Validate()
			if tt.code == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.HasCode(err, tt.code) {
				t.Errorf("Validate() = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestServeAddress(t *testing.T) {
	cfg := New()
	cfg.Serve.Host = "0.0.0.0"
	cfg.Serve.Port = 8080
	if got := cfg.ServeAddress(); got != "0.0.0.0:8080" {
		t.Errorf("ServeAddress() = %q", got)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := New().SaveTo(filepath.Join(root, ConfigFileName)); err != nil {
		t.Fatal(err)
	}

	found, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot error: %v", err)
	}
	if found != root {
		t.Errorf("FindProjectRoot = %q, want %q", found, root)
	}

	cfg, err := LoadOrDefault(nested)
	if err != nil || cfg.Path() == "" {
		t.Errorf("LoadOrDefault = %v, %v", cfg, err)
	}
}

func TestLoadOrDefaultWithoutFile(t *testing.T) {
	// t.TempDir lives under the system temp dir, which has no markup.json.
	cfg, err := LoadOrDefault(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOrDefault error: %v", err)
	}
	if cfg.Path() != "" || cfg.Serve.Port != DefaultPort {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}
