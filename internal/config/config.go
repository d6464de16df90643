package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vango-dev/markup/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "markup.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3030

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultMaxDepth is the default render depth limit.
	DefaultMaxDepth = 256

	// DefaultNamespace is the default metrics namespace.
	DefaultNamespace = "markup"
)

// Sink names accepted in PublishConfig.Sink.
const (
	SinkFile = "file"
	SinkS3   = "s3"
)

// Config represents the complete markup.json configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"logLevel,omitempty"`

	// Render contains guarded renderer settings.
	Render RenderConfig `json:"render"`

	// Serve contains preview server settings.
	Serve ServeConfig `json:"serve"`

	// Publish contains output sink settings.
	Publish PublishConfig `json:"publish"`

	// Metrics contains Prometheus settings.
	Metrics MetricsConfig `json:"metrics"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RenderConfig contains guarded renderer settings.
type RenderConfig struct {
	// MaxDepth limits the element tree depth. 0 disables the limit.
	MaxDepth int `json:"maxDepth"`

	// DetectCycles rejects trees where an element is its own ancestor.
	DetectCycles bool `json:"detectCycles"`

	// Doctype prefixes full documents with <!DOCTYPE html>.
	Doctype bool `json:"doctype"`
}

// ServeConfig contains preview server settings.
type ServeConfig struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`

	// Dir holds the tree documents served by the preview server.
	Dir string `json:"dir,omitempty"`
}

// PublishConfig contains output sink settings.
type PublishConfig struct {
	// Sink is "file" or "s3".
	Sink string `json:"sink,omitempty"`

	// Dir is the output directory of the file sink.
	Dir string `json:"dir,omitempty"`

	Bucket   string `json:"bucket,omitempty"`
	Prefix   string `json:"prefix,omitempty"`
	Region   string `json:"region,omitempty"`
	Endpoint string `json:"endpoint,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled"`
	Namespace string `json:"namespace,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		LogLevel: "info",
		Render: RenderConfig{
			MaxDepth:     DefaultMaxDepth,
			DetectCycles: true,
			Doctype:      true,
		},
		Serve: ServeConfig{
			Host: DefaultHost,
			Port: DefaultPort,
			Dir:  ".",
		},
		Publish: PublishConfig{
			Sink: SinkFile,
			Dir:  "dist",
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: DefaultNamespace,
		},
	}
}

// Load reads markup.json from the specified directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("M040").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Create " + ConfigFileName + " or run without --config to use defaults")
		}
		return nil, errors.New("M041").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("M041").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("M041").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("M041").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}
	if c.Serve.Dir == "" {
		c.Serve.Dir = "."
	}
	if c.Publish.Sink == "" {
		c.Publish.Sink = SinkFile
	}
	if c.Publish.Dir == "" {
		c.Publish.Dir = "dist"
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
}

// Validate checks the settings every command depends on. The publish
// section is checked separately by PublishConfig.Validate, once command
// line overrides have been applied.
func (c *Config) Validate() error {
	if c.Render.MaxDepth < 0 {
		return errors.New("M042").
			WithDetail("render.maxDepth must not be negative")
	}
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return errors.New("M042").
			WithDetail("serve.port must be between 0 and 65535")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// Validate checks the sink name and the settings that sink needs.
func (p PublishConfig) Validate() error {
	switch p.Sink {
	case SinkFile:
		if p.Dir == "" {
			return errors.New("M031").
				WithDetail("publish.dir is required for the file sink")
		}
	case SinkS3:
		if p.Bucket == "" {
			return errors.New("M031").
				WithDetail("publish.bucket is required for the s3 sink").
				WithSuggestion("Pass --bucket or set publish.bucket in " + ConfigFileName)
		}
	default:
		return errors.New("M042").
			WithDetail("publish.sink must be \"file\" or \"s3\", got " + strconv.Quote(p.Sink))
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(c.LogLevel))); err != nil {
		return slog.LevelInfo, errors.New("M042").
			WithDetail("logLevel must be one of debug, info, warn, error").
			Wrap(err)
	}
	return level, nil
}

// ServeAddress returns the address string for the preview server.
func (c *Config) ServeAddress() string {
	return c.Serve.Host + ":" + strconv.Itoa(c.Serve.Port)
}

// ServeDir returns the absolute-or-config-relative tree document directory.
func (c *Config) ServeDir() string {
	return c.resolve(c.Serve.Dir)
}

// PublishDir returns the file sink output directory.
func (c *Config) PublishDir() string {
	return c.resolve(c.Publish.Dir)
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) || c.configPath == "" {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the directory containing
// markup.json.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("M040").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadOrDefault loads markup.json from the nearest enclosing directory of
// startDir, or returns defaults when there is none.
func LoadOrDefault(startDir string) (*Config, error) {
	root, err := FindProjectRoot(startDir)
	if err != nil {
		if errors.HasCode(err, "M040") {
			return New(), nil
		}
		return nil, err
	}
	return Load(root)
}
