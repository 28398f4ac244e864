package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/stamper/internal/core"
)

// ConfigFileName is the default configuration file looked up in the working directory.
const ConfigFileName = ".stamper.yaml"

// DefaultReadme is the document stamped when none is configured.
const DefaultReadme = "README.md"

// ManifestConfig tells stamper where to read the project version from.
type ManifestConfig struct {
	Path    string `yaml:"path"`
	Format  string `yaml:"format,omitempty"`
	Field   string `yaml:"field,omitempty"`
	Pattern string `yaml:"pattern,omitempty"`
}

// Config is the main configuration structure for stamper.
type Config struct {
	// Group is the artifact group, e.g. "com.example".
	Group string `yaml:"group"`
	// Name is the artifact id, e.g. "my-project".
	Name string `yaml:"name"`
	// Version pins the target version; when empty it is read from Manifest.
	Version  string          `yaml:"version,omitempty"`
	Readme   string          `yaml:"readme,omitempty"`
	Manifest *ManifestConfig `yaml:"manifest,omitempty"`
	Theme    string          `yaml:"theme,omitempty"`
}

// FileOpener abstracts file opening operations for testability.
type FileOpener interface {
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
}

// FileWriter abstracts file writing operations for testability.
type FileWriter interface {
	WriteFile(file *os.File, data []byte) (int, error)
}

// ConfigSaver handles configuration saving with injected dependencies.
type ConfigSaver struct {
	marshaler  core.Marshaler
	fileOpener FileOpener
	fileWriter FileWriter
}

// osFileOpener is the production implementation of FileOpener.
type osFileOpener struct{}

func (o *osFileOpener) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

// osFileWriter is the production implementation of FileWriter.
type osFileWriter struct{}

func (w *osFileWriter) WriteFile(file *os.File, data []byte) (int, error) {
	return file.Write(data)
}

// fileHeader is written above the marshaled configuration.
const fileHeader = `# stamper configuration file
# Keeps the group:name:version reference in the README in sync.
# Environment variables STAMPER_GROUP, STAMPER_NAME, STAMPER_VERSION and
# STAMPER_README override these values; command line flags override both.

`

// yamlMarshaler is the production implementation of core.Marshaler using YAML.
type yamlMarshaler struct{}

func (m *yamlMarshaler) Marshal(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(fileHeader), data...), nil
}

// NewConfigSaver creates a ConfigSaver with the given dependencies.
// If any dependency is nil, the production default is used.
func NewConfigSaver(marshaler core.Marshaler, opener FileOpener, writer FileWriter) *ConfigSaver {
	if marshaler == nil {
		marshaler = &yamlMarshaler{}
	}
	if opener == nil {
		opener = &osFileOpener{}
	}
	if writer == nil {
		writer = &osFileWriter{}
	}
	return &ConfigSaver{
		marshaler:  marshaler,
		fileOpener: opener,
		fileWriter: writer,
	}
}

// Save saves the configuration to the default config file.
func (s *ConfigSaver) Save(cfg *Config) error {
	return s.SaveTo(cfg, ConfigFileName)
}

// SaveTo saves the configuration to the specified file path.
func (s *ConfigSaver) SaveTo(cfg *Config, configFile string) error {
	file, err := s.fileOpener.OpenFile(configFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open config file %q: %w", configFile, err)
	}
	defer file.Close()

	data, err := s.marshaler.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to %q: %w", configFile, err)
	}

	if _, err := s.fileWriter.WriteFile(file, data); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", configFile, err)
	}

	return nil
}

// defaultConfigSaver is the ConfigSaver behind SaveConfigFn.
var defaultConfigSaver = NewConfigSaver(nil, nil, nil)

// LoadConfigFn and SaveConfigFn are function variables so commands can be
// tested without touching the working directory.
var (
	LoadConfigFn = loadConfig
	SaveConfigFn = func(cfg *Config, path string) error {
		if path == "" {
			return defaultConfigSaver.Save(cfg)
		}
		return defaultConfigSaver.SaveTo(cfg, path)
	}
)

// Environment variables overriding file values.
const (
	EnvGroup   = "STAMPER_GROUP"
	EnvName    = "STAMPER_NAME"
	EnvVersion = "STAMPER_VERSION"
	EnvReadme  = "STAMPER_README"
)

// loadConfig reads configPath (or ConfigFileName when empty), then applies
// environment overrides. A missing file yields the defaults.
func loadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = ConfigFileName
	}

	cfg := &Config{}

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if len(bytes.TrimSpace(data)) > 0 {
			decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
			if err := decoder.Decode(cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		}
	case os.IsNotExist(err):
		// fallback to defaults
	default:
		return nil, fmt.Errorf("failed to read %s: %w", configPath, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

// applyEnv overrides cfg with STAMPER_* variables.
func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvGroup); v != "" {
		cfg.Group = v
	}
	if v := os.Getenv(EnvName); v != "" {
		cfg.Name = v
	}
	if v := os.Getenv(EnvVersion); v != "" {
		cfg.Version = v
	}
	if v := os.Getenv(EnvReadme); v != "" {
		cleanPath := filepath.Clean(v)
		// Reject relative paths with traversal (use absolute paths instead)
		if strings.Contains(cleanPath, "..") {
			return fmt.Errorf("invalid %s: path traversal not allowed, use absolute path instead", EnvReadme)
		}
		cfg.Readme = cleanPath
	}
	return nil
}

// ApplyDefaults fills unset fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.Readme == "" {
		c.Readme = DefaultReadme
	}
}

// NormalizeReadmePath ensures the path is a file, not just a directory.
func NormalizeReadmePath(path string) string {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return filepath.Join(path, DefaultReadme)
	}

	// If it doesn't exist or is already a file, return as-is
	return path
}

// ConfigFilePerm defines secure file permissions for config files (owner read/write only).
const ConfigFilePerm = core.PermOwnerRW
