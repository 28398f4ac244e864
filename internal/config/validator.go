package config

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/stamper/internal/core"
	"github.com/indaco/stamper/internal/parser"
	"github.com/indaco/stamper/internal/tui"
)

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	// Category is the validation category (e.g., "YAML Syntax", "Coordinate").
	Category string

	// Passed indicates if the check passed.
	Passed bool

	// Message provides details about the validation result.
	Message string

	// Warning indicates if this is a warning rather than an error.
	Warning bool
}

// Validator validates configuration files and settings.
type Validator struct {
	fs          core.FileSystem
	cfg         *Config
	configPath  string
	rootDir     string
	validations []ValidationResult
}

// NewValidator creates a new configuration validator.
// The rootDir parameter is the directory relative paths are resolved against.
func NewValidator(fs core.FileSystem, cfg *Config, configPath string, rootDir string) *Validator {
	return &Validator{
		fs:          fs,
		cfg:         cfg,
		configPath:  configPath,
		rootDir:     rootDir,
		validations: make([]ValidationResult, 0),
	}
}

// Validate runs all validation checks and returns the results.
func (v *Validator) Validate(ctx context.Context) ([]ValidationResult, error) {
	v.validations = make([]ValidationResult, 0)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v.validateYAMLSyntax(ctx)

	if v.cfg == nil {
		return v.validations, nil
	}

	v.validateCoordinate()
	v.validateReadme(ctx)
	v.validateVersionSource(ctx)
	v.validateTheme()

	return v.validations, nil
}

// validateYAMLSyntax decodes the config file in strict mode.
// A missing file is only a warning since every value can come from flags or env.
func (v *Validator) validateYAMLSyntax(ctx context.Context) {
	data, err := v.fs.ReadFile(ctx, v.configPath)
	if err != nil {
		v.addValidation("YAML Syntax", false,
			fmt.Sprintf("Config file %s not found, using flags and environment only", v.configPath), true)
		return
	}

	if len(bytes.TrimSpace(data)) > 0 {
		var probe Config
		decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
		if err := decoder.Decode(&probe); err != nil {
			v.addValidation("YAML Syntax", false, fmt.Sprintf("Invalid YAML: %v", err), false)
			return
		}
	}

	v.addValidation("YAML Syntax", true, "Configuration file is valid YAML", false)
}

func (v *Validator) validateCoordinate() {
	check := func(label, value string) {
		switch {
		case value == "":
			v.addValidation("Coordinate", false, fmt.Sprintf("%s is not set", label), false)
		case strings.Contains(value, ":"):
			v.addValidation("Coordinate", false, fmt.Sprintf("%s %q must not contain ':'", label, value), false)
		default:
			v.addValidation("Coordinate", true, fmt.Sprintf("%s is %q", label, value), false)
		}
	}
	check("group", v.cfg.Group)
	check("name", v.cfg.Name)
}

func (v *Validator) validateReadme(ctx context.Context) {
	path := v.resolvePath(v.cfg.Readme)
	info, err := v.fs.Stat(ctx, path)
	switch {
	case err != nil:
		v.addValidation("Readme", false, fmt.Sprintf("%s does not exist", v.cfg.Readme), false)
	case info.IsDir():
		v.addValidation("Readme", false, fmt.Sprintf("%s is a directory", v.cfg.Readme), false)
	default:
		v.addValidation("Readme", true, fmt.Sprintf("%s found", v.cfg.Readme), false)
	}
}

func (v *Validator) validateVersionSource(ctx context.Context) {
	if v.cfg.Version != "" {
		v.addValidation("Version Source", true, fmt.Sprintf("Version pinned to %s", v.cfg.Version), false)
		if v.cfg.Manifest != nil {
			v.addValidation("Version Source", false, "Both version and manifest are set; manifest is ignored", true)
		}
		return
	}

	m := v.cfg.Manifest
	if m == nil {
		v.addValidation("Version Source", false, "No version or manifest configured; falling back to detection", true)
		return
	}

	if m.Path == "" {
		v.addValidation("Version Source", false, "manifest.path is required", false)
		return
	}

	format := parser.FormatForFile(m.Path)
	if m.Format != "" {
		format = parser.Format(m.Format)
		if !format.IsValid() {
			v.addValidation("Version Source", false, fmt.Sprintf("Unknown manifest format %q", m.Format), false)
			return
		}
	}

	if format == parser.FormatRegex {
		pattern := m.Pattern
		if pattern == "" {
			pattern = parser.PatternForFile(m.Path)
		}
		re, err := regexp.Compile(pattern)
		switch {
		case pattern == "":
			v.addValidation("Version Source", false, "manifest.pattern is required for regex format", false)
			return
		case err != nil:
			v.addValidation("Version Source", false, fmt.Sprintf("Invalid manifest.pattern: %v", err), false)
			return
		case re.NumSubexp() < 1:
			v.addValidation("Version Source", false, "manifest.pattern must have a capturing group", false)
			return
		}
	}

	if _, err := v.fs.Stat(ctx, v.resolvePath(m.Path)); err != nil {
		v.addValidation("Version Source", false, fmt.Sprintf("Manifest %s does not exist", m.Path), false)
		return
	}

	v.addValidation("Version Source", true, fmt.Sprintf("Version read from %s (%s)", m.Path, format), false)
}

func (v *Validator) validateTheme() {
	if v.cfg.Theme == "" {
		return
	}
	if !tui.IsValidTheme(v.cfg.Theme) {
		v.addValidation("Theme", false,
			fmt.Sprintf("Unknown theme %q (valid: %s)", v.cfg.Theme, strings.Join(tui.ValidThemes, ", ")), true)
		return
	}
	v.addValidation("Theme", true, fmt.Sprintf("Theme %q", v.cfg.Theme), false)
}

func (v *Validator) resolvePath(path string) string {
	if filepath.IsAbs(path) || v.rootDir == "" {
		return path
	}
	return filepath.Join(v.rootDir, path)
}

// addValidation adds a validation result to the list.
func (v *Validator) addValidation(category string, passed bool, message string, warning bool) {
	v.validations = append(v.validations, ValidationResult{
		Category: category,
		Passed:   passed,
		Message:  message,
		Warning:  warning,
	})
}

// HasErrors returns true if any validation failed.
func HasErrors(results []ValidationResult) bool {
	for _, r := range results {
		if !r.Passed && !r.Warning {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of failed validations.
func ErrorCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if !r.Passed && !r.Warning {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warnings.
func WarningCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if r.Warning {
			count++
		}
	}
	return count
}
