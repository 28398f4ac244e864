package parser

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/stamper/internal/core"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
)

// ErrFieldRequired is returned when a keyed format has no Field.
var ErrFieldRequired = errors.New("field is required")

type decodeFunc func(data []byte, cfg FileConfig) (string, error)

var decoders = map[Format]decodeFunc{
	FormatJSON:       decodeJSON,
	FormatYAML:       structured(func(data []byte, v any) error { return yaml.Unmarshal(data, v) }),
	FormatTOML:       structured(toml.Unmarshal),
	FormatProperties: decodeProperties,
	FormatRaw:        decodeRaw,
	FormatRegex:      decodeRegex,
}

// Reader reads single string values from manifests.
type Reader struct {
	fs core.FileSystem
}

// NewReader creates a Reader on top of fs.
func NewReader(fs core.FileSystem) *Reader {
	return &Reader{fs: fs}
}

// Read returns the value cfg points at.
func (r *Reader) Read(ctx context.Context, cfg FileConfig) (string, error) {
	if cfg.Path == "" {
		return "", errors.New("file path is required")
	}
	decode, ok := decoders[cfg.Format]
	if !ok {
		return "", fmt.Errorf("invalid format: %q", cfg.Format)
	}

	data, err := r.fs.ReadFile(ctx, cfg.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %q: %w", cfg.Path, err)
	}

	value, err := decode(data, cfg)
	if err != nil {
		return "", fmt.Errorf("%s (%s): %w", cfg.Path, cfg.Format, err)
	}
	return value, nil
}

// Exists reports whether path can be stat'ed.
func (r *Reader) Exists(ctx context.Context, path string) bool {
	_, err := r.fs.Stat(ctx, path)
	return err == nil
}

func decodeJSON(data []byte, cfg FileConfig) (string, error) {
	if cfg.Field == "" {
		return "", ErrFieldRequired
	}
	if !gjson.ValidBytes(data) {
		return "", errors.New("invalid JSON document")
	}

	value := gjson.GetBytes(data, cfg.Field)
	switch {
	case !value.Exists():
		return "", fmt.Errorf("field %q not found", cfg.Field)
	case value.Type != gjson.String:
		return "", fmt.Errorf("field %q is not a string", cfg.Field)
	}
	return value.String(), nil
}

// structured adapts a map-decoding unmarshal function to a decodeFunc.
func structured(unmarshal func([]byte, any) error) decodeFunc {
	return func(data []byte, cfg FileConfig) (string, error) {
		if cfg.Field == "" {
			return "", ErrFieldRequired
		}

		var doc map[string]any
		if err := unmarshal(data, &doc); err != nil {
			return "", err
		}

		var node any = doc
		for _, key := range strings.Split(cfg.Field, ".") {
			m, ok := node.(map[string]any)
			if !ok {
				return "", fmt.Errorf("field %q: %q is not inside an object", cfg.Field, key)
			}
			if node, ok = m[key]; !ok {
				return "", fmt.Errorf("field %q not found", cfg.Field)
			}
		}

		s, ok := node.(string)
		if !ok {
			return "", fmt.Errorf("field %q is not a string", cfg.Field)
		}
		return s, nil
	}
}

// decodeProperties reads "key=value" or "key: value" lines, skipping
// '#' and '!' comments.
func decodeProperties(data []byte, cfg FileConfig) (string, error) {
	if cfg.Field == "" {
		return "", ErrFieldRequired
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == '!' {
			continue
		}
		key, value, ok := cutAny(line, "=:")
		if ok && strings.TrimSpace(key) == cfg.Field {
			return strings.TrimSpace(value), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("key %q not found", cfg.Field)
}

func cutAny(s, seps string) (before, after string, found bool) {
	if i := strings.IndexAny(s, seps); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

func decodeRaw(data []byte, _ FileConfig) (string, error) {
	value := strings.TrimSpace(string(data))
	if value == "" {
		return "", errors.New("file is empty")
	}
	return value, nil
}

func decodeRegex(data []byte, cfg FileConfig) (string, error) {
	if cfg.Pattern == "" {
		return "", errors.New("pattern is required")
	}
	re, err := regexp.Compile(cfg.Pattern)
	if err != nil {
		return "", fmt.Errorf("invalid pattern: %w", err)
	}

	m := re.FindSubmatch(data)
	if len(m) < 2 {
		return "", fmt.Errorf("pattern %q did not match or has no capture group", cfg.Pattern)
	}
	return string(m[1]), nil
}

// gradleScriptPattern matches `version = "1.2.3"` in Gradle build scripts.
const gradleScriptPattern = `(?m)^\s*version\s*=\s*["']([^"']+)["']`

// knownFields holds the version field of manifests that do not use "version".
var knownFields = map[string]string{
	"Cargo.toml":     "package.version",
	"pyproject.toml": "project.version",
}

// FieldForFormat returns the version field of a well-known manifest,
// "version" otherwise.
func FieldForFormat(filename string) string {
	if field, ok := knownFields[filepath.Base(filename)]; ok {
		return field
	}
	return "version"
}

// PatternForFile returns the default regex for files read with FormatRegex.
func PatternForFile(filename string) string {
	if isGradleScript(filepath.Base(filename)) {
		return gradleScriptPattern
	}
	return ""
}

// FormatForFile infers the format from the file name; unknown files are raw.
func FormatForFile(filename string) Format {
	base := strings.ToLower(filepath.Base(filename))
	if isGradleScript(base) {
		return FormatRegex
	}

	switch filepath.Ext(base) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".properties":
		return FormatProperties
	default:
		return FormatRaw
	}
}

func isGradleScript(base string) bool {
	return base == "build.gradle" || base == "build.gradle.kts"
}

// ConfigForFile builds a FileConfig for path from its name alone.
func ConfigForFile(path string) FileConfig {
	return FileConfig{
		Path:    path,
		Format:  FormatForFile(path),
		Field:   FieldForFormat(path),
		Pattern: PatternForFile(path),
	}
}
