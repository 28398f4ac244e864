// Package project resolves the coordinate to stamp from configuration,
// build manifests and the project layout.
package project

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/indaco/stamper/internal/config"
	"github.com/indaco/stamper/internal/coordinate"
	"github.com/indaco/stamper/internal/core"
	"github.com/indaco/stamper/internal/logging"
	"github.com/indaco/stamper/internal/parser"
)

// ErrNoVersion is returned when no version is configured and none can be detected.
var ErrNoVersion = errors.New("no project version found")

const (
	gradleGroupPattern = `(?m)^\s*group\s*=\s*["']([^"']+)["']`
	gradleNamePattern  = `(?m)^\s*rootProject\.name\s*=\s*["']([^"']+)["']`
)

// Project is the resolved input of a stamp run.
type Project struct {
	Coordinate coordinate.Coordinate

	// Readme is the document path, joined with the project root.
	Readme string

	// VersionSource names where the version came from ("config", a file name).
	VersionSource string
}

// Resolver builds a Project from configuration and project files.
type Resolver struct {
	reader *parser.Reader
	root   string
	logger *log.Logger
}

// NewResolver creates a Resolver looking for files under root.
func NewResolver(fs core.FileSystem, root string, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Resolver{
		reader: parser.NewReader(fs),
		root:   root,
		logger: logger,
	}
}

// Resolve returns the project described by cfg. Unset group, name and
// version are filled from Gradle files, the root directory name and the
// detected version sources, in that order.
func (r *Resolver) Resolve(ctx context.Context, cfg *config.Config) (*Project, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}

	group, name := cfg.Group, cfg.Name
	if group == "" || name == "" {
		detectedGroup, detectedName := r.Identity(ctx)
		if group == "" {
			group = detectedGroup
		}
		if name == "" {
			name = detectedName
		}
	}

	version, source, err := r.resolveVersion(ctx, cfg)
	if err != nil {
		return nil, err
	}

	readme := cfg.Readme
	if readme == "" {
		readme = config.DefaultReadme
	}

	p := &Project{
		Coordinate:    coordinate.New(group, name, version),
		Readme:        r.path(readme),
		VersionSource: source,
	}

	if err := p.Coordinate.Validate(); err != nil {
		return nil, err
	}

	r.logger.Debug("project resolved", "coordinate", p.Coordinate.String(), "readme", p.Readme, "source", source)
	return p, nil
}

// Identity returns the group and artifact name inferred from Gradle files,
// falling back to the root directory name for the artifact. Empty values
// mean nothing was found.
func (r *Resolver) Identity(ctx context.Context) (group, name string) {
	group = r.firstMatch(ctx, []parser.FileConfig{
		{Path: r.path("gradle.properties"), Format: parser.FormatProperties, Field: "group"},
		{Path: r.path("build.gradle.kts"), Format: parser.FormatRegex, Pattern: gradleGroupPattern},
		{Path: r.path("build.gradle"), Format: parser.FormatRegex, Pattern: gradleGroupPattern},
	})

	name = r.firstMatch(ctx, []parser.FileConfig{
		{Path: r.path("settings.gradle.kts"), Format: parser.FormatRegex, Pattern: gradleNamePattern},
		{Path: r.path("settings.gradle"), Format: parser.FormatRegex, Pattern: gradleNamePattern},
	})
	if name == "" {
		name = r.rootName()
	}
	return group, name
}

func (r *Resolver) resolveVersion(ctx context.Context, cfg *config.Config) (string, string, error) {
	if cfg.Version != "" {
		return cfg.Version, "config", nil
	}

	if m := cfg.Manifest; m != nil {
		fc := parser.ConfigForFile(r.path(m.Path))
		if m.Format != "" {
			fc.Format = parser.Format(m.Format)
		}
		if m.Field != "" {
			fc.Field = m.Field
		}
		if m.Pattern != "" {
			fc.Pattern = m.Pattern
		}
		version, err := r.reader.Read(ctx, fc)
		if err != nil {
			return "", "", fmt.Errorf("failed to read version from manifest: %w", err)
		}
		return version, m.Path, nil
	}

	sources := r.Detect(ctx)
	if len(sources) == 0 {
		return "", "", fmt.Errorf("%w: set version, configure a manifest or add a .version file", ErrNoVersion)
	}
	return sources[0].Version, sources[0].File, nil
}

// firstMatch returns the first value any of the candidates yields.
func (r *Resolver) firstMatch(ctx context.Context, candidates []parser.FileConfig) string {
	for _, fc := range candidates {
		if !r.reader.Exists(ctx, fc.Path) {
			continue
		}
		if value, err := r.reader.Read(ctx, fc); err == nil && value != "" {
			return value
		}
	}
	return ""
}

// rootName returns the base name of the project root, the default Gradle project name.
func (r *Resolver) rootName() string {
	abs, err := filepath.Abs(r.root)
	if err != nil {
		return ""
	}
	name := filepath.Base(abs)
	if name == "/" || name == "." {
		return ""
	}
	return name
}

func (r *Resolver) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(r.root, name)
}
