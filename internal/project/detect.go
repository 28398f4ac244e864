package project

import (
	"context"
	"path/filepath"

	"github.com/indaco/stamper/internal/parser"
)

// Source is a version found in one of the well-known project files.
type Source struct {
	// File is the file name relative to the project root.
	File string

	// Label describes the ecosystem, e.g. "Gradle (gradle.properties)".
	Label string

	// Version is the extracted version string.
	Version string

	// Config is how the version was read.
	Config parser.FileConfig
}

// knownSources lists version files in priority order.
var knownSources = []struct {
	file  string
	label string
}{
	{".version", "sley (.version)"},
	{"gradle.properties", "Gradle (gradle.properties)"},
	{"build.gradle.kts", "Gradle Kotlin DSL (build.gradle.kts)"},
	{"build.gradle", "Gradle Groovy DSL (build.gradle)"},
	{"package.json", "Node.js (package.json)"},
	{"Cargo.toml", "Rust (Cargo.toml)"},
	{"pyproject.toml", "Python (pyproject.toml)"},
	{"Chart.yaml", "Helm (Chart.yaml)"},
	{"VERSION", "Plain text (VERSION)"},
	{"version.txt", "Plain text (version.txt)"},
}

// Detect searches the project root for version information in common project files.
// Sources are returned in priority order; unreadable or empty files are skipped.
func (r *Resolver) Detect(ctx context.Context) []Source {
	var sources []Source

	for _, known := range knownSources {
		path := filepath.Join(r.root, known.file)
		if !r.reader.Exists(ctx, path) {
			continue
		}

		cfg := parser.ConfigForFile(path)
		version, err := r.reader.Read(ctx, cfg)
		if err != nil || version == "" {
			r.logger.Debug("skipping version source", "file", known.file, "err", err)
			continue
		}

		sources = append(sources, Source{
			File:    known.file,
			Label:   known.label,
			Version: version,
			Config:  cfg,
		})
	}

	return sources
}
