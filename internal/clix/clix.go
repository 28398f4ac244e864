// Package clix holds the flag plumbing shared by stamper commands.
package clix

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/stamper/internal/config"
	"github.com/indaco/stamper/internal/coordinate"
	"github.com/indaco/stamper/internal/core"
	"github.com/indaco/stamper/internal/logging"
	"github.com/indaco/stamper/internal/project"
	"github.com/urfave/cli/v3"
)

// Getwd returns the project root. Tests replace it.
var Getwd = os.Getwd

// CoordinateFlags returns the flags overriding the configured coordinate.
func CoordinateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "group",
			Aliases: []string{"g"},
			Usage:   "Artifact group (overrides config and STAMPER_GROUP)",
		},
		&cli.StringFlag{
			Name:    "name",
			Aliases: []string{"n"},
			Usage:   "Artifact id (overrides config and STAMPER_NAME)",
		},
		&cli.StringFlag{
			Name:    "version",
			Aliases: []string{"V"},
			Usage:   "Target version (overrides config, manifest and STAMPER_VERSION)",
		},
		&cli.StringFlag{
			Name:  "coordinate",
			Usage: "Full reference group:name:version; --group, --name and --version take precedence",
		},
		&cli.StringFlag{
			Name:    "readme",
			Aliases: []string{"r"},
			Usage:   "Document to stamp",
		},
	}
}

// ApplyFlags returns a copy of cfg with the coordinate flags applied.
func ApplyFlags(cmd *cli.Command, cfg *config.Config) (*config.Config, error) {
	out := &config.Config{}
	if cfg != nil {
		*out = *cfg
	}

	if ref := cmd.String("coordinate"); ref != "" {
		c, err := coordinate.Parse(ref)
		if err != nil {
			return nil, err
		}
		out.Group, out.Name, out.Version = c.Group, c.Artifact, c.Version
	}

	if v := cmd.String("group"); v != "" {
		out.Group = v
	}
	if v := cmd.String("name"); v != "" {
		out.Name = v
	}
	if v := cmd.String("version"); v != "" {
		out.Version = v
	}
	if v := cmd.String("readme"); v != "" {
		out.Readme = config.NormalizeReadmePath(v)
	}
	return out, nil
}

// ResolveProject applies the coordinate flags to cfg and resolves the
// project rooted at the working directory.
func ResolveProject(ctx context.Context, cmd *cli.Command, cfg *config.Config, fs core.FileSystem) (*project.Project, error) {
	effective, err := ApplyFlags(cmd, cfg)
	if err != nil {
		return nil, err
	}

	root, err := Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return project.NewResolver(fs, root, logging.FromContext(ctx)).Resolve(ctx, effective)
}

// ConfigPath returns the --config value, or the default config file name.
func ConfigPath(cmd *cli.Command) string {
	if p := cmd.String("config"); p != "" {
		return p
	}
	return config.ConfigFileName
}
