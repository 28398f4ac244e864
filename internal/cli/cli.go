// Package cli assembles the stamper root command.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/stamper/internal/commands/doctor"
	"github.com/indaco/stamper/internal/commands/initialize"
	"github.com/indaco/stamper/internal/commands/show"
	"github.com/indaco/stamper/internal/commands/stamp"
	"github.com/indaco/stamper/internal/config"
	"github.com/indaco/stamper/internal/logging"
	"github.com/indaco/stamper/internal/printer"
	"github.com/indaco/stamper/internal/tui"
	"github.com/indaco/stamper/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds and returns the root CLI command.
// cfg is filled from the --config file before any subcommand runs, so
// subcommands must only read it inside their actions.
func New(cfg *config.Config) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "stamper",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Keep the dependency snippet in your README on the released version",
		EnableShellCompletion: true,
		DefaultCommand:        "stamp",
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to the configuration file",
				DefaultText: config.ConfigFileName,
			},
			&urfavecli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
			&urfavecli.BoolFlag{
				Name:  "verbose",
				Usage: "Log diagnostic details to stderr",
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(cmd.Bool("no-color"))

			logger := logging.New(os.Stderr, cmd.Bool("verbose"))
			ctx = logging.WithLogger(ctx, logger)

			loaded, err := config.LoadConfigFn(cmd.String("config"))
			if err != nil {
				return ctx, err
			}
			*cfg = *loaded
			tui.SetTheme(cfg.Theme)

			logger.Debug("configuration loaded", "group", cfg.Group, "name", cfg.Name, "readme", cfg.Readme)
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			stamp.Run(cfg),
			show.Run(cfg),
			initialize.Run(),
			doctor.Run(cfg),
		},
	}
}
