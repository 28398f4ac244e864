// Package show implements the "show" command.
package show

import (
	"context"
	"fmt"

	"github.com/indaco/stamper/internal/clix"
	"github.com/indaco/stamper/internal/config"
	"github.com/indaco/stamper/internal/core"
	"github.com/indaco/stamper/internal/logging"
	"github.com/indaco/stamper/internal/printer"
	"github.com/indaco/stamper/internal/report"
	"github.com/indaco/stamper/internal/stamper"
	"github.com/urfave/cli/v3"
)

// Run returns the "show" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Display the resolved coordinate and the README state",
		UsageText: "stamper show [--group g] [--name a] [--version v] [--readme path]",
		Flags:     clix.CoordinateFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runShowCmd(ctx, cmd, cfg)
		},
	}
}

func runShowCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	fs := core.NewOSFileSystem()
	p, err := clix.ResolveProject(ctx, cmd, cfg, fs)
	if err != nil {
		return err
	}

	res, err := stamper.New(fs, nil, stamper.WithLogger(logging.FromContext(ctx))).Inspect(ctx, p.Coordinate, p.Readme)
	if err != nil {
		return err
	}

	current := res.Current
	if current == "" {
		current = "-"
	}

	fmt.Printf("%s %s\n", printer.Faint("Coordinate:"), printer.Bold(p.Coordinate.String()))
	fmt.Printf("%s %s\n", printer.Faint("Version from:"), p.VersionSource)
	fmt.Printf("%s %s\n", printer.Faint("README:"), p.Readme)
	fmt.Printf("%s %s\n", printer.Faint("Current:"), current)
	fmt.Printf("%s %s\n", printer.Faint("State:"), report.Styled(res.State, res.State.String()))
	return nil
}
