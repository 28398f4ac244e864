package stamp

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/indaco/stamper/internal/clix"
	"github.com/indaco/stamper/internal/config"
	"github.com/indaco/stamper/internal/core"
	"github.com/indaco/stamper/internal/logging"
	"github.com/indaco/stamper/internal/report"
	"github.com/indaco/stamper/internal/stamper"
	"github.com/urfave/cli/v3"
)

// ErrStale is returned by --check when the README references an older version.
var ErrStale = errors.New("README is out of date")

// Run returns the "stamp" command.
func Run(cfg *config.Config) *cli.Command {
	cmdFlags := clix.CoordinateFlags()
	cmdFlags = append(cmdFlags,
		&cli.BoolFlag{
			Name:  "check",
			Usage: "Do not write; fail if the README references a different version",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: text, json",
			Value:   "text",
		},
	)

	return &cli.Command{
		Name:  "stamp",
		Usage: "Update the dependency reference in the README to the project version",
		UsageText: `stamper stamp [--group g] [--name a] [--version v] [--check] [--format text|json]

Finds the first group:name:<version> reference in the README and rewrites
its version. Nothing is written when the reference is missing or current.`,
		Flags: cmdFlags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runStampCmd(ctx, cmd, cfg)
		},
	}
}

// runStampCmd stamps (or checks) the README of the current project.
func runStampCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	format, err := report.ParseOutputFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	fs := core.NewOSFileSystem()
	p, err := clix.ResolveProject(ctx, cmd, cfg, fs)
	if err != nil {
		return err
	}

	var reported string
	s := stamper.New(fs, func(msg string) { reported = msg }, stamper.WithLogger(logging.FromContext(ctx)))
	formatter := report.NewFormatter(format)

	if cmd.Bool("check") {
		res, err := s.Inspect(ctx, p.Coordinate, p.Readme)
		if err != nil {
			return err
		}
		if err := formatter.Print(os.Stdout, res, checkMessage(res)); err != nil {
			return err
		}
		if res.State == stamper.Stale {
			return fmt.Errorf("%w: %s references %s, want %s", ErrStale, res.Document, res.Current, res.Target())
		}
		return nil
	}

	res, err := s.Apply(ctx, p.Coordinate, p.Readme)
	if err != nil {
		return err
	}
	return formatter.Print(os.Stdout, res, reported)
}

// checkMessage describes res without claiming a write happened.
func checkMessage(res stamper.Result) string {
	if res.State == stamper.Stale {
		return fmt.Sprintf("Version in %s is %s, expected %s", res.Document, res.Current, res.Target())
	}
	return res.Message()
}
