// Package doctor implements the "doctor" command.
package doctor

import (
	"context"
	"fmt"

	"github.com/indaco/stamper/internal/clix"
	"github.com/indaco/stamper/internal/config"
	"github.com/indaco/stamper/internal/core"
	"github.com/indaco/stamper/internal/printer"
	"github.com/urfave/cli/v3"
)

// Run returns the "doctor" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "doctor",
		Aliases:   []string{"validate"},
		Usage:     "Check the configuration, README and version source",
		UsageText: "stamper doctor [--quiet]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only print problems and the summary",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDoctorCmd(ctx, cmd, cfg)
		},
	}
}

func runDoctorCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	rootDir, err := clix.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	validator := config.NewValidator(core.NewOSFileSystem(), cfg, clix.ConfigPath(cmd), rootDir)
	results, err := validator.Validate(ctx)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	quiet := cmd.Bool("quiet")
	for _, r := range results {
		switch {
		case r.Warning:
			fmt.Printf("%s %s: %s\n", printer.WarningBadge("!"), r.Category, r.Message)
		case !r.Passed:
			fmt.Printf("%s %s: %s\n", printer.Error("✗"), r.Category, r.Message)
		case !quiet:
			fmt.Printf("%s %s: %s\n", printer.SuccessBadge("✓"), r.Category, printer.Faint(r.Message))
		}
	}

	errs := config.ErrorCount(results)
	warnings := config.WarningCount(results)
	summary := fmt.Sprintf("%d check(s), %d error(s), %d warning(s)", len(results), errs, warnings)

	if config.HasErrors(results) {
		printer.PrintError(summary)
		return fmt.Errorf("configuration has %d error(s)", errs)
	}
	printer.PrintSuccess(summary)
	return nil
}
