// Package initialize implements the "init" command, which writes a
// .stamper.yaml for the current project.
package initialize

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/stamper/internal/clix"
	"github.com/indaco/stamper/internal/config"
	"github.com/indaco/stamper/internal/core"
	"github.com/indaco/stamper/internal/logging"
	"github.com/indaco/stamper/internal/printer"
	"github.com/indaco/stamper/internal/project"
	"github.com/indaco/stamper/internal/tui"
	"github.com/urfave/cli/v3"
)

// isInteractive reports whether the init prompt can be shown.
var isInteractive = tui.IsInteractive

// Run returns the "init" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Create a .stamper.yaml for the current project",
		UsageText: "stamper init [--yes] [--force] [--group g] [--name a] [--readme path] [--manifest file]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Accept detected defaults without prompting",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing configuration file",
			},
			&cli.StringFlag{
				Name:  "group",
				Usage: "Artifact group",
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "Artifact id",
			},
			&cli.StringFlag{
				Name:  "readme",
				Usage: "Document holding the dependency snippet",
				Value: config.DefaultReadme,
			},
			&cli.StringFlag{
				Name:  "manifest",
				Usage: "File the project version is read from (default: first detected)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInitCmd(ctx, cmd)
		},
	}
}

func runInitCmd(ctx context.Context, cmd *cli.Command) error {
	path := clix.ConfigPath(cmd)
	if _, err := os.Stat(path); err == nil && !cmd.Bool("force") {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	root, err := clix.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	resolver := project.NewResolver(core.NewOSFileSystem(), root, logging.FromContext(ctx))
	sources := resolver.Detect(ctx)

	answers := defaultAnswers(ctx, cmd, resolver, sources)
	if !cmd.Bool("yes") && isInteractive() {
		answers, err = tui.RunInitFormFn(answers, manifestOptions(sources))
		if err != nil {
			return fmt.Errorf("init prompt failed: %w", err)
		}
	}

	cfg := BuildConfig(answers)
	if err := config.SaveConfigFn(cfg, path); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Created %s", path))
	if len(sources) > 0 {
		fmt.Println(printer.Faint("Detected version sources:"))
		fmt.Print(FormatSources(sources))
	}
	if cfg.Group == "" || cfg.Name == "" {
		printer.PrintWarning("Group or name is empty; edit the file or set STAMPER_GROUP and STAMPER_NAME")
	}
	return nil
}

// defaultAnswers merges flags over what the project layout suggests.
func defaultAnswers(ctx context.Context, cmd *cli.Command, resolver *project.Resolver, sources []project.Source) tui.InitAnswers {
	group, name := resolver.Identity(ctx)
	answers := tui.InitAnswers{
		Group:  group,
		Name:   name,
		Readme: cmd.String("readme"),
	}
	if v := cmd.String("group"); v != "" {
		answers.Group = v
	}
	if v := cmd.String("name"); v != "" {
		answers.Name = v
	}

	switch {
	case cmd.String("manifest") != "":
		answers.Manifest = cmd.String("manifest")
	case len(sources) > 0:
		answers.Manifest = sources[0].File
	}
	return answers
}

// BuildConfig turns init answers into the configuration to save.
func BuildConfig(answers tui.InitAnswers) *config.Config {
	cfg := &config.Config{
		Group:  answers.Group,
		Name:   answers.Name,
		Readme: answers.Readme,
	}
	if cfg.Readme == "" {
		cfg.Readme = config.DefaultReadme
	}
	if answers.Manifest != "" {
		cfg.Manifest = &config.ManifestConfig{Path: answers.Manifest}
	}
	return cfg
}
