package main

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/stamper/internal/cli"
	"github.com/indaco/stamper/internal/config"
	"github.com/indaco/stamper/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, printer.Error(err.Error()))
		os.Exit(1)
	}
}

// runCLI builds the root command and runs it with args.
func runCLI(args []string) error {
	cfg := &config.Config{}
	app := cli.New(cfg)
	return app.Run(context.Background(), args)
}
