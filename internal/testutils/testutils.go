// Package testutils holds helpers shared by command tests.
package testutils

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"
)

// BuildCLIForTests wraps commands in a root command carrying the global flags.
func BuildCLIForTests(commands []*cli.Command) *cli.Command {
	return &cli.Command{
		Name: "stamper",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config"},
			&cli.BoolFlag{Name: "no-color"},
			&cli.BoolFlag{Name: "verbose"},
		},
		Commands: commands,
	}
}

// RunCLITest runs app with args inside workDir and fails the test on error.
func RunCLITest(t *testing.T, app *cli.Command, args []string, workDir string) {
	t.Helper()
	if err := RunCLITestAllowError(t, app, args, workDir); err != nil {
		t.Fatalf("app.Run(%v) failed: %v", args, err)
	}
}

// RunCLITestAllowError runs app with args inside workDir and returns its error.
func RunCLITestAllowError(t *testing.T, app *cli.Command, args []string, workDir string) error {
	t.Helper()
	t.Chdir(workDir)
	return app.Run(context.Background(), args)
}

// CaptureStdout returns everything fn writes to os.Stdout.
func CaptureStdout(fn func()) (string, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}

	orig := os.Stdout
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.Bytes()
	}()

	defer func() { os.Stdout = orig }()
	fn()

	_ = w.Close()
	out := <-done
	_ = r.Close()
	return string(out), nil
}

// WriteTempConfig writes content to a .stamper.yaml in a new temp dir and returns its path.
func WriteTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".stamper.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// WriteTempReadme writes content to README.md inside dir and returns its path.
func WriteTempReadme(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "README.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	return path
}

// ReadTempReadme returns the README.md content inside dir.
func ReadTempReadme(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "README.md"))
	if err != nil {
		t.Fatalf("failed to read README: %v", err)
	}
	return string(data)
}
