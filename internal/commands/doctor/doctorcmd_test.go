package doctor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/indaco/stamper/internal/config"
	"github.com/indaco/stamper/internal/testutils"
	"github.com/urfave/cli/v3"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCLI_DoctorCommand_Valid(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, config.ConfigFileName), "group: com.example\nname: lib\nmanifest:\n  path: package.json\n")
	writeFile(t, filepath.Join(tmpDir, "package.json"), `{"version": "1.0.0"}`)
	testutils.WriteTempReadme(t, tmpDir, "com.example:lib:1.0.0\n")

	cfg, err := config.LoadConfigFn(filepath.Join(tmpDir, config.ConfigFileName))
	if err != nil {
		t.Fatal(err)
	}
	appCli := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

	output, err := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, appCli, []string{"stamper", "doctor"}, tmpDir)
	})
	if err != nil {
		t.Fatalf("Failed to capture stdout: %v", err)
	}

	for _, want := range []string{"YAML Syntax", "Coordinate", "Readme: README.md found", "0 error(s)"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got %q", want, output)
		}
	}
}

func TestCLI_DoctorCommand_Quiet(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, config.ConfigFileName), "group: com.example\nname: lib\nversion: 1.0.0\n")
	testutils.WriteTempReadme(t, tmpDir, "com.example:lib:1.0.0\n")

	cfg := &config.Config{Group: "com.example", Name: "lib", Version: "1.0.0", Readme: "README.md"}
	appCli := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

	output, err := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, appCli, []string{"stamper", "doctor", "--quiet"}, tmpDir)
	})
	if err != nil {
		t.Fatalf("Failed to capture stdout: %v", err)
	}

	if strings.Contains(output, "✓") {
		t.Errorf("quiet output should not list passing checks, got %q", output)
	}
	if !strings.Contains(output, "0 error(s)") {
		t.Errorf("expected summary, got %q", output)
	}
}

func TestCLI_DoctorCommand_Errors(t *testing.T) {
	tests := []struct {
		name       string
		cfg        *config.Config
		readme     bool
		wantOutput string
	}{
		{
			name:       "missing group",
			cfg:        &config.Config{Name: "lib", Version: "1.0.0", Readme: "README.md"},
			readme:     true,
			wantOutput: "group is not set",
		},
		{
			name:       "missing readme",
			cfg:        &config.Config{Group: "com.example", Name: "lib", Version: "1.0.0", Readme: "README.md"},
			wantOutput: "README.md does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			if tt.readme {
				testutils.WriteTempReadme(t, tmpDir, "x\n")
			}
			appCli := testutils.BuildCLIForTests([]*cli.Command{Run(tt.cfg)})

			var runErr error
			output, err := testutils.CaptureStdout(func() {
				runErr = testutils.RunCLITestAllowError(t, appCli, []string{"stamper", "doctor"}, tmpDir)
			})
			if err != nil {
				t.Fatalf("Failed to capture stdout: %v", err)
			}

			if runErr == nil || !strings.Contains(runErr.Error(), "error(s)") {
				t.Fatalf("expected configuration error, got %v", runErr)
			}
			if !strings.Contains(output, tt.wantOutput) {
				t.Errorf("expected output to contain %q, got %q", tt.wantOutput, output)
			}
		})
	}
}
