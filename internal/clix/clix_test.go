package clix

import (
	"context"
	"errors"
	"testing"

	"github.com/indaco/stamper/internal/config"
	"github.com/indaco/stamper/internal/coordinate"
	"github.com/indaco/stamper/internal/core"
	"github.com/urfave/cli/v3"
)

// runWithFlags parses args with the coordinate flags and calls fn from the action.
func runWithFlags(t *testing.T, args []string, fn func(cmd *cli.Command) error) error {
	t.Helper()
	flags := append(CoordinateFlags(), &cli.StringFlag{Name: "config"})
	app := &cli.Command{
		Name:  "test",
		Flags: flags,
		Action: func(_ context.Context, cmd *cli.Command) error {
			return fn(cmd)
		},
	}
	return app.Run(context.Background(), append([]string{"test"}, args...))
}

func TestApplyFlags(t *testing.T) {
	base := &config.Config{Group: "com.example", Name: "lib", Version: "1.0.0", Readme: "README.md"}

	tests := []struct {
		name string
		args []string
		want config.Config
	}{
		{
			name: "no flags keeps config",
			want: *base,
		},
		{
			name: "individual flags",
			args: []string{"--group", "org.other", "--version", "2.0.0", "--readme", "docs/USAGE.md"},
			want: config.Config{Group: "org.other", Name: "lib", Version: "2.0.0", Readme: "docs/USAGE.md"},
		},
		{
			name: "coordinate flag",
			args: []string{"--coordinate", "io.acme:tool:3.1.4"},
			want: config.Config{Group: "io.acme", Name: "tool", Version: "3.1.4", Readme: "README.md"},
		},
		{
			name: "individual flags beat coordinate",
			args: []string{"--coordinate", "io.acme:tool:3.1.4", "--version", "3.2.0"},
			want: config.Config{Group: "io.acme", Name: "tool", Version: "3.2.0", Readme: "README.md"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runWithFlags(t, tt.args, func(cmd *cli.Command) error {
				got, err := ApplyFlags(cmd, base)
				if err != nil {
					return err
				}
				if *got != tt.want {
					t.Errorf("ApplyFlags() = %+v, want %+v", *got, tt.want)
				}
				return nil
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}

	if base.Group != "com.example" {
		t.Errorf("ApplyFlags mutated the input config: %+v", base)
	}
}

func TestApplyFlags_InvalidCoordinate(t *testing.T) {
	err := runWithFlags(t, []string{"--coordinate", "only:two"}, func(cmd *cli.Command) error {
		_, err := ApplyFlags(cmd, nil)
		return err
	})
	if !errors.Is(err, coordinate.ErrInvalidCoordinate) {
		t.Errorf("expected ErrInvalidCoordinate, got %v", err)
	}
}

func TestResolveProject(t *testing.T) {
	orig := Getwd
	Getwd = func() (string, error) { return "/work/lib", nil }
	t.Cleanup(func() { Getwd = orig })

	fs := core.NewMockFileSystem()
	fs.SetFile("/work/lib/.version", []byte("4.0.0\n"))

	err := runWithFlags(t, []string{"--group", "com.example"}, func(cmd *cli.Command) error {
		p, err := ResolveProject(context.Background(), cmd, &config.Config{}, fs)
		if err != nil {
			return err
		}
		want := coordinate.New("com.example", "lib", "4.0.0")
		if p.Coordinate != want {
			t.Errorf("Coordinate = %+v, want %+v", p.Coordinate, want)
		}
		if p.Readme != "/work/lib/README.md" {
			t.Errorf("Readme = %q", p.Readme)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConfigPath(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, config.ConfigFileName},
		{[]string{"--config", "ci/stamper.yaml"}, "ci/stamper.yaml"},
	}

	for _, tt := range tests {
		err := runWithFlags(t, tt.args, func(cmd *cli.Command) error {
			if got := ConfigPath(cmd); got != tt.want {
				t.Errorf("ConfigPath() = %q, want %q", got, tt.want)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}
