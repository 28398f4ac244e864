package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// InitAnswers holds the values collected by the init prompt.
type InitAnswers struct {
	Group    string
	Name     string
	Readme   string
	Manifest string
}

// ManifestOption is a selectable version source shown by the init prompt.
type ManifestOption struct {
	Label string
	Path  string
}

// RunInitFormFn runs the init prompt. It is a variable so tests can stub it.
var RunInitFormFn = RunInitForm

// RunInitForm asks for the coordinate and version source, starting from defaults.
// An empty Manifest answer means the version is passed on the command line.
func RunInitForm(defaults InitAnswers, manifests []ManifestOption) (InitAnswers, error) {
	answers := defaults

	options := make([]huh.Option[string], 0, len(manifests)+1)
	for _, m := range manifests {
		options = append(options, huh.NewOption(m.Label, m.Path))
	}
	options = append(options, huh.NewOption("None (pass --version when stamping)", ""))

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Group").
				Description("Artifact group, e.g. com.example").
				Value(&answers.Group).
				Validate(validateIdentifier("group")),
			huh.NewInput().
				Title("Artifact").
				Description("Artifact name, e.g. my-project").
				Value(&answers.Name).
				Validate(validateIdentifier("artifact")),
			huh.NewInput().
				Title("README").
				Description("Document holding the dependency snippet").
				Value(&answers.Readme),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Version source").
				Description("Where the project version is read from").
				Options(options...).
				Value(&answers.Manifest),
		),
	).WithTheme(currentThemeOrDefault())

	if err := form.Run(); err != nil {
		return InitAnswers{}, err
	}

	return answers, nil
}

func validateIdentifier(label string) func(string) error {
	return func(s string) error {
		switch {
		case strings.TrimSpace(s) == "":
			return errors.New(label + " is required")
		case strings.Contains(s, ":"):
			return errors.New(label + " must not contain ':'")
		}
		return nil
	}
}
