package initialize

import (
	"strings"

	"github.com/indaco/stamper/internal/project"
	"github.com/indaco/stamper/internal/tui"
)

// manifestOptions maps detected sources to prompt options.
func manifestOptions(sources []project.Source) []tui.ManifestOption {
	options := make([]tui.ManifestOption, 0, len(sources))
	for _, s := range sources {
		options = append(options, tui.ManifestOption{
			Label: s.Label + " " + s.Version,
			Path:  s.File,
		})
	}
	return options
}

// FormatSources formats the detected sources for display.
func FormatSources(sources []project.Source) string {
	if len(sources) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, s := range sources {
		sb.WriteString("  - ")
		sb.WriteString(s.Version)
		sb.WriteString(" from ")
		sb.WriteString(s.File)
		sb.WriteString(" (")
		sb.WriteString(s.Label)
		sb.WriteString(")\n")
	}

	return sb.String()
}
