package tui

import (
	"slices"

	"github.com/charmbracelet/huh"
)

// themes maps the names accepted by the "theme" config key to huh themes.
var themes = map[string]func() *huh.Theme{
	"stamper":    stamperTheme,
	"base":       huh.ThemeBase,
	"base16":     huh.ThemeBase16,
	"catppuccin": huh.ThemeCatppuccin,
	"charm":      huh.ThemeCharm,
	"dracula":    huh.ThemeDracula,
}

// ValidThemes lists the theme names, default first.
var ValidThemes = []string{"stamper", "base", "base16", "catppuccin", "charm", "dracula"}

// currentTheme is the theme used by forms; nil means stamper.
var currentTheme *huh.Theme

// IsValidTheme reports whether name is a known theme. Names are case sensitive.
func IsValidTheme(name string) bool {
	return slices.Contains(ValidThemes, name)
}

// SetTheme selects the form theme. Empty or unknown names select stamper;
// the doctor command reports unknown names.
func SetTheme(name string) {
	currentTheme = nil
	if build, ok := themes[name]; ok {
		currentTheme = build()
	}
}

func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return stamperTheme()
	}
	return currentTheme
}
