package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Amber palette shared by the stamper form theme.
var (
	stamperAmberPrimary      = lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#f59e0b"}
	stamperAmberBright       = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"}
	stamperAmberAccent       = lipgloss.AdaptiveColor{Light: "#92400e", Dark: "#fcd34d"}
	stamperTextStrong        = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#f9fafb"}
	stamperTextNormal        = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#e5e7eb"}
	stamperTextMuted         = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	stamperTextFaint         = lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#6b7280"}
	stamperBorderFocused     = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#f59e0b"}
	stamperBorderNormal      = lipgloss.AdaptiveColor{Light: "#d1d5db", Dark: "#4b5563"}
	stamperButtonBg          = lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#f59e0b"}
	stamperButtonBgBlurred   = lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#374151"}
	stamperButtonText        = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#1f2937"}
	stamperButtonTextBlurred = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#d1d5db"}
	stamperError             = lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#f87171"}
)

// stamperTheme returns the default huh theme used by stamper prompts.
func stamperTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(stamperBorderFocused)
	t.Focused.Title = t.Focused.Title.Foreground(stamperAmberPrimary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(stamperTextMuted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(stamperError)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(stamperError)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(stamperAmberBright)
	t.Focused.Option = t.Focused.Option.Foreground(stamperTextNormal)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(stamperAmberAccent)
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(stamperTextNormal)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(stamperButtonText).
		Background(stamperButtonBg).
		Bold(true).
		Padding(0, 1)
	t.Focused.Next = t.Focused.FocusedButton
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(stamperButtonTextBlurred).
		Background(stamperButtonBgBlurred).
		Padding(0, 1)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(stamperAmberBright)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(stamperTextFaint)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(stamperAmberPrimary)
	t.Focused.TextInput.Text = t.Focused.TextInput.Text.Foreground(stamperTextStrong)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderForeground(stamperBorderNormal).BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(stamperTextMuted)
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()

	t.Help.ShortKey = t.Help.ShortKey.Foreground(stamperTextMuted)
	t.Help.ShortDesc = t.Help.ShortDesc.Foreground(stamperTextFaint)
	t.Help.ShortSeparator = t.Help.ShortSeparator.Foreground(stamperTextFaint)
	t.Help.FullKey = t.Help.FullKey.Foreground(stamperTextMuted)
	t.Help.FullDesc = t.Help.FullDesc.Foreground(stamperTextFaint)
	t.Help.FullSeparator = t.Help.FullSeparator.Foreground(stamperTextFaint)

	return t
}
