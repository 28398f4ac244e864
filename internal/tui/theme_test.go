package tui

import (
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestStamperTheme(t *testing.T) {
	theme := stamperTheme()
	if theme == nil {
		t.Fatal("stamperTheme() returned nil")
	}

	if !theme.Focused.Title.GetBold() {
		t.Error("focused title should be bold")
	}
	if theme.Focused.Base.GetBorderStyle() != lipgloss.RoundedBorder() {
		t.Error("focused base should use a rounded border")
	}

	_, fRight, _, fLeft := theme.Focused.FocusedButton.GetPadding()
	_, bRight, _, bLeft := theme.Focused.BlurredButton.GetPadding()
	if fLeft != 1 || fRight != 1 {
		t.Errorf("focused button padding = %d/%d, want 1/1", fLeft, fRight)
	}
	if fLeft != bLeft || fRight != bRight {
		t.Error("focused and blurred buttons should share padding")
	}

	if theme.Help.ShortKey.Render("enter") == "" || theme.Help.FullDesc.Render("submit") == "" {
		t.Error("help styles should render text")
	}
}

func TestStamperPalette(t *testing.T) {
	palette := map[string]lipgloss.AdaptiveColor{
		"primary":        stamperAmberPrimary,
		"bright":         stamperAmberBright,
		"accent":         stamperAmberAccent,
		"textStrong":     stamperTextStrong,
		"textNormal":     stamperTextNormal,
		"textMuted":      stamperTextMuted,
		"textFaint":      stamperTextFaint,
		"borderFocused":  stamperBorderFocused,
		"borderNormal":   stamperBorderNormal,
		"buttonBg":       stamperButtonBg,
		"buttonBgBlur":   stamperButtonBgBlurred,
		"buttonText":     stamperButtonText,
		"buttonTextBlur": stamperButtonTextBlurred,
		"error":          stamperError,
	}

	for name, c := range palette {
		if !hexColor.MatchString(c.Light) || !hexColor.MatchString(c.Dark) {
			t.Errorf("%s = %+v, want #rrggbb for light and dark", name, c)
		}
	}
}
