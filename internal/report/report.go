// Package report renders stamp results for the console and for machines.
package report

import (
	"fmt"
	"io"

	"github.com/indaco/stamper/internal/printer"
	"github.com/indaco/stamper/internal/stamper"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// OutputFormat controls how results are displayed.
type OutputFormat string

const (
	// FormatText outputs the styled status message.
	FormatText OutputFormat = "text"

	// FormatJSON outputs a JSON object.
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat converts a string to OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (available: text, json)", s)
	}
}

// Formatter writes stamp results in a fixed format.
type Formatter struct {
	format OutputFormat
}

// NewFormatter creates a new Formatter with the specified output format.
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{format: format}
}

// Format renders res. message is the status line the stamper reported;
// when empty the message derived from the result state is used.
func (f *Formatter) Format(res stamper.Result, message string) (string, error) {
	if message == "" {
		message = res.Message()
	}
	if f.format == FormatJSON {
		out, err := JSON(res, message)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	return Styled(res.State, message) + "\n", nil
}

// Print writes the rendered result to w.
func (f *Formatter) Print(w io.Writer, res stamper.Result, message string) error {
	out, err := f.Format(res, message)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// Styled colors message according to state.
func Styled(state stamper.State, message string) string {
	switch state {
	case stamper.Stale:
		return printer.Success(message)
	case stamper.AlreadyCurrent:
		return printer.Info(message)
	default:
		return printer.Warning(message)
	}
}

// JSON builds the machine-readable form of res, indented and newline terminated.
func JSON(res stamper.Result, message string) ([]byte, error) {
	fields := []struct {
		path  string
		value any
	}{
		{"document", res.Document},
		{"coordinate", res.Coordinate.String()},
		{"state", res.State.String()},
		{"current", nullIfEmpty(res.Current)},
		{"target", res.Target()},
		{"message", message},
		{"written", res.Written},
	}

	out := []byte("{}")
	for _, field := range fields {
		var err error
		out, err = sjson.SetBytes(out, field.path, field.value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", field.path, err)
		}
	}
	return pretty.Pretty(out), nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
