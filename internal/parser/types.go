package parser

// Format names how a manifest is decoded.
type Format string

// Supported formats.
const (
	FormatJSON       Format = "json"       // package.json, composer.json
	FormatYAML       Format = "yaml"       // Chart.yaml, pubspec.yaml
	FormatTOML       Format = "toml"       // Cargo.toml, pyproject.toml
	FormatProperties Format = "properties" // gradle.properties
	FormatRaw        Format = "raw"        // .version, VERSION
	FormatRegex      Format = "regex"      // build.gradle(.kts)
)

// IsValid reports whether f is one of the supported formats.
func (f Format) IsValid() bool {
	_, ok := decoders[f]
	return ok
}

// FileConfig describes where a value lives in a file.
type FileConfig struct {
	Path   string
	Format Format

	// Field is a dot path ("package.version") for structured formats,
	// or the key for properties.
	Field string

	// Pattern is a regular expression whose first group is the value.
	Pattern string
}
