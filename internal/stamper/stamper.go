package stamper

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/indaco/stamper/internal/coordinate"
	"github.com/indaco/stamper/internal/core"
	"github.com/indaco/stamper/internal/logging"
)

// ErrMissingDocument is matched by errors.Is when the document does not exist.
var ErrMissingDocument = errors.New("document not found")

// MissingDocumentError is returned by Apply and Inspect when the document
// file does not exist.
type MissingDocumentError struct {
	Path string
}

func (e *MissingDocumentError) Error() string {
	return fmt.Sprintf("%s file not found in the project root directory.", filepath.Base(e.Path))
}

// Is makes errors.Is(err, ErrMissingDocument) true.
func (e *MissingDocumentError) Is(target error) bool {
	return target == ErrMissingDocument
}

// Reporter receives the single status message of an Apply call.
type Reporter func(message string)

// Result is the outcome of inspecting or stamping a document.
type Result struct {
	State State
	// Document is the base name of the document path.
	Document string
	// Coordinate is the reference the document was checked against.
	Coordinate coordinate.Coordinate
	// Current is the version token found in the document, empty on NotFound.
	Current string
	// Offset is the byte offset of the version token, -1 on NotFound.
	Offset int
	// Written reports whether the document was rewritten.
	Written bool
}

// Target returns the version being stamped.
func (r Result) Target() string {
	return r.Coordinate.Version
}

// Message returns the status message for the result's state.
func (r Result) Message() string {
	switch r.State {
	case AlreadyCurrent:
		return fmt.Sprintf("No update needed. Version in %s is already %s", r.Document, r.Target())
	case Stale:
		return fmt.Sprintf("Successfully updated version in %s to %s", r.Document, r.Target())
	default:
		return fmt.Sprintf("No matching dependency reference found in %s. Expected format: %s",
			r.Document, r.Coordinate.ExpectedFormat())
	}
}

// Option configures a Stamper.
type Option func(*Stamper)

// WithLogger sets the diagnostic logger. Status messages still go to the Reporter.
func WithLogger(l *log.Logger) Option {
	return func(s *Stamper) {
		if l != nil {
			s.logger = l
		}
	}
}

// Stamper updates the version of a dependency reference inside a document.
// It keeps no state between calls; concurrent calls against the same path
// must be serialized by the caller.
type Stamper struct {
	fs     core.FileSystem
	report Reporter
	logger *log.Logger
}

// New creates a Stamper reading and writing through fs and reporting through report.
// A nil report discards messages.
func New(fs core.FileSystem, report Reporter, opts ...Option) *Stamper {
	if report == nil {
		report = func(string) {}
	}
	s := &Stamper{
		fs:     fs,
		report: report,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Inspect classifies the document at path against c without writing or reporting.
func (s *Stamper) Inspect(ctx context.Context, c coordinate.Coordinate, path string) (Result, error) {
	res, _, _, err := s.inspect(ctx, c, path)
	return res, err
}

// Apply stamps c.Version into the first reference to c in the document at path.
// The document is written only when the reference is stale, and exactly one
// message is reported unless an error is returned.
func (s *Stamper) Apply(ctx context.Context, c coordinate.Coordinate, path string) (Result, error) {
	res, doc, m, err := s.inspect(ctx, c, path)
	if err != nil {
		return res, err
	}

	if res.State == Stale {
		updated := Replace(doc, m, c.Version)
		if err := s.fs.WriteFile(ctx, path, updated, core.PermPublicRead); err != nil {
			return res, fmt.Errorf("failed to write %q: %w", path, err)
		}
		res.Written = true
		s.logger.Debug("document rewritten", "path", path, "from", res.Current, "to", c.Version)
	}

	s.report(res.Message())
	return res, nil
}

func (s *Stamper) inspect(ctx context.Context, c coordinate.Coordinate, path string) (Result, []byte, Match, error) {
	res := Result{Document: filepath.Base(path), Coordinate: c, Offset: -1}

	if err := c.Validate(); err != nil {
		return res, nil, Match{}, err
	}

	info, err := s.fs.Stat(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return res, nil, Match{}, &MissingDocumentError{Path: path}
		}
		return res, nil, Match{}, fmt.Errorf("failed to stat %q: %w", path, err)
	}
	if info.IsDir() {
		return res, nil, Match{}, fmt.Errorf("%q is a directory, not a document", path)
	}

	doc, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		return res, nil, Match{}, fmt.Errorf("failed to read %q: %w", path, err)
	}

	m := Find(doc, c)
	res.State = Classify(m, c.Version)
	if m.Found {
		res.Current = m.Token
		res.Offset = m.Start
	}

	s.logger.Debug("document inspected", "path", path, "prefix", c.Prefix(), "state", res.State, "current", res.Current)
	return res, doc, m, nil
}
