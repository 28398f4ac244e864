// Package coordinate models the group:artifact:version triple used in
// dependency declarations.
package coordinate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCoordinate is returned when a coordinate is missing a field or
// carries a colon inside its group or artifact.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate identifies a published artifact. Group and Artifact are the
// identity; Version is the value to stamp into documents.
type Coordinate struct {
	Group    string
	Artifact string
	Version  string
}

// New returns a coordinate for the given fields.
func New(group, artifact, version string) Coordinate {
	return Coordinate{Group: group, Artifact: artifact, Version: version}
}

// Parse builds a coordinate from a "group:artifact:version" reference.
func Parse(ref string) (Coordinate, error) {
	parts := strings.Split(strings.TrimSpace(ref), ":")
	if len(parts) != 3 {
		return Coordinate{}, fmt.Errorf("%w: %q is not in group:artifact:version form", ErrInvalidCoordinate, ref)
	}
	c := New(parts[0], parts[1], parts[2])
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}
	return c, nil
}

// Validate checks that every field is set and that group and artifact
// contain no colon.
func (c Coordinate) Validate() error {
	switch {
	case c.Group == "":
		return fmt.Errorf("%w: group is required", ErrInvalidCoordinate)
	case c.Artifact == "":
		return fmt.Errorf("%w: artifact name is required", ErrInvalidCoordinate)
	case c.Version == "":
		return fmt.Errorf("%w: version is required", ErrInvalidCoordinate)
	case strings.Contains(c.Group, ":"):
		return fmt.Errorf("%w: group %q must not contain ':'", ErrInvalidCoordinate, c.Group)
	case strings.Contains(c.Artifact, ":"):
		return fmt.Errorf("%w: artifact name %q must not contain ':'", ErrInvalidCoordinate, c.Artifact)
	}
	return nil
}

// Prefix returns the "group:artifact:" text that precedes a version token.
func (c Coordinate) Prefix() string {
	return c.Group + ":" + c.Artifact + ":"
}

// ExpectedFormat returns the placeholder form shown to users when no
// reference could be found.
func (c Coordinate) ExpectedFormat() string {
	return c.Prefix() + "x.y.z"
}

// String returns the full "group:artifact:version" reference.
func (c Coordinate) String() string {
	return c.Prefix() + c.Version
}

// WithVersion returns a copy of c targeting version.
func (c Coordinate) WithVersion(version string) Coordinate {
	c.Version = version
	return c
}
