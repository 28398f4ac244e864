// Package parser reads values such as the project version or group from
// build manifests: JSON, YAML, TOML, Java-style properties, raw text files
// and regex-matched files. The project package uses it to supply the
// coordinate that gets stamped into the README.
package parser
