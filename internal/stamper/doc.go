// Package stamper rewrites the version of a dependency reference embedded in
// a project document, typically the installation snippet of a README.
//
// The document is scanned for the first "group:artifact:<version>" reference.
// Exactly one of three outcomes is produced:
//
//   - NotFound: no reference exists; the document is left alone.
//   - AlreadyCurrent: the reference already carries the target version; no write happens.
//   - Stale: the version token is replaced in place and the document is written back.
//
// Every byte outside the version token is preserved. Only a missing document
// is an error; the other outcomes are reported through the injected Reporter.
package stamper
