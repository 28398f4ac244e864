// Package stamp implements the "stamp" command, the default stamper action.
package stamp
