// Package repository defines error types that are reused across multiple
// repositories. These sentinel values let handlers distinguish failure
// scenarios without parsing driver error strings.
package repository

import "errors"

// ErrConflict is returned when an insert or update collides with
// existing state, typically a unique key. Handlers should translate
// this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")
