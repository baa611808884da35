// Package repository defines the storage interfaces for the travel
// entities together with the sentinel errors shared by all backends.
// Handlers translate these into HTTP statuses: ErrNotFound into 404,
// ErrAlreadyExists into 409 and ErrUnavailable into 503.
package repository

import "errors"

// ErrNotFound is returned when a mutate-by-id operation targets a
// document that does not exist. Point lookups report absence with a nil
// record instead.
var ErrNotFound = errors.New("document not found")

// ErrAlreadyExists is returned when an insert collides with an existing
// document id.
var ErrAlreadyExists = errors.New("document already exists")

// ErrUnavailable is returned by every operation when the store
// connection was never established. The process keeps serving so that
// clients get a uniform 503 instead of per-operation error noise.
var ErrUnavailable = errors.New("document store unavailable")
