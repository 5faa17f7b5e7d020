// Package repository defines the persistence layer for users, bookings,
// reviews and hotels. Each entity has a MySQL implementation built on sqlx
// and a MongoDB implementation; both report failures through the sentinel
// values below so higher layers can distinguish between them without
// knowing which backend is in use.
package repository

import "errors"

// ErrNotFound is returned when a lookup by key matches no record.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when a user insert violates the unique email
// constraint.
var ErrEmailExists = errors.New("email already exists")

// ErrConflict is returned when a conditional update does not apply because
// the record is no longer in the expected state, such as cancelling a
// booking that another request has already cancelled.
var ErrConflict = errors.New("conflict")
