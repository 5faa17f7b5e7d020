// Package service holds the business rules for authentication, bookings,
// reviews and hotels. Services keep no entity state between calls; every
// operation re-reads from its store.
package service

import (
	"errors"
	"fmt"
)

// ErrDuplicateEmail is returned by Signup when the email is taken.
var ErrDuplicateEmail = errors.New("email already exists")

// ErrInvalidCredentials is returned by Login for an unknown email and for a
// wrong password alike.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrBookingNotFound is returned when cancelling an unknown booking.
var ErrBookingNotFound = errors.New("booking not found")

// ErrAlreadyCancelled is returned when cancelling a cancelled booking.
var ErrAlreadyCancelled = errors.New("booking is already cancelled")

// PersistenceError wraps a failure of the underlying store.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *PersistenceError) Unwrap() error { return e.Err }

func persistence(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
