package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSeatClass     = errors.New("invalid seat class")
	ErrInvalidReferenceKind = errors.New("invalid reference entity kind")
	ErrValidation           = errors.New("validation error")
)

var (
	ErrFlightNotFound  = errors.New("flight not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrRoleNotFound    = errors.New("role not found")
	ErrEntityNotFound  = errors.New("reference entity not found")
)

var (
	ErrNoSeatsAvailable  = errors.New("no seats available in the requested class")
	ErrBookingCancelled  = errors.New("booking is already cancelled")
	ErrBookingNotPending = errors.New("booking is not in pending status")
	ErrSeatLocked        = errors.New("seat is held by another request")
)

// ErrReferenced blocks deletion of a reference entity while dependent rows
// still point at it; the wrapped message names the dependent table.
var ErrReferenced = errors.New("entity is referenced by dependent records")

func ReferencedBy(kind ReferenceKind, id int64, dependent string) error {
	return fmt.Errorf("%w: %s %d has %s", ErrReferenced, kind, id, dependent)
}

// ErrInventoryInconsistent means a seat counter disagrees with the booking
// ledger (a release would push available past total). Retrying cannot repair
// it; the flight's rows need operator attention.
var ErrInventoryInconsistent = errors.New("seat inventory inconsistent with booking ledger")

var (
	ErrNoStagedChange = errors.New("no staged role change for this administrator")
	ErrStaleProposal  = errors.New("staged role change no longer applies")
)

// ErrTransient marks store-level failures that the caller may retry
// unchanged. Every other error requires a different request to succeed.
var ErrTransient = errors.New("transient storage error")

func Transient(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrTransient, err)
}
