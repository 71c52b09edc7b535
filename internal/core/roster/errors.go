package roster

import "errors"

// Domain errors reported to the caller. None of these are fatal; every
// store operation either commits fully or returns exactly one of them
// before any mutation. Callers match with errors.Is and surface the
// wrapped message verbatim.
var (
	// ErrDuplicateEntity indicates a sameness-relation or phone-uniqueness
	// violation on add/edit.
	ErrDuplicateEntity = errors.New("duplicate person")

	// ErrEntityNotFound indicates a replace/remove target that is not
	// present in its collection.
	ErrEntityNotFound = errors.New("person not found")

	// ErrNoSuchSenior and ErrNoSuchCaregiver indicate an identifier that
	// does not resolve to a live entity.
	ErrNoSuchSenior    = errors.New("no such senior")
	ErrNoSuchCaregiver = errors.New("no such caregiver")

	// ErrAlreadyAssigned and ErrNotAssigned indicate a failed
	// assignment-state precondition.
	ErrAlreadyAssigned = errors.New("senior is already assigned to this caregiver")
	ErrNotAssigned     = errors.New("senior is not assigned to this caregiver")

	// ErrNothingPinned indicates an unpin request whose scope contained no
	// pinned entry.
	ErrNothingPinned = errors.New("nothing is pinned")

	// ErrNoPersonsSpecified indicates a delete request naming neither a
	// senior nor a caregiver.
	ErrNoPersonsSpecified = errors.New("no persons specified")

	// ErrCorruptState indicates malformed persisted data. It is fatal to
	// the load attempt only, never to the process.
	ErrCorruptState = errors.New("corrupt persisted state")
)
