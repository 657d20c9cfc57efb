package spec

import "errors"

// Domain errors for the spec package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, spec.ErrInvalidIdentifier) {
//	    // handle malformed ID
//	}
var (
	// ErrInvalidIdentifier is returned when a spec ID does not match the
	// required <namespace>/<name> pattern.
	ErrInvalidIdentifier = errors.New("spec: invalid identifier")

	// ErrInvalidSpec is returned when spec validation fails for reasons
	// other than the identifier (missing name or category).
	ErrInvalidSpec = errors.New("spec: invalid")

	// ErrIdentifierCollision is reported when a discovery contributor
	// attempts to register an ID already owned by a different contributor.
	// The first registration wins.
	ErrIdentifierCollision = errors.New("spec: identifier collision")

	// ErrContributorFailure is reported when a discovery contributor fails
	// while producing specs. Other contributors are unaffected.
	ErrContributorFailure = errors.New("spec: contributor failure")

	// ErrInvalidConfig is returned when a device configuration does not
	// satisfy the spec's setup fields.
	ErrInvalidConfig = errors.New("spec: invalid config")

	// ErrSpecNotFound is returned by the persistence layer when a stored
	// spec does not exist. Store lookups never return it: an unknown ID is
	// a normal miss handled by the Resolver, not an error.
	ErrSpecNotFound = errors.New("spec: not found")
)
