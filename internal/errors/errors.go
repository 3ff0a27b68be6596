package errors

import "errors"

// Identity errors indicate issues with stored identity records.
var (
	// ErrUndefinedIdentity indicates the referenced identity has no stored
	// display name and therefore does not exist.
	ErrUndefinedIdentity = errors.New("undefined identity")

	// ErrInvalidIdentityName indicates the identity name would not survive
	// the identity.<name>.<field> keyspace (dots, whitespace, empty).
	ErrInvalidIdentityName = errors.New("invalid identity name")
)

// Activation errors indicate issues with the workspace-local state.
var (
	// ErrNoActiveIdentity indicates no identity is currently activated in
	// this repository.
	ErrNoActiveIdentity = errors.New("no identity set")

	// ErrNotInRepository indicates the current directory is not inside a
	// git repository, so there is no local configuration to write to.
	ErrNotInRepository = errors.New("not inside a git repository")
)
