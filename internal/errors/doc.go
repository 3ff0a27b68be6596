// Package errors provides typed error values for the git-identity application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Usage
//
// Return errors from internal packages:
//
//	if !id.Exists() {
//	    return fmt.Errorf("%w: %s", errors.ErrUndefinedIdentity, name)
//	}
//
// Handle errors in the CLI layer:
//
//	if errors.Is(err, iderrors.ErrUndefinedIdentity) {
//	    // Show user-friendly message, exit zero
//	}
//
// Undefined-identity and no-active-identity conditions are best-effort
// reporting cases: the CLI prints a plain message and exits zero. Only
// missing arguments and store I/O failures produce a non-zero exit.
package errors
