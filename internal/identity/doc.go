// Package identity implements identity records and activation.
//
// An identity is a named bundle of commit-author settings stored in the
// global git configuration:
//
//	identity.<name>.name            display name
//	identity.<name>.email           email address
//	identity.<name>.signingkey      GPG key id (optional)
//	identity.<name>.sshkey          SSH key path or filename (optional)
//	identity.<name>.sshkeyverbosity SSH -v level, 0..2 (optional)
//
// An identity exists iff its display name is non-blank; all other fields
// are independently optional. Values are trimmed on read so a stored
// single space counts as unset.
//
// Activation mirrors one identity into the enclosing repository's local
// configuration (user.name, user.email, user.signingkey, commit.gpgsign,
// core.sshCommand) and records which identity is active in user.identity.
// The Store type handles the global records, the Activator the local
// mirror; both operate on a gitcfg.Store.
package identity
