// Package gitcfg wraps the gopasspw/gitconfig parser behind the small
// key-value surface the identity layer needs.
//
// Two scopes matter here:
//
//   - global: ~/.gitconfig (or $XDG_CONFIG_HOME/git/config), where identity
//     records live under identity.<name>.<field>
//   - local: <gitdir>/config of the enclosing repository, where the active
//     identity's settings are mirrored
//
// The adapter exposes get/set/unset per scope, prefix listing, and a
// remove-section helper built from listing plus per-key unsets. The Store
// interface exists so the identity layer can be tested against an in-memory
// implementation.
package gitcfg
