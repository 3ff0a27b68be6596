package identity

import (
	"fmt"
	"sort"
	"strings"

	iderrors "gitid/internal/errors"
	"gitid/internal/gitcfg"
)

const sectionIdentity = "identity"

// Store reads and writes identity records in the global scope.
type Store struct {
	cfg gitcfg.Store
}

// NewStore returns a Store over cfg.
func NewStore(cfg gitcfg.Store) *Store {
	return &Store{cfg: cfg}
}

func key(name, field string) string {
	return sectionIdentity + "." + name + "." + field
}

// Lookup returns the stored fields for name. Absent fields (and absent
// identities) come back blank; check Exists() on the result.
func (s *Store) Lookup(name string) Identity {
	get := func(field string) string {
		return strings.TrimSpace(s.cfg.GetGlobal(key(name, field)))
	}
	return Identity{
		Name:         name,
		DisplayName:  get(fieldName),
		Email:        get(fieldEmail),
		SigningKey:   get(fieldSigningKey),
		SSHKey:       get(fieldSSHKey),
		SSHVerbosity: get(fieldSSHVerbosity),
	}
}

// Define upserts the record for name with a display name and email.
// Optional keys are attached separately via AttachSSH and AttachGPG.
func (s *Store) Define(name, displayName, email string) error {
	if !IsValidName(name) {
		return fmt.Errorf("%w: %q", iderrors.ErrInvalidIdentityName, name)
	}
	if err := s.cfg.SetGlobal(key(name, fieldName), displayName); err != nil {
		return fmt.Errorf("storing display name: %w", err)
	}
	if err := s.cfg.SetGlobal(key(name, fieldEmail), email); err != nil {
		return fmt.Errorf("storing email: %w", err)
	}
	return nil
}

// AttachGPG sets the GPG signing key on an existing identity.
func (s *Store) AttachGPG(name, keyID string) error {
	if !s.Lookup(name).Exists() {
		return fmt.Errorf("%w: %s", iderrors.ErrUndefinedIdentity, name)
	}
	if err := s.cfg.SetGlobal(key(name, fieldSigningKey), keyID); err != nil {
		return fmt.Errorf("storing signing key: %w", err)
	}
	return nil
}

// AttachSSH sets the SSH key (and optionally its verbosity) on an existing
// identity. verbosity may be blank.
func (s *Store) AttachSSH(name, sshKey, verbosity string) error {
	if !s.Lookup(name).Exists() {
		return fmt.Errorf("%w: %s", iderrors.ErrUndefinedIdentity, name)
	}
	if err := s.cfg.SetGlobal(key(name, fieldSSHKey), sshKey); err != nil {
		return fmt.Errorf("storing SSH key: %w", err)
	}
	if verbosity != "" {
		if err := s.cfg.SetGlobal(key(name, fieldSSHVerbosity), verbosity); err != nil {
			return fmt.Errorf("storing SSH verbosity: %w", err)
		}
	}
	return nil
}

// Remove deletes the entire record for name. Removing an unknown name is
// a no-op.
func (s *Store) Remove(name string) error {
	return gitcfg.RemoveSectionGlobal(s.cfg, sectionIdentity, name)
}

// Names enumerates all identity names found in the store, deduplicated and
// sorted. Names are derived by scanning stored keys, so partially written
// records (any field present) still show up.
func (s *Store) Names() []string {
	seen := make(map[string]bool)
	prefix := sectionIdentity + "."
	for _, k := range s.cfg.Keys(prefix) {
		rest := strings.TrimPrefix(k, prefix)
		// Subsection is everything up to the final dot; the field follows.
		i := strings.LastIndex(rest, ".")
		if i <= 0 {
			continue
		}
		seen[rest[:i]] = true
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns all stored identities in name order.
func (s *Store) List() []Identity {
	names := s.Names()
	ids := make([]Identity, 0, len(names))
	for _, name := range names {
		ids = append(ids, s.Lookup(name))
	}
	return ids
}
