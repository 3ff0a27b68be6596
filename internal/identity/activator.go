package identity

import (
	"fmt"
	"strings"

	iderrors "gitid/internal/errors"
	"gitid/internal/gitcfg"
)

// Activator mirrors one identity's fields into the local configuration of
// the enclosing repository.
type Activator struct {
	cfg   gitcfg.Store
	store *Store
}

// NewActivator returns an Activator sharing cfg with store.
func NewActivator(cfg gitcfg.Store, store *Store) *Activator {
	return &Activator{cfg: cfg, store: store}
}

// Active returns the name of the currently active identity, or "" when
// none is set.
func (a *Activator) Active() string {
	return strings.TrimSpace(a.cfg.GetLocal(KeyIdentity))
}

// Use activates the named identity: it overwrites the local user.* keys
// with the identity's fields and records the name in user.identity.
//
// Keys without a backing field are cleared rather than left behind: no
// signing key unsets user.signingkey and commit.gpgsign, no SSH key unsets
// core.sshCommand. On an undefined identity nothing is written and
// ErrUndefinedIdentity is returned.
func (a *Activator) Use(name string) (Identity, error) {
	if !a.cfg.HasLocal() {
		return Identity{}, iderrors.ErrNotInRepository
	}

	id := a.store.Lookup(name)
	if !id.Exists() {
		return id, fmt.Errorf("%w: %s", iderrors.ErrUndefinedIdentity, name)
	}

	set := func(key, value string) error {
		if err := a.cfg.SetLocal(key, value); err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
		return nil
	}
	unset := func(key string) error {
		if err := a.cfg.UnsetLocal(key); err != nil {
			return fmt.Errorf("unsetting %s: %w", key, err)
		}
		return nil
	}

	if err := set(KeyIdentity, name); err != nil {
		return id, err
	}
	if err := set(KeyUserName, id.DisplayName); err != nil {
		return id, err
	}
	if err := set(KeyUserEmail, id.Email); err != nil {
		return id, err
	}

	if id.SigningKey != "" {
		if err := set(KeySigningKey, id.SigningKey); err != nil {
			return id, err
		}
		if err := set(KeyGPGSign, "true"); err != nil {
			return id, err
		}
	} else {
		if err := unset(KeySigningKey); err != nil {
			return id, err
		}
		if err := unset(KeyGPGSign); err != nil {
			return id, err
		}
	}

	if sshCmd := BuildSSHCommand(id.SSHKey, id.SSHVerbosity); sshCmd != "" {
		if err := set(KeySSHCommand, sshCmd); err != nil {
			return id, err
		}
	} else {
		if err := unset(KeySSHCommand); err != nil {
			return id, err
		}
	}

	return id, nil
}

// Update re-applies Use for the currently active identity and returns the
// local settings snapshots from before and after, so callers can report
// what changed. ErrNoActiveIdentity is returned when user.identity is
// unset.
func (a *Activator) Update() (before, after Settings, err error) {
	if !a.cfg.HasLocal() {
		return nil, nil, iderrors.ErrNotInRepository
	}

	active := a.Active()
	if active == "" {
		return nil, nil, iderrors.ErrNoActiveIdentity
	}

	before = SnapshotSettings(a.cfg)
	if _, err := a.Use(active); err != nil {
		return before, nil, err
	}
	after = SnapshotSettings(a.cfg)
	return before, after, nil
}
