package gitcfg

import (
	"fmt"
	"strings"

	"github.com/gopasspw/gitconfig"
)

// Store is the subset of git config operations the identity layer uses.
// Keys are full dotted names, e.g. "identity.work.email" or "user.name".
type Store interface {
	// Get returns the value for key from the highest-priority scope,
	// or "" when unset.
	Get(key string) string
	// GetGlobal returns the value for key from the global scope only.
	GetGlobal(key string) string
	// GetLocal returns the value for key from the local scope only.
	GetLocal(key string) string

	SetGlobal(key, value string) error
	SetLocal(key, value string) error
	UnsetGlobal(key string) error
	UnsetLocal(key string) error

	// Keys returns all stored keys that start with prefix.
	Keys(prefix string) []string

	// HasLocal reports whether a local (repository) scope is available.
	HasLocal() bool
}

// Config is the production Store backed by the real git config files.
type Config struct {
	cfgs   *gitconfig.Configs
	gitDir string
}

// Open loads global (and system) configuration, plus the local configuration
// of the repository enclosing dir if there is one. dir may be empty for the
// current working directory.
func Open(dir string) (*Config, error) {
	gitDir, err := FindGitDir(dir)
	if err != nil {
		return nil, fmt.Errorf("locating git directory: %w", err)
	}

	c := gitconfig.New()
	c.LoadAll(gitDir)

	return &Config{cfgs: c, gitDir: gitDir}, nil
}

func (c *Config) Get(key string) string       { return c.cfgs.Get(key) }
func (c *Config) GetGlobal(key string) string { return c.cfgs.GetGlobal(key) }
func (c *Config) GetLocal(key string) string  { return c.cfgs.GetLocal(key) }

func (c *Config) SetGlobal(key, value string) error { return c.cfgs.SetGlobal(key, value) }
func (c *Config) SetLocal(key, value string) error  { return c.cfgs.SetLocal(key, value) }

// UnsetGlobal removes key from the global scope. Unsetting an absent key is
// a no-op.
func (c *Config) UnsetGlobal(key string) error {
	if c.cfgs.GetGlobal(key) == "" {
		return nil
	}
	return c.cfgs.UnsetGlobal(key)
}

// UnsetLocal removes key from the local scope. Unsetting an absent key is
// a no-op.
func (c *Config) UnsetLocal(key string) error {
	if c.cfgs.GetLocal(key) == "" {
		return nil
	}
	return c.cfgs.UnsetLocal(key)
}

// Keys returns all stored keys starting with prefix, across scopes.
func (c *Config) Keys(prefix string) []string {
	var keys []string
	for _, k := range c.cfgs.List(prefix) {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys
}

// HasLocal reports whether Open found an enclosing git repository.
func (c *Config) HasLocal() bool {
	return c.gitDir != ""
}

// GitDir returns the discovered git directory, or "" when outside a repository.
func (c *Config) GitDir() string {
	return c.gitDir
}

// RemoveSectionGlobal deletes every global key below "<section>.<subsection>.".
// The config files drop a section heading once its last key is removed, which
// matches git's remove-section semantics closely enough for identity records.
func RemoveSectionGlobal(s Store, section, subsection string) error {
	prefix := section + "." + subsection + "."
	for _, key := range s.Keys(prefix) {
		if err := s.UnsetGlobal(key); err != nil {
			return fmt.Errorf("unsetting %s: %w", key, err)
		}
	}
	return nil
}
