package identity

import (
	"fmt"
	"strings"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"gitid/internal/gitcfg"
)

// Settings is a snapshot of the activation-owned local configuration keys.
// Unset keys are absent from the map.
type Settings map[string]string

// SnapshotSettings captures the current local values of all activation-owned
// keys.
func SnapshotSettings(cfg gitcfg.Store) Settings {
	s := make(Settings, len(LocalKeys))
	for _, key := range LocalKeys {
		if v := cfg.GetLocal(key); v != "" {
			s[key] = v
		}
	}
	return s
}

// Render returns the snapshot as "key = value" lines in LocalKeys order.
func (s Settings) Render() string {
	var b strings.Builder
	for _, key := range LocalKeys {
		if v, ok := s[key]; ok {
			fmt.Fprintf(&b, "%s = %s\n", key, v)
		}
	}
	return b.String()
}

// Equal reports whether two snapshots hold the same keys and values.
func (s Settings) Equal(other Settings) bool {
	return s.Render() == other.Render()
}

// DiffSettings returns a unified line diff between two snapshots, or ""
// when they are identical.
func DiffSettings(before, after Settings) string {
	a, b := before.Render(), after.Render()
	if a == b {
		return ""
	}
	edits := myers.ComputeEdits(span.URIFromPath("settings"), a, b)
	return fmt.Sprint(gotextdiff.ToUnified("before", "after", a, edits))
}
