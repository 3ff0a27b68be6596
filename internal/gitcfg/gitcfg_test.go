package gitcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopasspw/gitconfig"
)

// newTestConfig returns a Config backed entirely by files under a temp dir
// so tests never touch the developer's real git configuration.
func newTestConfig(t *testing.T) *Config {
	t.Helper()

	dir := t.TempDir()
	gitDir := filepath.Join(dir, ".git")
	if err := os.MkdirAll(gitDir, 0o700); err != nil {
		t.Fatalf("creating fake git dir: %v", err)
	}

	c := gitconfig.New()
	c.SystemConfig = filepath.Join(dir, "system-config")
	c.GlobalConfig = filepath.Join(dir, "global-config")
	c.LoadAll(gitDir)

	return &Config{cfgs: c, gitDir: gitDir}
}

func TestSetGetRoundTrip(t *testing.T) {
	cfg := newTestConfig(t)

	if err := cfg.SetGlobal("identity.work.email", "work@example.com"); err != nil {
		t.Fatalf("SetGlobal failed: %v", err)
	}

	if got := cfg.GetGlobal("identity.work.email"); got != "work@example.com" {
		t.Errorf("GetGlobal = %q, want %q", got, "work@example.com")
	}

	if got := cfg.Get("identity.work.email"); got != "work@example.com" {
		t.Errorf("Get = %q, want %q", got, "work@example.com")
	}
}

func TestLocalShadowsGlobal(t *testing.T) {
	cfg := newTestConfig(t)

	if err := cfg.SetGlobal("user.name", "Global Name"); err != nil {
		t.Fatalf("SetGlobal failed: %v", err)
	}
	if err := cfg.SetLocal("user.name", "Local Name"); err != nil {
		t.Fatalf("SetLocal failed: %v", err)
	}

	if got := cfg.Get("user.name"); got != "Local Name" {
		t.Errorf("Get = %q, want local value %q", got, "Local Name")
	}
	if got := cfg.GetGlobal("user.name"); got != "Global Name" {
		t.Errorf("GetGlobal = %q, want %q", got, "Global Name")
	}
}

func TestUnsetAbsentKeyIsNoOp(t *testing.T) {
	cfg := newTestConfig(t)

	if err := cfg.UnsetGlobal("identity.nobody.email"); err != nil {
		t.Errorf("UnsetGlobal on absent key: %v", err)
	}
	if err := cfg.UnsetLocal("user.signingkey"); err != nil {
		t.Errorf("UnsetLocal on absent key: %v", err)
	}
}

func TestUnsetRemovesValue(t *testing.T) {
	cfg := newTestConfig(t)

	if err := cfg.SetLocal("commit.gpgsign", "true"); err != nil {
		t.Fatalf("SetLocal failed: %v", err)
	}
	if err := cfg.UnsetLocal("commit.gpgsign"); err != nil {
		t.Fatalf("UnsetLocal failed: %v", err)
	}
	if got := cfg.GetLocal("commit.gpgsign"); got != "" {
		t.Errorf("GetLocal after unset = %q, want empty", got)
	}
}

func TestKeysPrefixFilter(t *testing.T) {
	cfg := newTestConfig(t)

	for key, value := range map[string]string{
		"identity.work.name":      "Work Me",
		"identity.work.email":     "work@example.com",
		"identity.personal.name":  "Home Me",
		"identity.personal.email": "home@example.com",
	} {
		if err := cfg.SetGlobal(key, value); err != nil {
			t.Fatalf("SetGlobal(%s) failed: %v", key, err)
		}
	}

	keys := cfg.Keys("identity.work.")
	if len(keys) != 2 {
		t.Fatalf("Keys(identity.work.) returned %d keys, want 2: %v", len(keys), keys)
	}
	for _, k := range keys {
		if k != "identity.work.name" && k != "identity.work.email" {
			t.Errorf("unexpected key %q", k)
		}
	}
}

func TestRemoveSectionGlobal(t *testing.T) {
	cfg := newTestConfig(t)

	if err := cfg.SetGlobal("identity.work.name", "Work Me"); err != nil {
		t.Fatalf("SetGlobal failed: %v", err)
	}
	if err := cfg.SetGlobal("identity.work.sshkey", "id_work"); err != nil {
		t.Fatalf("SetGlobal failed: %v", err)
	}

	if err := RemoveSectionGlobal(cfg, "identity", "work"); err != nil {
		t.Fatalf("RemoveSectionGlobal failed: %v", err)
	}

	if got := cfg.GetGlobal("identity.work.name"); got != "" {
		t.Errorf("identity.work.name survived removal: %q", got)
	}
	if got := cfg.GetGlobal("identity.work.sshkey"); got != "" {
		t.Errorf("identity.work.sshkey survived removal: %q", got)
	}
}

func TestFindGitDirInRepository(t *testing.T) {
	t.Setenv("GIT_DIR", "")
	os.Unsetenv("GIT_DIR")

	dir := t.TempDir()
	gitDir := filepath.Join(dir, ".git")
	if err := os.MkdirAll(gitDir, 0o700); err != nil {
		t.Fatalf("creating .git: %v", err)
	}
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o700); err != nil {
		t.Fatalf("creating nested dirs: %v", err)
	}

	got, err := FindGitDir(nested)
	if err != nil {
		t.Fatalf("FindGitDir failed: %v", err)
	}
	if got != gitDir {
		t.Errorf("FindGitDir = %q, want %q", got, gitDir)
	}
}

func TestFindGitDirOutsideRepository(t *testing.T) {
	t.Setenv("GIT_DIR", "")
	os.Unsetenv("GIT_DIR")

	got, err := FindGitDir(t.TempDir())
	if err != nil {
		t.Fatalf("FindGitDir failed: %v", err)
	}
	if got != "" {
		t.Errorf("FindGitDir = %q, want empty outside a repository", got)
	}
}

func TestFindGitDirWorktreePointer(t *testing.T) {
	t.Setenv("GIT_DIR", "")
	os.Unsetenv("GIT_DIR")

	dir := t.TempDir()
	realGitDir := filepath.Join(dir, "main", ".git", "worktrees", "wt")
	if err := os.MkdirAll(realGitDir, 0o700); err != nil {
		t.Fatalf("creating worktree git dir: %v", err)
	}
	wt := filepath.Join(dir, "wt")
	if err := os.MkdirAll(wt, 0o700); err != nil {
		t.Fatalf("creating worktree dir: %v", err)
	}
	pointer := "gitdir: " + realGitDir + "\n"
	if err := os.WriteFile(filepath.Join(wt, ".git"), []byte(pointer), 0o600); err != nil {
		t.Fatalf("writing pointer file: %v", err)
	}

	got, err := FindGitDir(wt)
	if err != nil {
		t.Fatalf("FindGitDir failed: %v", err)
	}
	if got != realGitDir {
		t.Errorf("FindGitDir = %q, want %q", got, realGitDir)
	}
}

func TestFindGitDirEnvOverride(t *testing.T) {
	t.Setenv("GIT_DIR", "/some/explicit/gitdir")

	got, err := FindGitDir(t.TempDir())
	if err != nil {
		t.Fatalf("FindGitDir failed: %v", err)
	}
	if got != "/some/explicit/gitdir" {
		t.Errorf("FindGitDir = %q, want GIT_DIR override", got)
	}
}
