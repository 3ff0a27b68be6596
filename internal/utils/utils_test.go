package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"me@example.com", "first.last@sub.domain.org", "a+b@example.co"}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}

	invalid := []string{"", "no-at-sign", "@example.com", "me@", "me@host"}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestResolveSSHKeyPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	tests := []struct {
		in   string
		want string
	}{
		{"id_rsa", filepath.Join("/home/tester", ".ssh", "id_rsa")},
		{"~/keys/id_work", filepath.Join("/home/tester", "keys", "id_work")},
		{"/abs/key", "/abs/key"},
		{"./rel/key", "./rel/key"},
	}

	for _, tt := range tests {
		got, err := ResolveSSHKeyPath(tt.in)
		if err != nil {
			t.Fatalf("ResolveSSHKeyPath(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ResolveSSHKeyPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCheckSSHKeyFileMissing(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	if err := CheckSSHKeyFile("does_not_exist"); err == nil {
		t.Error("CheckSSHKeyFile on missing file returned nil")
	}
}

func TestCheckSSHKeyFileNotAKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notakey")
	if err := os.WriteFile(path, []byte("just some text\n"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if err := CheckSSHKeyFile(path); err == nil {
		t.Error("CheckSSHKeyFile on non-key file returned nil")
	}
}
