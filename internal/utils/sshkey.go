package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/ssh"
)

// ResolveSSHKeyPath expands an identity's stored SSH key reference to a
// filesystem path: bare names resolve under ~/.ssh/, a leading ~/ expands
// to the home directory, everything else is used as-is.
func ResolveSSHKeyPath(sshKey string) (string, error) {
	switch {
	case strings.HasPrefix(sshKey, "~/"):
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, sshKey[2:]), nil
	case strings.HasPrefix(sshKey, "/"), strings.HasPrefix(sshKey, "."):
		return sshKey, nil
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, ".ssh", sshKey), nil
	}
}

// CheckSSHKeyFile verifies, best effort, that the referenced file exists and
// parses as an SSH private key. Passphrase-protected keys pass the check.
// Callers treat a non-nil error as a warning, never a failure.
func CheckSSHKeyFile(sshKey string) error {
	path, err := ResolveSSHKeyPath(sshKey)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	if _, err := ssh.ParseRawPrivateKey(data); err != nil {
		var passErr *ssh.PassphraseMissingError
		if errors.As(err, &passErr) {
			// Encrypted key: parseable enough.
			return nil
		}
		return fmt.Errorf("%s does not look like an SSH private key: %w", path, err)
	}
	return nil
}
