package identity

import "strings"

// DefaultSSHDir is prepended to bare key filenames. Kept as a literal
// tilde path so the shell running the resulting command expands it.
const DefaultSSHDir = "~/.ssh/"

// BuildSSHCommand composes the ssh invocation for core.sshCommand and
// GIT_SSH_COMMAND. It returns "" when sshKey is blank.
//
// Verbosity "1" maps to -v, "2" to -vvv, anything else to no flag.
// A key that does not start with "/" or "." is resolved under ~/.ssh/.
func BuildSSHCommand(sshKey, verbosity string) string {
	if sshKey == "" {
		return ""
	}

	var flag string
	switch verbosity {
	case "1":
		flag = "-v "
	case "2":
		flag = "-vvv "
	}

	path := sshKey
	if !strings.HasPrefix(path, "/") && !strings.HasPrefix(path, ".") {
		path = DefaultSSHDir + path
	}

	return "ssh " + flag + "-i " + path
}
