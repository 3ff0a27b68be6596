package identity

import (
	"fmt"
	"regexp"
)

// Global configuration fields under identity.<name>.
const (
	fieldName         = "name"
	fieldEmail        = "email"
	fieldSigningKey   = "signingkey"
	fieldSSHKey       = "sshkey"
	fieldSSHVerbosity = "sshkeyverbosity"
)

// Local configuration keys owned by activation.
const (
	KeyIdentity   = "user.identity"
	KeyUserName   = "user.name"
	KeyUserEmail  = "user.email"
	KeySigningKey = "user.signingkey"
	KeyGPGSign    = "commit.gpgsign"
	KeySSHCommand = "core.sshCommand"
)

// LocalKeys lists the activation-owned local keys in display order.
var LocalKeys = []string{
	KeyIdentity,
	KeyUserName,
	KeyUserEmail,
	KeySigningKey,
	KeyGPGSign,
	KeySSHCommand,
}

// Identity is one named bundle of commit-author settings.
type Identity struct {
	Name         string `json:"name"`
	DisplayName  string `json:"displayName"`
	Email        string `json:"email"`
	SigningKey   string `json:"signingKey,omitempty"`
	SSHKey       string `json:"sshKey,omitempty"`
	SSHVerbosity string `json:"sshKeyVerbosity,omitempty"`
}

// Exists reports whether the identity has been defined. An identity exists
// iff its display name is non-blank.
func (id Identity) Exists() bool {
	return id.DisplayName != ""
}

// Summary renders the identity as a single line:
//
//	[name] Display Name <email> (GPG key: K) (SSH key: S with verbosity V)
//
// Parenthetical clauses appear only when the corresponding field is set.
func (id Identity) Summary() string {
	s := fmt.Sprintf("[%s] %s <%s>", id.Name, id.DisplayName, id.Email)
	if id.SigningKey != "" {
		s += fmt.Sprintf(" (GPG key: %s)", id.SigningKey)
	}
	if id.SSHKey != "" {
		if id.SSHVerbosity != "" {
			s += fmt.Sprintf(" (SSH key: %s with verbosity %s)", id.SSHKey, id.SSHVerbosity)
		} else {
			s += fmt.Sprintf(" (SSH key: %s)", id.SSHKey)
		}
	}
	return s
}

// validName matches names that survive the identity.<name>.<field> keyspace:
// no dots, no whitespace, must start with an alphanumeric.
var validName = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// IsValidName reports whether name can be used as an identity name.
func IsValidName(name string) bool {
	return validName.MatchString(name)
}
