package cmd

import (
	"errors"
	"fmt"

	"gitid/internal/identity"
	"gitid/internal/ui"
	"gitid/internal/utils"

	iderrors "gitid/internal/errors"
)

// runDefine handles -d/--define <name> <displayName> <email> [<sshkey>] [<gpgkey>].
func runDefine(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("--define requires <name> <displayName> <email>")
	}
	name, displayName, email := args[0], args[1], args[2]

	Logger.Infof("Defining identity %s", name)
	if !identity.IsValidName(name) {
		return fmt.Errorf("invalid identity name %q: use letters, digits, hyphens and underscores", name)
	}
	if !utils.IsValidEmail(email) {
		Logger.WarnfUser("%s does not look like an email address", email)
	}

	_, store, act, err := openStore()
	if err != nil {
		return err
	}

	if err := store.Define(name, displayName, email); err != nil {
		return Logger.ErrorfAndReturn("Failed to define identity: %v", err)
	}

	if len(args) > 3 && args[3] != "" {
		if err := attachSSH(store, name, args[3], ""); err != nil {
			return err
		}
	}
	if len(args) > 4 && args[4] != "" {
		if err := store.AttachGPG(name, args[4]); err != nil {
			return Logger.ErrorfAndReturn("Failed to attach GPG key: %v", err)
		}
	}

	reactivateIfActive(act, name)

	fmt.Println(ui.Success.Sprint("✓") + " Defined identity " + ui.Highlight.Sprint(name))
	return nil
}

// runDefineGPG handles --define-gpg <name> <gpgkey>.
func runDefineGPG(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("--define-gpg requires <name> <gpgkey>")
	}
	name, gpgKey := args[0], args[1]

	_, store, act, err := openStore()
	if err != nil {
		return err
	}

	Logger.Infof("Attaching GPG key %s to identity %s", gpgKey, name)
	if err := store.AttachGPG(name, gpgKey); err != nil {
		if errors.Is(err, iderrors.ErrUndefinedIdentity) {
			printUndefined(name)
			return nil
		}
		return Logger.ErrorfAndReturn("Failed to attach GPG key: %v", err)
	}

	reactivateIfActive(act, name)

	fmt.Println(ui.Success.Sprint("✓") + " Attached GPG key " + ui.Highlight.Sprint(gpgKey) +
		" to identity " + ui.Highlight.Sprint(name))
	return nil
}

// runDefineSSH handles --define-ssh <name> <sshfile> [<verbosity>].
func runDefineSSH(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("--define-ssh requires <name> <sshfile>")
	}
	name, sshKey := args[0], args[1]
	verbosity := ""
	if len(args) > 2 {
		verbosity = args[2]
		if verbosity != "0" && verbosity != "1" && verbosity != "2" {
			Logger.WarnfUser("verbosity %s is not 0, 1 or 2 and will add no flag", verbosity)
		}
	}

	_, store, act, err := openStore()
	if err != nil {
		return err
	}

	Logger.Infof("Attaching SSH key %s to identity %s", sshKey, name)
	if err := attachSSH(store, name, sshKey, verbosity); err != nil {
		return err
	}
	if !store.Lookup(name).Exists() {
		// attachSSH already reported.
		return nil
	}

	reactivateIfActive(act, name)

	fmt.Println(ui.Success.Sprint("✓") + " Attached SSH key " + ui.Path.Sprint(sshKey) +
		" to identity " + ui.Highlight.Sprint(name))
	return nil
}

// attachSSH stores an SSH key on an identity, warning (never failing) when
// the referenced file is missing or does not parse as a private key. An
// undefined identity is reported as a plain message.
func attachSSH(store *identity.Store, name, sshKey, verbosity string) error {
	if err := utils.CheckSSHKeyFile(sshKey); err != nil {
		Logger.WarnfUser("SSH key check: %v", err)
	}

	if err := store.AttachSSH(name, sshKey, verbosity); err != nil {
		if errors.Is(err, iderrors.ErrUndefinedIdentity) {
			printUndefined(name)
			return nil
		}
		return Logger.ErrorfAndReturn("Failed to attach SSH key: %v", err)
	}
	return nil
}

// reactivateIfActive re-applies the identity's settings when it is the one
// currently active, so the running workspace picks up the change immediately.
func reactivateIfActive(act *identity.Activator, name string) {
	if act.Active() != name {
		return
	}
	Logger.Debugf("Identity %s is active, re-activating", name)
	if _, err := act.Use(name); err != nil {
		Logger.WarnfUser("could not refresh active identity: %v", err)
		return
	}
	fmt.Println(ui.Info.Sprint("→") + " Refreshed local settings for active identity " + ui.Highlight.Sprint(name))
}

// printUndefined reports a reference to an identity that has no stored
// display name. Best-effort: the caller exits zero.
func printUndefined(name string) {
	fmt.Println(ui.Error.Sprint("✗") + " Identity " + ui.Highlight.Sprint(name) + " is not defined")
	fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("git-identity --list") + " to see defined identities")
}
