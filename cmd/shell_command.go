package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"gitid/internal/identity"
	"gitid/internal/ui"
)

const sshEnvVar = "GIT_SSH_COMMAND"

// runShellCommand handles -c/--get-shell-command [<name>] [<command...>].
//
// With no trailing command it prints the environment assignment for the
// resolved identity's SSH command. With one, it runs the command with the
// variable set for just that child process.
func runShellCommand(args []string) error {
	_, store, act, err := openStore()
	if err != nil {
		return err
	}

	// A leading argument naming a defined identity selects it; everything
	// else is the command to run under the resolved identity.
	name := act.Active()
	command := args
	if len(args) > 0 && store.Lookup(args[0]).Exists() {
		name = args[0]
		command = args[1:]
	}

	if name == "" {
		printNoActiveIdentity()
		return nil
	}
	id := store.Lookup(name)
	if !id.Exists() {
		printUndefined(name)
		return nil
	}

	sshCmd := identity.BuildSSHCommand(id.SSHKey, id.SSHVerbosity)

	if len(command) == 0 {
		if sshCmd == "" {
			fmt.Println(ui.Error.Sprint("✗") + " Identity " + ui.Highlight.Sprint(name) + " has no SSH key")
			return nil
		}
		fmt.Printf("%s=%q\n", sshEnvVar, sshCmd)
		return nil
	}

	Logger.Infof("Running %s with %s=%q", strings.Join(command, " "), sshEnvVar, sshCmd)
	return runWithEnvOverride(command, sshCmd)
}

// runWithEnvOverride runs command with GIT_SSH_COMMAND set to sshCmd. The
// override lives only in the child's environment; the child's exit status
// becomes our own.
func runWithEnvOverride(command []string, sshCmd string) error {
	child := exec.Command(command[0], command[1:]...)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr

	env := make([]string, 0, len(os.Environ())+1)
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, sshEnvVar+"=") {
			continue
		}
		env = append(env, kv)
	}
	if sshCmd != "" {
		env = append(env, sshEnvVar+"="+sshCmd)
	}
	child.Env = env

	err := child.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to run %s: %v", command[0], err)
	}
	return nil
}
