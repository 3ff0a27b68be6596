package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"gitid/internal/ui"

	iderrors "gitid/internal/errors"
)

// runUse activates the named identity in the current repository.
func runUse(name string) error {
	_, _, act, err := openStore()
	if err != nil {
		return err
	}

	Logger.Infof("Activating identity %s", name)
	id, err := act.Use(name)
	switch {
	case errors.Is(err, iderrors.ErrUndefinedIdentity):
		printUndefined(name)
		return nil
	case errors.Is(err, iderrors.ErrNotInRepository):
		printNotInRepository()
		return nil
	case err != nil:
		return Logger.ErrorfAndReturn("Failed to activate identity: %v", err)
	}

	fmt.Println(ui.Success.Sprint("✓") + " Now using " + id.Summary())
	return nil
}

// runCurrent prints the currently active identity.
func runCurrent() error {
	_, store, act, err := openStore()
	if err != nil {
		return err
	}

	active := act.Active()
	if active == "" {
		printNoActiveIdentity()
		return nil
	}

	id := store.Lookup(active)
	if !id.Exists() {
		// user.identity points at a record that was removed.
		printUndefined(active)
		return nil
	}

	if jsonOut {
		return printJSON(id)
	}
	fmt.Println(id.Summary())
	return nil
}

func printNoActiveIdentity() {
	fmt.Println("no identity set")
	fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("git-identity <name>") + " to activate one")
}

func printNotInRepository() {
	fmt.Println(ui.Error.Sprint("✗") + " Not inside a git repository")
	fmt.Println(ui.Info.Sprint("→") + " Activation writes to the repository's local configuration")
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to marshal to JSON: %v", err)
	}
	fmt.Println(string(output))
	return nil
}
