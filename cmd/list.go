package cmd

import (
	"fmt"

	"gitid/internal/ui"
)

// runList handles -l/--list: all identities, one summary line each.
func runList() error {
	_, store, _, err := openStore()
	if err != nil {
		return err
	}

	ids := store.List()
	Logger.Debugf("Found %d identities", len(ids))
	if len(ids) == 0 {
		printNoIdentities()
		return nil
	}

	if jsonOut {
		return printJSON(ids)
	}
	for _, id := range ids {
		fmt.Println(id.Summary())
	}
	return nil
}

// runListRaw handles -R/--list-raw: names only.
func runListRaw() error {
	_, store, _, err := openStore()
	if err != nil {
		return err
	}

	names := store.Names()
	if len(names) == 0 {
		printNoIdentities()
		return nil
	}

	if jsonOut {
		return printJSON(names)
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func printNoIdentities() {
	fmt.Println("no identities defined")
	fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("git-identity --define <name> <displayName> <email>") + " to create one")
}
