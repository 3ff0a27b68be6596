package cmd

import "fmt"

// runPrint handles -p/--print [<name>], defaulting to the active identity.
func runPrint(args []string) error {
	_, store, act, err := openStore()
	if err != nil {
		return err
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	} else {
		name = act.Active()
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

	if jsonOut {
		return printJSON(id)
	}
	fmt.Println(id.Summary())
	return nil
}
