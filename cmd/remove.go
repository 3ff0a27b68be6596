package cmd

import (
	"fmt"

	"gitid/internal/ui"
)

// runRemove handles -r/--remove <name>: delete the whole stored record.
func runRemove(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("--remove requires <name>")
	}
	name := args[0]

	_, store, _, err := openStore()
	if err != nil {
		return err
	}

	Logger.Infof("Removing identity %s", name)
	if err := store.Remove(name); err != nil {
		return Logger.ErrorfAndReturn("Failed to remove identity: %v", err)
	}

	fmt.Println(ui.Success.Sprint("✓") + " Removed identity " + ui.Highlight.Sprint(name))
	return nil
}
