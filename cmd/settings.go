package cmd

import (
	"fmt"

	"gitid/internal/identity"
	"gitid/internal/ui"
)

// runSettings handles -s/--get-settings: dump the activation-owned local
// configuration keys.
func runSettings() error {
	cfg, _, _, err := openStore()
	if err != nil {
		return err
	}

	if !cfg.HasLocal() {
		printNotInRepository()
		return nil
	}

	settings := identity.SnapshotSettings(cfg)
	if len(settings) == 0 {
		fmt.Println("no local identity settings")
		fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("git-identity <name>") + " to activate an identity")
		return nil
	}

	if jsonOut {
		return printJSON(settings)
	}
	fmt.Print(settings.Render())
	return nil
}
