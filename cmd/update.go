package cmd

import (
	"errors"
	"strings"

	"gitid/internal/identity"
	"gitid/internal/ui"

	iderrors "gitid/internal/errors"
)

// runUpdate handles -u/--update: re-apply the active identity's settings and
// report what changed.
func runUpdate() error {
	_, _, act, err := openStore()
	if err != nil {
		return err
	}

	spinner, cleanup := startSpinner("Re-syncing identity settings...")
	defer cleanup()

	before, after, err := act.Update()
	switch {
	case errors.Is(err, iderrors.ErrNotInRepository):
		spinner.FinalMSG = ui.Error.Sprint("✗") + " Not inside a git repository"
		return nil
	case errors.Is(err, iderrors.ErrNoActiveIdentity):
		spinner.FinalMSG = "no identity set\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("git-identity <name>") + " to activate one"
		return nil
	case errors.Is(err, iderrors.ErrUndefinedIdentity):
		// The active pointer references a record that no longer exists.
		spinner.FinalMSG = ui.Error.Sprint("✗") + " Active identity " +
			ui.Highlight.Sprint(act.Active()) + " is not defined; local settings left untouched"
		return nil
	case err != nil:
		return Logger.ErrorfAndReturn("Failed to update identity settings: %v", err)
	}

	diff := identity.DiffSettings(before, after)
	if diff == "" {
		spinner.FinalMSG = ui.Success.Sprint("✓") + " no changes"
		return nil
	}

	spinner.FinalMSG = ui.Success.Sprint("✓") + " Updated local settings\n" + strings.TrimRight(diff, "\n")
	return nil
}
