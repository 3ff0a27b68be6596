package cmd

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"

	"gitid/internal/ui"
)

// startSpinner starts a progress spinner unless verbose or debug output is
// active, in which case the message is logged instead. The returned cleanup
// stops the spinner and prints its FinalMSG on its own line.
func startSpinner(message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	if !verbose && !debug {
		s.Start()
	} else {
		Logger.Infof("%s", message)
	}

	cleanup := func() {
		// Ensure final message ends with a newline.
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !verbose && !debug {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}
