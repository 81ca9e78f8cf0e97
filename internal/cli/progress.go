package cli

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
)

// newScanProgressBar creates the per-file progress bar for scans.
// Returns nil in quiet mode.
func newScanProgressBar(totalFiles int, quiet bool) *progressbar.ProgressBar {
	if quiet {
		return nil
	}

	return progressbar.NewOptions(totalFiles,
		progressbar.OptionSetDescription("Scanning files"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}
