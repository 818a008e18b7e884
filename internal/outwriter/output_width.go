package outwriter

import (
	"os"

	"golang.org/x/term"
)

// Hash display widths for the table output.
const (
	fullHashWidth  = 40
	shortHashWidth = 12
	wideTerminal   = 120
)

// getMaxTableHashWidth decides whether the table shows full or abbreviated
// commit hashes based on terminal width. Narrow terminals and CI pipes get
// the short form.
func getMaxTableHashWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return shortHashWidth
	}
	if width >= wideTerminal {
		return fullHashWidth
	}
	return shortHashWidth
}
