package report

import (
	"os"

	"golang.org/x/term"
)

// StyleEnabled reports whether output written to f should be styled.
//
// Returns false if:
//   - RECRUITSYNC_PLAIN=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set
//   - f is not a terminal (piped or redirected output)
func StyleEnabled(f *os.File) bool {
	if os.Getenv("RECRUITSYNC_PLAIN") == "1" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
