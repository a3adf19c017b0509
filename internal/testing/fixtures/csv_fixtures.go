// Package fixtures writes candidate CSV files for tests.
package fixtures

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Header is the canonical candidates CSV header line.
const Header = "first_name,last_name,email,phone,skills"

// WriteCSV writes a candidates file with the canonical header followed by rows
// and returns its path. Rows are written verbatim, one per line.
func WriteCSV(t *testing.T, rows ...string) string {
	t.Helper()

	return WriteRaw(t, Header+"\n"+joinLines(rows))
}

// WriteRaw writes content as-is to a fresh file in a temp directory.
func WriteRaw(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "candidates.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write CSV fixture: %v", err)
	}
	return path
}

// DuplicateEmail has two rows sharing a@x.com; the first must win.
func DuplicateEmail(t *testing.T) string {
	t.Helper()

	return WriteCSV(t,
		"A,B,a@x.com,555-1234,Go",
		"C,D,a@x.com,555-0000,Rust",
	)
}

// HeaderOnly has no data rows.
func HeaderOnly(t *testing.T) string {
	t.Helper()

	return WriteCSV(t)
}

func joinLines(rows []string) string {
	if len(rows) == 0 {
		return ""
	}
	return strings.Join(rows, "\n") + "\n"
}
