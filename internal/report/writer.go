// Package report renders aggregate query results for the terminal.
package report

import (
	"fmt"
	"io"

	"github.com/talentdesk/recruitsync/pkg/recruit"
)

// Write prints one "<title>: <n> applications" line per job, in the order
// given. When styled is true the title and count are colored with lipgloss;
// the text is the same either way.
func Write(w io.Writer, counts []recruit.JobApplicationCount, styled bool) error {
	for _, c := range counts {
		if _, err := fmt.Fprintln(w, formatLine(c, styled)); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

func formatLine(c recruit.JobApplicationCount, styled bool) string {
	title := c.Title
	count := fmt.Sprintf("%d applications", c.Applications)
	if styled {
		title = TitleStyle.Render(title)
		if c.Applications == 0 {
			count = ZeroStyle.Render(count)
		} else {
			count = CountStyle.Render(count)
		}
	}
	return title + ": " + count
}
