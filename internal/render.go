package internal

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	eventTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	eventIDStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	eventMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	waitlistStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// PrintEvents writes the bookable event listing followed by its count
func PrintEvents(w io.Writer, lines []EventLine) {
	for _, l := range lines {
		_, _ = fmt.Fprintf(w, "%s %s\n",
			eventIDStyle.Render(fmt.Sprintf("[%d]", l.ID)),
			eventTitleStyle.Render(fmt.Sprintf("'%s'", l.Title)))
		_, _ = fmt.Fprintf(w, "  Instructor: %s\n", l.Instructor)
		_, _ = fmt.Fprintf(w, "  %s\n", eventMetaStyle.Render(l.Start+"-"+l.End))
		_, _ = fmt.Fprintf(w, "  %d signed up.\n", l.SignedUp)
		waitlist := fmt.Sprintf("%d on waitlist.", l.Waitlist)
		if l.Waitlist > 0 {
			waitlist = waitlistStyle.Render(waitlist)
		}
		_, _ = fmt.Fprintf(w, "  %s\n", waitlist)
		_, _ = fmt.Fprintf(w, "  '%s'\n\n", l.Description)
	}
	_, _ = fmt.Fprintf(w, "%d events available.\n", len(lines))
}
