package export

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownExporter exports listings as a Markdown table
type MarkdownExporter struct{}

// Export exports a listing to Markdown format
func (e *MarkdownExporter) Export(listing *Listing, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Events on %s\n\n", listing.Date)
	_, _ = fmt.Fprintf(w, "**Gym:** %d  \n", listing.GymID)
	_, _ = fmt.Fprintf(w, "**Bookable:** %d\n\n", len(listing.Events))

	if len(listing.Events) == 0 {
		return nil
	}

	_, _ = fmt.Fprintf(w, "| ID | Time | Title | Instructor | Signed up | Waitlist | Description |\n")
	_, _ = fmt.Fprintf(w, "|---:|---|---|---|---:|---:|---|\n")
	for _, ev := range listing.Events {
		_, _ = fmt.Fprintf(w, "| %d | %s-%s | %s | %s | %d | %d | %s |\n",
			ev.ID, ev.Start, ev.End,
			escapeCell(ev.Title), escapeCell(ev.Instructor),
			ev.SignedUp, ev.Waitlist,
			escapeCell(ev.Description))
	}

	return nil
}

// escapeCell keeps text from breaking out of a table cell
func escapeCell(text string) string {
	text = strings.ReplaceAll(text, "|", "\\|")
	text = strings.ReplaceAll(text, "**", "\\*\\*")
	text = strings.ReplaceAll(text, "__", "\\_\\_")
	return strings.ReplaceAll(text, "\n", " ")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
