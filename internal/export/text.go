package export

import (
	"io"

	"github.com/iksnae/arca-booking/internal"
)

// TextExporter writes the listing the way the booking workflow shows it
type TextExporter struct{}

// Export exports a listing as text
func (e *TextExporter) Export(listing *Listing, w io.Writer) error {
	internal.PrintEvents(w, listing.Events)
	return nil
}

// Extension returns the file extension for this format
func (e *TextExporter) Extension() string {
	return "txt"
}
