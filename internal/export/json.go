package export

import (
	"encoding/json"
	"io"
)

// JSONExporter writes a listing as one indented JSON document
type JSONExporter struct{}

// Export exports a listing to JSON format
func (e *JSONExporter) Export(listing *Listing, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(listing.document())
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
