package export

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLExporter writes a listing as a YAML document with two-space indentation
type YAMLExporter struct{}

// Export exports a listing to YAML format
func (e *YAMLExporter) Export(listing *Listing, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()

	return enc.Encode(listing.document())
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
