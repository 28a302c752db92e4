package export

import (
	"fmt"
	"io"

	"github.com/iksnae/arca-booking/internal"
)

// Listing is the bookable events of one gym on one date
type Listing struct {
	GymID  int                  `json:"gym_id" yaml:"gym_id"`
	Date   string               `json:"date" yaml:"date"`
	Events []internal.EventLine `json:"events" yaml:"events"`
}

// document returns the listing as it is written by the document formats:
// a day without bookable events still has an (empty) events list.
func (l *Listing) document() *Listing {
	if l.Events != nil {
		return l
	}
	doc := *l
	doc.Events = []internal.EventLine{}
	return &doc
}

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(listing *Listing, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "text", "txt":
		return &TextExporter{}, nil
	case "jsonl":
		return &JSONLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: text, jsonl, md, yaml, json)", format)
	}
}
