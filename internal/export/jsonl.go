package export

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONLExporter exports listings in JSONL format (one event per line)
type JSONLExporter struct{}

// Export exports a listing to JSONL format
func (e *JSONLExporter) Export(listing *Listing, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, ev := range listing.Events {
		obj := map[string]interface{}{
			"gym_id":      listing.GymID,
			"date":        listing.Date,
			"id":          ev.ID,
			"title":       ev.Title,
			"instructor":  ev.Instructor,
			"start":       ev.Start,
			"end":         ev.End,
			"signed_up":   ev.SignedUp,
			"waitlist":    ev.Waitlist,
			"description": ev.Description,
		}

		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("failed to encode event %d: %w", ev.ID, err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
