// Package prompt provides the interactive backends behind internal.Prompter.
package prompt

import (
	"fmt"
	"io"

	"github.com/iksnae/arca-booking/internal"
)

// Backend names accepted by New
const (
	KindPlain = "plain"
	KindTUI   = "tui"
)

// New returns the prompter backend named kind reading from in and writing to out
func New(kind string, in io.Reader, out io.Writer) (internal.Prompter, error) {
	switch kind {
	case "", KindPlain:
		return NewPlain(in, out), nil
	case KindTUI:
		return NewTUI(in, out), nil
	default:
		return nil, &internal.ValidationError{Field: "prompt", Reason: fmt.Sprintf("unknown backend %q", kind)}
	}
}
