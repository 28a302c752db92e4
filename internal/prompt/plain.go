package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iksnae/arca-booking/internal"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Plain asks questions one line at a time. Passwords are read without echo
// when the input is a terminal.
type Plain struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
}

// NewPlain creates a line-based prompter
func NewPlain(in io.Reader, out io.Writer) *Plain {
	return &Plain{in: in, reader: bufio.NewReader(in), out: out}
}

// Input implements internal.Prompter
func (p *Plain) Input(label string) (string, error) {
	_, _ = fmt.Fprint(p.out, label)
	return p.readLine()
}

// Password implements internal.Prompter
func (p *Plain) Password(label string) (string, error) {
	_, _ = fmt.Fprint(p.out, label)
	if fd, ok := terminalFd(p.in); ok {
		b, err := term.ReadPassword(fd)
		_, _ = fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}
	return p.readLine()
}

// Select lists the choices and reads the value typed by the user
func (p *Plain) Select(label string, choices []internal.Choice) (string, error) {
	for _, c := range choices {
		_, _ = fmt.Fprintf(p.out, "  %s: %s\n", c.Value, c.Label)
	}
	_, _ = fmt.Fprint(p.out, label)
	return p.readLine()
}

// readLine returns the next line without its terminator. End of input
// counts as an empty answer.
func (p *Plain) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func terminalFd(r io.Reader) (int, bool) {
	f, ok := r.(*os.File)
	if !ok {
		return 0, false
	}
	if !isatty.IsTerminal(f.Fd()) {
		return 0, false
	}
	return int(f.Fd()), true
}
