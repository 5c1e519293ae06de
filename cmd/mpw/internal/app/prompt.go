package app

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Prompter reads sensitive input from the user.
type Prompter interface {
	// ReadSecret shows prompt and returns what was entered, without any line ending.
	// The caller owns the returned slice and should wipe it.
	ReadSecret(prompt string) ([]byte, error)
}

// NewPrompter reads from in without echo if it's a terminal, or one line at a time otherwise.
// Prompts are written to out.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	return &linePrompter{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
	}
}

type linePrompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

func (p *linePrompter) ReadSecret(prompt string) ([]byte, error) {
	_, _ = fmt.Fprint(p.out, prompt)
	if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		defer func() {
			_, _ = fmt.Fprintln(p.out)
		}()
		return term.ReadPassword(int(f.Fd()))
	}
	line, err := p.reader.ReadBytes('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return nil, err
		}
		if len(line) == 0 {
			return nil, io.ErrUnexpectedEOF
		}
	}
	return bytes.TrimRight(line, "\r\n"), nil
}
