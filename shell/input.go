package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/demosdemon/cmdshell/app"
)

// ErrInterrupted is returned by a LineReader when the user abandons the line
// being edited. The shell prompts again.
var ErrInterrupted = errors.New("input interrupted")

// LineReader prints a prompt and blocks until one line of input is available.
// io.EOF signals that no more lines will come.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// NewLineReader picks a terminal line editor when a's stdin and stdout are the
// process terminal, and a plain buffered reader otherwise.
func NewLineReader(a *app.App) LineReader {
	if isTerminal(a.Stdin, os.Stdin) && isTerminal(a.Stdout, os.Stdout) {
		return newTerminalReader()
	}
	return NewBufferedReader(a.Stdin, a.Stdout)
}

func isTerminal(v interface{}, std *os.File) bool {
	f, ok := v.(*os.File)
	if !ok || f.Fd() != std.Fd() {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

type bufferedReader struct {
	r *bufio.Reader
	w io.Writer
}

// NewBufferedReader reads newline-terminated lines from r and writes prompts
// to w. A final line without a newline is still returned.
func NewBufferedReader(r io.Reader, w io.Writer) LineReader {
	return &bufferedReader{r: bufio.NewReader(r), w: w}
}

func (b *bufferedReader) ReadLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(b.w, prompt); err != nil {
		return "", err
	}

	line, err := b.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (b *bufferedReader) Close() error { return nil }

// terminalReader edits lines with liner. History is never recorded and no
// completer is installed.
type terminalReader struct {
	state *liner.State
}

func newTerminalReader() *terminalReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &terminalReader{state: state}
}

func (t *terminalReader) ReadLine(prompt string) (string, error) {
	line, err := t.state.Prompt(prompt)
	if err == liner.ErrPromptAborted {
		return "", ErrInterrupted
	}
	return line, err
}

// Close restores the terminal mode.
func (t *terminalReader) Close() error {
	return t.state.Close()
}
